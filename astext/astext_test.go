package astext_test

import (
	"encoding/json"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/pwnedgod/hexa"
	"github.com/pwnedgod/hexa/astext"
	hexajson "github.com/pwnedgod/hexa/codec/json"
	hexamsgpack "github.com/pwnedgod/hexa/codec/msgpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thing struct {
	Foo    astext.Hex            `json:"foo" msgpack:"foo"`
	Bar    astext.Optional       `json:"bar" msgpack:"bar"`
	BarBar astext.DoubleOptional `json:"barbar" msgpack:"barbar"`
	Buzz   astext.List           `json:"buzz" msgpack:"buzz"`
	Buz    astext.Pair           `json:"buz" msgpack:"buz"`
}

const thingJSON = `{"foo":"123abc","bar":"ffffff","barbar":["123456"],"buzz":["010a64"],"buz":["ffffff","000000"]}`

func newThing() thing {
	bar := hexa.FromNumeric(16777215)
	inner := hexa.MustFromText("123456")
	barbar := &inner

	return thing{
		Foo:    astext.Hex{V: hexa.MustFromText("123abc")},
		Bar:    astext.Optional{V: &bar},
		BarBar: astext.DoubleOptional{V: &barbar},
		Buzz:   astext.List{V: []hexa.Hex{hexa.FromBytes([]byte{1, 10, 100})}},
		Buz:    astext.Pair{V: hexa.Pair{First: hexa.MustFromText("ffffff"), Second: hexa.MustFromText("000000")}},
	}
}

func TestRecordStdlibJSON(t *testing.T) {
	orig := newThing()

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Equal(t, thingJSON, string(data))

	var got thing
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, orig, got)
}

func TestRecordCodecs(t *testing.T) {
	orig := newThing()

	for _, c := range []struct {
		name   string
		encode func(any) ([]byte, error)
		decode func([]byte, any) error
	}{
		{name: "jsoniter", encode: hexajson.NewCodec().Marshal, decode: hexajson.NewCodec().Unmarshal},
		{name: "msgpack", encode: hexamsgpack.NewCodec().Marshal, decode: hexamsgpack.NewCodec().Unmarshal},
	} {
		data, err := c.encode(orig)
		require.NoError(t, err, c.name)

		var got thing
		require.NoError(t, c.decode(data, &got), c.name)
		assert.Equal(t, orig, got, c.name)
	}
}

func TestJSONEnginesAgree(t *testing.T) {
	orig := newThing()

	std, err := json.Marshal(orig)
	require.NoError(t, err)

	iter, err := hexajson.NewCodec().Marshal(orig)
	require.NoError(t, err)

	assert.Equal(t, string(std), string(iter))
}

func TestRecordAbsentOptionals(t *testing.T) {
	orig := newThing()
	orig.Bar.V = nil
	orig.BarBar.V = nil
	orig.Buzz.V = []hexa.Hex{}

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.JSONEq(t, `{"foo":"123abc","bar":null,"barbar":null,"buzz":[],"buz":["ffffff","000000"]}`, string(data))

	var got thing
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, orig, got)

	packed, err := hexamsgpack.NewCodec().Marshal(orig)
	require.NoError(t, err)

	got = thing{}
	require.NoError(t, hexamsgpack.NewCodec().Unmarshal(packed, &got))
	assert.Equal(t, orig, got)
}

func TestRecordPresentEmptyInner(t *testing.T) {
	orig := newThing()
	var inner *hexa.Hex
	orig.BarBar.V = &inner

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"barbar":[null]`)

	var got thing
	require.NoError(t, json.Unmarshal(data, &got))
	require.NotNil(t, got.BarBar.V)
	assert.Nil(t, *got.BarBar.V)
}

func TestRecordErrorsAbortDecode(t *testing.T) {
	cases := map[string]error{
		`{"foo":"zz","bar":null,"barbar":null,"buzz":[],"buz":["ff","00"]}`: hexa.ErrDecode,
		`{"foo":"ab","bar":null,"barbar":null,"buzz":[],"buz":["ff"]}`:      hexa.ErrLength,
		`{"foo":12,"bar":null,"barbar":null,"buzz":[],"buz":["ff","00"]}`:   hexa.ErrShapeMismatch,
	}

	for input, want := range cases {
		var got thing
		assert.ErrorIs(t, json.Unmarshal([]byte(input), &got), want, input)
	}
}

func TestSerializeDeserialize(t *testing.T) {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	pair := astext.Pair{V: hexa.Pair{First: hexa.MustFromText("00"), Second: hexa.MustFromText("0a0b")}}
	require.NoError(t, astext.Serialize(hexajson.NewEncoder(stream), pair))
	assert.Equal(t, `["00","0a0b"]`, string(stream.Buffer()))

	var got astext.Pair
	it := jsoniter.ParseBytes(api, stream.Buffer())
	require.NoError(t, astext.Deserialize(hexajson.NewDecoder(it), &got))
	assert.Equal(t, pair, got)

	var list astext.List
	it = jsoniter.ParseString(api, `["ab",`)
	assert.Error(t, astext.Deserialize(hexajson.NewDecoder(it), &list))
}
