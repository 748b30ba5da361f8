package msgpack_test

import (
	"bytes"
	"testing"

	"github.com/pwnedgod/hexa"
	hexamsgpack "github.com/pwnedgod/hexa/codec/msgpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestDecoderKind(t *testing.T) {
	cases := []struct {
		value any
		want  hexa.Kind
	}{
		{value: "ab", want: hexa.KindString},
		{value: []byte{0xab}, want: hexa.KindString},
		{value: 5, want: hexa.KindNumber},
		{value: -40, want: hexa.KindNumber},
		{value: uint64(1) << 40, want: hexa.KindNumber},
		{value: 1.5, want: hexa.KindNumber},
		{value: nil, want: hexa.KindNil},
		{value: true, want: hexa.KindBool},
		{value: []int{1, 2}, want: hexa.KindSeq},
		{value: make([]int, 20), want: hexa.KindSeq},
		{value: map[string]int{"a": 1}, want: hexa.KindMap},
	}

	for _, c := range cases {
		data, err := msgpack.Marshal(c.value)
		require.NoError(t, err)

		got, err := hexamsgpack.NewDecoder(msgpack.NewDecoder(bytes.NewReader(data))).Kind()
		require.NoError(t, err, "%v", c.value)
		assert.Equal(t, c.want, got, "%v", c.value)
	}
}

func TestDecoderKindEmptyInput(t *testing.T) {
	_, err := hexamsgpack.NewDecoder(msgpack.NewDecoder(bytes.NewReader(nil))).Kind()
	assert.Error(t, err)
}

func TestEncoderSeq(t *testing.T) {
	var buf bytes.Buffer
	e := hexamsgpack.NewEncoder(msgpack.NewEncoder(&buf))

	err := e.EncodeSeq(3, func(i int, e hexa.Encoder) error {
		switch i {
		case 0:
			return e.EncodeString("ab")
		case 1:
			return e.EncodeUint(7)
		}
		return e.EncodeNil()
	})
	require.NoError(t, err)

	var got []any
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "ab", got[0])
	assert.EqualValues(t, 7, got[1])
	assert.Nil(t, got[2])
}

func TestDecoderTruncated(t *testing.T) {
	data, err := msgpack.Marshal([]string{"ab", "cd"})
	require.NoError(t, err)

	_, err = hexamsgpack.Decode[[]hexa.Hex](hexa.List[hexa.Text]{}, data[:len(data)-1])
	assert.Error(t, err)
}

func TestCodec(t *testing.T) {
	type item struct {
		ID   int    `msgpack:"id"`
		Name string `msgpack:"name"`
	}

	c := hexamsgpack.NewCodec()
	orig := item{ID: 42, Name: "pack"}
	b, err := c.Marshal(orig)
	require.NoError(t, err)

	var got item
	require.NoError(t, c.Unmarshal(b, &got))
	assert.Equal(t, orig, got)
	assert.Equal(t, "msgpack", c.Name())
}

func TestDecodeUnsigned(t *testing.T) {
	double, err := msgpack.Marshal(1.5)
	require.NoError(t, err)
	whole, err := msgpack.Marshal(float64(2))
	require.NoError(t, err)

	cases := []struct {
		name  string
		input []byte
		want  hexa.Hex
		err   error
	}{
		{name: "positive fixnum", input: []byte{0x05}, want: hexa.FromNumeric(5)},
		{name: "uint64", input: []byte{0xcf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, want: hexa.FromNumeric(^uint64(0))},
		{name: "non-negative int8", input: []byte{0xd0, 0x7f}, want: hexa.FromNumeric(127)},
		{name: "non-negative int64", input: []byte{0xd3, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00}, want: hexa.FromNumeric(256)},
		{name: "negative fixnum", input: []byte{0xff}, err: hexa.ErrNumber},
		{name: "negative int8", input: []byte{0xd0, 0xfe}, err: hexa.ErrNumber},
		{name: "negative int64", input: []byte{0xd3, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, err: hexa.ErrNumber},
		{name: "double", input: double, err: hexa.ErrNumber},
		{name: "whole double", input: whole, err: hexa.ErrNumber},
		{name: "string", input: []byte{0xa2, 'a', 'b'}, err: hexa.ErrShapeMismatch},
	}

	for _, c := range cases {
		got, err := hexamsgpack.Decode[hexa.Hex](hexa.Bare[hexa.Number]{}, c.input)
		if c.err != nil {
			assert.ErrorIs(t, err, c.err, c.name)
			continue
		}
		require.NoError(t, err, c.name)
		assert.Equal(t, c.want, got, c.name)
	}

	_, err = hexamsgpack.Decode[hexa.Hex](hexa.Bare[hexa.Number]{}, []byte{0xd0, 0xfe})
	var numberErr *hexa.NumberError
	require.ErrorAs(t, err, &numberErr)
	assert.Equal(t, "-2", numberErr.Input)
}
