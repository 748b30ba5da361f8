package hexa_test

import (
	"encoding/json"
	"testing"

	"github.com/pwnedgod/hexa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x00, 0xff},
		{0x01, 0x0a, 0x64},
		{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
	}

	for _, b := range cases {
		h := hexa.FromBytes(b)
		got, err := hexa.FromText(h.Text())
		require.NoError(t, err)
		assert.True(t, h.Equal(got), "round trip of %x", b)
		assert.Equal(t, h, got)
	}
}

func TestFromBytesNil(t *testing.T) {
	h := hexa.FromBytes(nil)
	assert.Equal(t, "", h.Text())
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, hexa.MustFromText(""), h)
}

func TestFromTextAcceptsUppercase(t *testing.T) {
	h, err := hexa.FromText("ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "abcdef", h.Text())
	assert.Equal(t, []byte{0xab, 0xcd, 0xef}, h.Bytes())
}

func TestFromTextErrors(t *testing.T) {
	cases := []struct {
		input  string
		offset int
	}{
		{input: "zz", offset: 0},
		{input: "abc", offset: 3},
		{input: "0g", offset: 1},
		{input: "00ffx0", offset: 4},
	}

	for _, c := range cases {
		_, err := hexa.FromText(c.input)
		require.Error(t, err, c.input)
		assert.ErrorIs(t, err, hexa.ErrDecode)

		var decodeErr *hexa.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, c.input, decodeErr.Input)
		assert.Equal(t, c.offset, decodeErr.Offset, c.input)
	}
}

func TestMustFromTextPanics(t *testing.T) {
	assert.Panics(t, func() { hexa.MustFromText("abc") })
	assert.NotPanics(t, func() { hexa.MustFromText("abcd") })
}

func TestFromNumeric(t *testing.T) {
	cases := map[uint64]string{
		0:                  "00",
		15:                 "0f",
		255:                "ff",
		256:                "0100",
		16777215:           "ffffff",
		^uint64(0):         "ffffffffffffffff",
		0x0123456789abcdef: "0123456789abcdef",
	}

	for n, text := range cases {
		assert.Equal(t, text, hexa.FromNumeric(n).Text(), "%d", n)
	}
}

func TestNumeric(t *testing.T) {
	n, err := hexa.MustFromText("ffffff").Numeric()
	require.NoError(t, err)
	assert.Equal(t, uint64(16777215), n)

	n, err = hexa.FromBytes(nil).Numeric()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)

	// Leading zero bytes never count towards the width.
	n, err = hexa.MustFromText("00ffffffffffffffff").Numeric()
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), n)
}

func TestNumericOverflow(t *testing.T) {
	h := hexa.MustFromText("010000000000000000")

	_, err := h.Numeric()
	require.Error(t, err)
	assert.ErrorIs(t, err, hexa.ErrOverflow)

	var overflowErr *hexa.OverflowError
	require.ErrorAs(t, err, &overflowErr)
	assert.Equal(t, "010000000000000000", overflowErr.Input)
	assert.Equal(t, 64, overflowErr.Bits)
}

func TestNumericIsLossy(t *testing.T) {
	padded := hexa.FromBytes([]byte{0x00, 0xff})
	plain := hexa.FromBytes([]byte{0xff})

	a, err := padded.Numeric()
	require.NoError(t, err)
	b, err := plain.Numeric()
	require.NoError(t, err)

	assert.Equal(t, uint64(255), a)
	assert.Equal(t, a, b)
	assert.False(t, padded.Equal(plain))
	assert.NotEqual(t, padded, plain)
}

func TestCompare(t *testing.T) {
	a := hexa.MustFromText("00ff")
	b := hexa.MustFromText("ff")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(hexa.FromBytes([]byte{0x00, 0xff})))
}

func TestPairEqual(t *testing.T) {
	p := hexa.Pair{First: hexa.MustFromText("ff"), Second: hexa.MustFromText("00")}

	assert.True(t, p.Equal(hexa.Pair{First: hexa.FromNumeric(255), Second: hexa.FromNumeric(0)}))
	assert.False(t, p.Equal(hexa.Pair{First: hexa.MustFromText("00"), Second: hexa.MustFromText("ff")}))
}

func TestTextMarshaler(t *testing.T) {
	data, err := json.Marshal(map[string]hexa.Hex{"id": hexa.MustFromText("0A0b")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"0a0b"}`, string(data))

	var got map[string]hexa.Hex
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, hexa.MustFromText("0a0b"), got["id"])

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"id":"0"}`), &got), hexa.ErrDecode)
}
