package hexa

import (
	"bytes"
	"encoding/hex"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Hex is a byte sequence viewed either as lowercase hex text or as an unsigned number.
// The zero value is an empty sequence.
type Hex struct {
	b []byte
}

// Pair is a fixed two-element tuple of Hex values.
type Pair struct {
	First  Hex
	Second Hex
}

// FromBytes takes ownership of b.
func FromBytes(b []byte) Hex {
	if b == nil {
		b = []byte{}
	}
	return Hex{b: b}
}

// FromText decodes s as hex digits. The length must be even.
func FromText(s string) (Hex, error) {
	if len(s)%2 != 0 {
		return Hex{}, &DecodeError{Input: s, Offset: len(s)}
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		var invalid hex.InvalidByteError
		offset := 0
		if errors.As(err, &invalid) {
			offset = bytes.IndexByte([]byte(s), byte(invalid))
		}
		return Hex{}, &DecodeError{Input: s, Offset: offset}
	}

	return FromBytes(b), nil
}

// MustFromText is like FromText but panics on malformed input.
// Only meant for literals.
func MustFromText(s string) Hex {
	h, err := FromText(s)
	if err != nil {
		panic(err)
	}
	return h
}

// FromNumeric converts n to its shortest byte-aligned hex form, so 15 becomes "0f".
func FromNumeric(n uint64) Hex {
	s := strconv.FormatUint(n, 16)
	if len(s)%2 != 0 {
		s = "0" + s
	}

	// Cannot fail, s is even-length base 16.
	b, _ := hex.DecodeString(s)
	return Hex{b: b}
}

func (h Hex) Text() string {
	return hex.EncodeToString(h.b)
}

func (h Hex) String() string {
	return h.Text()
}

// Numeric parses the text form as base 16. Leading zero bytes are dropped first, so only
// values with more than eight significant bytes overflow. The empty value is 0.
func (h Hex) Numeric() (uint64, error) {
	significant := bytes.TrimLeft(h.b, "\x00")
	if len(significant) > 8 {
		return 0, &OverflowError{Input: h.Text(), Bits: 64}
	}

	var n uint64
	for _, c := range significant {
		n = n<<8 | uint64(c)
	}
	return n, nil
}

// Bytes returns the underlying bytes without copying. Do not modify the result.
func (h Hex) Bytes() []byte {
	return h.b
}

func (h Hex) Len() int {
	return len(h.b)
}

// Equal compares bytes, not numbers: "00ff" and "ff" differ.
func (h Hex) Equal(o Hex) bool {
	return bytes.Equal(h.b, o.b)
}

func (h Hex) Compare(o Hex) int {
	return bytes.Compare(h.b, o.b)
}

func (h Hex) MarshalText() ([]byte, error) {
	return []byte(h.Text()), nil
}

func (h *Hex) UnmarshalText(text []byte) error {
	v, err := FromText(string(text))
	if err != nil {
		return err
	}

	*h = v
	return nil
}

func (p Pair) Equal(o Pair) bool {
	return p.First.Equal(o.First) && p.Second.Equal(o.Second)
}
