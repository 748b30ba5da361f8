package msgpack

import (
	"bytes"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pwnedgod/hexa"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

type (
	encoder struct {
		enc *msgpack.Encoder
	}

	decoder struct {
		dec *msgpack.Decoder
	}
)

func NewEncoder(enc *msgpack.Encoder) hexa.Encoder {
	return &encoder{enc: enc}
}

func NewDecoder(dec *msgpack.Decoder) hexa.Decoder {
	return &decoder{dec: dec}
}

// Encode runs c over v and returns the MessagePack bytes.
func Encode[T any](c hexa.Codec[T], v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(NewEncoder(msgpack.NewEncoder(&buf)), v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode runs c over a single MessagePack value in data.
func Decode[T any](c hexa.Codec[T], data []byte) (T, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))

	v, err := c.Decode(NewDecoder(dec))
	if err != nil {
		var zero T
		return zero, err
	}

	if _, err := dec.PeekCode(); err == nil {
		var zero T
		return zero, errors.New("hexa/msgpack: trailing data after value")
	}

	return v, nil
}

func (e *encoder) EncodeString(v string) error {
	return e.enc.EncodeString(v)
}

func (e *encoder) EncodeUint(n uint64) error {
	return e.enc.EncodeUint(n)
}

func (e *encoder) EncodeNil() error {
	return e.enc.EncodeNil()
}

func (e *encoder) EncodeSeq(n int, elem func(i int, e hexa.Encoder) error) error {
	if err := e.enc.EncodeArrayLen(n); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if err := elem(i, e); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) Kind() (hexa.Kind, error) {
	c, err := d.dec.PeekCode()
	if err != nil {
		return hexa.KindInvalid, errors.Wrap(err, "hexa/msgpack: peek")
	}

	return codeKind(c), nil
}

func (d *decoder) DecodeString() (string, error) {
	s, err := d.dec.DecodeString()
	if err != nil {
		return "", errors.Wrap(err, "hexa/msgpack: read string")
	}
	return s, nil
}

// DecodeUint reads unsigned codes as they are and signed codes only when
// non-negative. Floats are refused.
func (d *decoder) DecodeUint() (uint64, error) {
	c, err := d.dec.PeekCode()
	if err != nil {
		return 0, errors.Wrap(err, "hexa/msgpack: peek")
	}

	switch {
	case c <= msgpcode.PosFixedNumHigh, isUint(c):
		n, err := d.dec.DecodeUint64()
		if err != nil {
			return 0, errors.Wrap(err, "hexa/msgpack: read number")
		}
		return n, nil

	case c >= msgpcode.NegFixedNumLow, isInt(c):
		n, err := d.dec.DecodeInt64()
		if err != nil {
			return 0, errors.Wrap(err, "hexa/msgpack: read number")
		}
		if n < 0 {
			return 0, &hexa.NumberError{Input: strconv.FormatInt(n, 10)}
		}
		return uint64(n), nil

	case c == msgpcode.Float, c == msgpcode.Double:
		f, err := d.dec.DecodeFloat64()
		if err != nil {
			return 0, errors.Wrap(err, "hexa/msgpack: read number")
		}
		return 0, &hexa.NumberError{Input: strconv.FormatFloat(f, 'g', -1, 64)}
	}

	return 0, &hexa.ShapeMismatchError{Expected: hexa.KindNumber, Observed: codeKind(c)}
}

func (d *decoder) DecodeNil() error {
	return errors.Wrap(d.dec.DecodeNil(), "hexa/msgpack: read nil")
}

func (d *decoder) DecodeSeq(elem func(i int, d hexa.Decoder) error) error {
	n, err := d.dec.DecodeArrayLen()
	if err != nil {
		return errors.Wrap(err, "hexa/msgpack: read array")
	}

	// -1 is a nil array.
	for i := 0; i < n; i++ {
		if err := elem(i, d); err != nil {
			return err
		}
	}
	return nil
}

func codeKind(c byte) hexa.Kind {
	switch {
	case c == msgpcode.Nil:
		return hexa.KindNil
	case c == msgpcode.True || c == msgpcode.False:
		return hexa.KindBool
	case msgpcode.IsFixedNum(c), isNumber(c):
		return hexa.KindNumber
	case msgpcode.IsString(c), msgpcode.IsBin(c):
		return hexa.KindString
	case msgpcode.IsFixedArray(c), c == msgpcode.Array16, c == msgpcode.Array32:
		return hexa.KindSeq
	case msgpcode.IsFixedMap(c), c == msgpcode.Map16, c == msgpcode.Map32:
		return hexa.KindMap
	}
	return hexa.KindInvalid
}

func isNumber(c byte) bool {
	return isUint(c) || isInt(c) || c == msgpcode.Float || c == msgpcode.Double
}

func isUint(c byte) bool {
	return c == msgpcode.Uint8 || c == msgpcode.Uint16 || c == msgpcode.Uint32 || c == msgpcode.Uint64
}

func isInt(c byte) bool {
	return c == msgpcode.Int8 || c == msgpcode.Int16 || c == msgpcode.Int32 || c == msgpcode.Int64
}
