package json

import (
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/pwnedgod/hexa"
)

type (
	encoder struct {
		s *jsoniter.Stream
	}

	decoder struct {
		it *jsoniter.Iterator
	}
)

var valueKinds = map[jsoniter.ValueType]hexa.Kind{
	jsoniter.InvalidValue: hexa.KindInvalid,
	jsoniter.StringValue:  hexa.KindString,
	jsoniter.NumberValue:  hexa.KindNumber,
	jsoniter.NilValue:     hexa.KindNil,
	jsoniter.BoolValue:    hexa.KindBool,
	jsoniter.ArrayValue:   hexa.KindSeq,
	jsoniter.ObjectValue:  hexa.KindMap,
}

func NewEncoder(s *jsoniter.Stream) hexa.Encoder {
	return &encoder{s: s}
}

func NewDecoder(it *jsoniter.Iterator) hexa.Decoder {
	return &decoder{it: it}
}

// Encode runs c over v and returns the JSON text.
func Encode[T any](c hexa.Codec[T], v T) ([]byte, error) {
	s := api.BorrowStream(nil)
	defer api.ReturnStream(s)

	if err := c.Encode(NewEncoder(s), v); err != nil {
		return nil, err
	}

	if s.Error != nil {
		return nil, errors.Wrap(s.Error, "hexa/json: encode")
	}

	// The stream buffer goes back to the pool.
	return append([]byte(nil), s.Buffer()...), nil
}

// Decode runs c over a single JSON value in data.
func Decode[T any](c hexa.Codec[T], data []byte) (T, error) {
	it := api.BorrowIterator(data)
	defer api.ReturnIterator(it)

	d := &decoder{it: it}
	v, err := c.Decode(d)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := d.err("decode"); err != nil {
		var zero T
		return zero, err
	}

	// Only whitespace may follow; anything else stops short of io.EOF.
	if it.WhatIsNext() != jsoniter.InvalidValue || !errors.Is(it.Error, io.EOF) {
		var zero T
		return zero, errors.New("hexa/json: trailing data after value")
	}

	return v, nil
}

func (e *encoder) EncodeString(v string) error {
	e.s.WriteString(v)
	return e.s.Error
}

func (e *encoder) EncodeUint(n uint64) error {
	e.s.WriteUint64(n)
	return e.s.Error
}

func (e *encoder) EncodeNil() error {
	e.s.WriteNil()
	return e.s.Error
}

func (e *encoder) EncodeSeq(n int, elem func(i int, e hexa.Encoder) error) error {
	e.s.WriteArrayStart()
	for i := 0; i < n; i++ {
		if i > 0 {
			e.s.WriteMore()
		}

		if err := elem(i, e); err != nil {
			return err
		}
	}
	e.s.WriteArrayEnd()

	return e.s.Error
}

func (d *decoder) Kind() (hexa.Kind, error) {
	vt := d.it.WhatIsNext()
	if vt == jsoniter.InvalidValue && d.it.Error != nil {
		return hexa.KindInvalid, errors.Wrap(d.it.Error, "hexa/json: peek")
	}

	return valueKinds[vt], nil
}

func (d *decoder) DecodeString() (string, error) {
	s := d.it.ReadString()
	return s, d.err("read string")
}

// DecodeUint reads the whole number token, so exponents and fractions are
// rejected instead of cut short.
func (d *decoder) DecodeUint() (uint64, error) {
	s := string(d.it.ReadNumber())
	if err := d.err("read number"); err != nil {
		return 0, err
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &hexa.OverflowError{Input: s, Bits: 64}
		}
		return 0, &hexa.NumberError{Input: s}
	}
	return n, nil
}

func (d *decoder) DecodeNil() error {
	if !d.it.ReadNil() {
		if err := d.err("read null"); err != nil {
			return err
		}
		return errors.New("hexa/json: expected null")
	}
	return nil
}

func (d *decoder) DecodeSeq(elem func(i int, d hexa.Decoder) error) error {
	var (
		i       int
		elemErr error
	)
	d.it.ReadArrayCB(func(*jsoniter.Iterator) bool {
		if elemErr = elem(i, d); elemErr != nil {
			return false
		}

		i++
		return true
	})
	if elemErr != nil {
		return elemErr
	}

	return d.err("read array")
}

// A value that ends the input leaves io.EOF behind, which is not a failure.
func (d *decoder) err(op string) error {
	if d.it.Error == nil || errors.Is(d.it.Error, io.EOF) {
		return nil
	}
	return errors.Wrapf(d.it.Error, "hexa/json: %s", op)
}
