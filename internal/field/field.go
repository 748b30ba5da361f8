// Package field holds the struct field type behind the astext and asnum facades.
package field

import (
	"github.com/pwnedgod/hexa"
	hexajson "github.com/pwnedgod/hexa/codec/json"
	hexamsgpack "github.com/pwnedgod/hexa/codec/msgpack"
	"github.com/vmihailenco/msgpack/v5"
)

// Field is a struct field holding V, written with the codec C.
// It hooks into encoding/json, jsoniter and msgpack.
type Field[T any, C hexa.Codec[T]] struct {
	V T
}

func (f Field[T, C]) EncodeHex(e hexa.Encoder) error {
	var c C
	return c.Encode(e, f.V)
}

func (f *Field[T, C]) DecodeHex(d hexa.Decoder) error {
	var c C
	v, err := c.Decode(d)
	if err != nil {
		return err
	}

	f.V = v
	return nil
}

func (f Field[T, C]) MarshalJSON() ([]byte, error) {
	var c C
	return hexajson.Encode[T](c, f.V)
}

func (f *Field[T, C]) UnmarshalJSON(data []byte) error {
	var c C
	v, err := hexajson.Decode[T](c, data)
	if err != nil {
		return err
	}

	f.V = v
	return nil
}

func (f Field[T, C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return f.EncodeHex(hexamsgpack.NewEncoder(enc))
}

func (f *Field[T, C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return f.DecodeHex(hexamsgpack.NewDecoder(dec))
}
