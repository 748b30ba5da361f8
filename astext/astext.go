// Package astext writes Hex fields as lowercase hex strings.
//
//	type Thing struct {
//		Foo astext.Hex      `json:"foo"`
//		Bar astext.Optional `json:"bar"`
//	}
//
// The shape of a field is given by its type. Round-tripping through this package is lossless.
package astext

import (
	"github.com/pwnedgod/hexa"
	"github.com/pwnedgod/hexa/internal/field"
)

type (
	bare     = hexa.Bare[hexa.Text]
	optional = hexa.Optional[hexa.Hex, bare]

	Hex            = field.Field[hexa.Hex, bare]
	Optional       = field.Field[*hexa.Hex, optional]
	DoubleOptional = field.Field[**hexa.Hex, hexa.Optional[*hexa.Hex, optional]]
	List           = field.Field[[]hexa.Hex, hexa.List[hexa.Text]]
	Pair           = field.Field[hexa.Pair, hexa.PairOf[hexa.Text]]

	// Field is satisfied by the field types of this package only.
	Field interface {
		Hex | Optional | DoubleOptional | List | Pair
		EncodeHex(e hexa.Encoder) error
	}
)

// Serialize writes f as text.
func Serialize[F Field](e hexa.Encoder, f F) error {
	return f.EncodeHex(e)
}

// Deserialize reads text into f.
func Deserialize[F Field, P interface {
	*F
	DecodeHex(d hexa.Decoder) error
}](d hexa.Decoder, f P) error {
	return f.DecodeHex(d)
}
