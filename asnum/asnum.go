// Package asnum writes Hex fields as unsigned integers.
//
// Leading zero bytes do not survive: 00ff and ff are both written as 255 and read back as ff.
// Values with more than eight significant bytes fail to encode with hexa.ErrOverflow.
package asnum

import (
	"github.com/pwnedgod/hexa"
	"github.com/pwnedgod/hexa/internal/field"
)

type (
	bare     = hexa.Bare[hexa.Number]
	optional = hexa.Optional[hexa.Hex, bare]

	Hex            = field.Field[hexa.Hex, bare]
	Optional       = field.Field[*hexa.Hex, optional]
	DoubleOptional = field.Field[**hexa.Hex, hexa.Optional[*hexa.Hex, optional]]
	List           = field.Field[[]hexa.Hex, hexa.List[hexa.Number]]
	Pair           = field.Field[hexa.Pair, hexa.PairOf[hexa.Number]]

	Field interface {
		Hex | Optional | DoubleOptional | List | Pair
		EncodeHex(e hexa.Encoder) error
	}
)

// Serialize writes f as a number.
func Serialize[F Field](e hexa.Encoder, f F) error {
	return f.EncodeHex(e)
}

// Deserialize reads a number into f.
func Deserialize[F Field, P interface {
	*F
	DecodeHex(d hexa.Decoder) error
}](d hexa.Decoder, f P) error {
	return f.DecodeHex(d)
}
