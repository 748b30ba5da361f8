package hexa

type (
	// Kind is the structural type of the next value a Decoder holds.
	Kind uint8

	// Encoder is the output side of a host serialization engine.
	Encoder interface {
		EncodeString(s string) error
		EncodeUint(n uint64) error
		EncodeNil() error

		// Write a sequence of n elements. elem is called once per index, in order.
		EncodeSeq(n int, elem func(i int, e Encoder) error) error
	}

	// Decoder is the input side of a host serialization engine.
	Decoder interface {
		// Peek the kind of the next value without consuming it.
		Kind() (Kind, error)

		DecodeString() (string, error)
		DecodeUint() (uint64, error)
		DecodeNil() error

		// Read a sequence, calling elem for each element in order.
		// elem must consume exactly one value from d, and returning an error stops the read.
		DecodeSeq(elem func(i int, d Decoder) error) error
	}

	// Codec encodes and decodes one shape of Hex value.
	// Implementations are zero-size types, so the codec for a shape is chosen by its type.
	Codec[T any] interface {
		Encode(e Encoder, v T) error
		Decode(d Decoder) (T, error)

		// Whether the encoded form may be the nil marker.
		Nullable() bool
	}

	// Strategy is the wire form of a single Hex.
	Strategy interface {
		Name() string
		EncodeHex(e Encoder, h Hex) error
		DecodeHex(d Decoder) (Hex, error)
	}
)

const (
	KindInvalid Kind = iota
	KindNil
	KindBool
	KindNumber
	KindString
	KindSeq
	KindMap
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindNil:     "nil",
	KindBool:    "bool",
	KindNumber:  "number",
	KindString:  "string",
	KindSeq:     "sequence",
	KindMap:     "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
