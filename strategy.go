package hexa

type (
	// Text writes a Hex as its lowercase hex string.
	Text struct{}

	// Number writes a Hex as an unsigned integer. Leading zero bytes are not preserved.
	Number struct{}
)

var (
	_ Strategy = Text{}
	_ Strategy = Number{}
)

func (Text) Name() string {
	return "text"
}

func (Text) EncodeHex(e Encoder, h Hex) error {
	return e.EncodeString(h.Text())
}

func (Text) DecodeHex(d Decoder) (Hex, error) {
	if err := expect(d, KindString); err != nil {
		return Hex{}, err
	}

	s, err := d.DecodeString()
	if err != nil {
		return Hex{}, err
	}

	return FromText(s)
}

func (Number) Name() string {
	return "number"
}

func (Number) EncodeHex(e Encoder, h Hex) error {
	n, err := h.Numeric()
	if err != nil {
		return err
	}

	return e.EncodeUint(n)
}

func (Number) DecodeHex(d Decoder) (Hex, error) {
	if err := expect(d, KindNumber); err != nil {
		return Hex{}, err
	}

	n, err := d.DecodeUint()
	if err != nil {
		return Hex{}, err
	}

	return FromNumeric(n), nil
}
