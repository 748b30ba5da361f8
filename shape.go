package hexa

type (
	// Bare is a single Hex written with strategy S.
	Bare[S Strategy] struct{}

	// Optional is a *T written as the nil marker when absent and with C otherwise.
	//
	// When C is itself nullable, a present value is wrapped in a one-element sequence,
	// so that absent, present-with-absent and present-with-present stay distinguishable.
	Optional[T any, C Codec[T]] struct{}

	// List is an ordered sequence of Hex written with strategy S.
	List[S Strategy] struct{}

	// PairOf is a Pair written as a two-element sequence with strategy S.
	// Sequences with fewer or more than two elements are rejected.
	PairOf[S Strategy] struct{}
)

var (
	_ Codec[Hex]   = Bare[Text]{}
	_ Codec[*Hex]  = Optional[Hex, Bare[Text]]{}
	_ Codec[**Hex] = Optional[*Hex, Optional[Hex, Bare[Text]]]{}
	_ Codec[[]Hex] = List[Text]{}
	_ Codec[Pair]  = PairOf[Text]{}
)

const pairLen = 2

func (Bare[S]) Encode(e Encoder, v Hex) error {
	var s S
	return s.EncodeHex(e, v)
}

func (Bare[S]) Decode(d Decoder) (Hex, error) {
	var s S
	return s.DecodeHex(d)
}

func (Bare[S]) Nullable() bool {
	return false
}

func (Optional[T, C]) Encode(e Encoder, v *T) error {
	if v == nil {
		return e.EncodeNil()
	}

	var c C
	if !c.Nullable() {
		return c.Encode(e, *v)
	}

	return e.EncodeSeq(1, func(_ int, e Encoder) error {
		return c.Encode(e, *v)
	})
}

func (Optional[T, C]) Decode(d Decoder) (*T, error) {
	kind, err := d.Kind()
	if err != nil {
		return nil, err
	}

	if kind == KindNil {
		return nil, d.DecodeNil()
	}

	var c C
	if !c.Nullable() {
		v, err := c.Decode(d)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	if kind != KindSeq {
		return nil, &ShapeMismatchError{Expected: KindSeq, Observed: kind}
	}

	var (
		v     T
		count int
	)
	err = d.DecodeSeq(func(i int, d Decoder) error {
		if i > 0 {
			return &LengthError{Index: i, Want: 1}
		}

		var err error
		v, err = c.Decode(d)
		count++
		return err
	})
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, &LengthError{Index: 0, Want: 1}
	}
	return &v, nil
}

func (Optional[T, C]) Nullable() bool {
	return true
}

func (List[S]) Encode(e Encoder, v []Hex) error {
	var s S
	return e.EncodeSeq(len(v), func(i int, e Encoder) error {
		return s.EncodeHex(e, v[i])
	})
}

func (List[S]) Decode(d Decoder) ([]Hex, error) {
	if err := expect(d, KindSeq); err != nil {
		return nil, err
	}

	var s S
	items := make([]Hex, 0)
	err := d.DecodeSeq(func(_ int, d Decoder) error {
		h, err := s.DecodeHex(d)
		if err != nil {
			return err
		}

		items = append(items, h)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (List[S]) Nullable() bool {
	return false
}

func (PairOf[S]) Encode(e Encoder, v Pair) error {
	var s S
	return e.EncodeSeq(pairLen, func(i int, e Encoder) error {
		if i == 0 {
			return s.EncodeHex(e, v.First)
		}
		return s.EncodeHex(e, v.Second)
	})
}

func (PairOf[S]) Decode(d Decoder) (Pair, error) {
	if err := expect(d, KindSeq); err != nil {
		return Pair{}, err
	}

	var (
		s     S
		p     Pair
		count int
	)
	err := d.DecodeSeq(func(i int, d Decoder) error {
		var err error
		switch i {
		case 0:
			p.First, err = s.DecodeHex(d)
		case 1:
			p.Second, err = s.DecodeHex(d)
		default:
			return &LengthError{Index: i, Want: pairLen}
		}

		count++
		return err
	})
	if err != nil {
		return Pair{}, err
	}

	if count < pairLen {
		return Pair{}, &LengthError{Index: count, Want: pairLen}
	}
	return p, nil
}

func (PairOf[S]) Nullable() bool {
	return false
}
