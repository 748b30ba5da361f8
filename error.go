package hexa

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrDecode        = errors.New("hexa: invalid hex string")
	ErrOverflow      = errors.New("hexa: numeric overflow")
	ErrLength        = errors.New("hexa: invalid sequence length")
	ErrShapeMismatch = errors.New("hexa: shape mismatch")
	ErrNumber        = errors.New("hexa: not an unsigned integer")
)

type (
	// DecodeError reports text that is not an even-length run of hex digits.
	DecodeError struct {
		Input string

		// Offset of the first offending character, or len(Input) for odd lengths.
		Offset int
	}

	// OverflowError reports a value with more significant bits than the numeric form holds.
	OverflowError struct {
		Input string
		Bits  int
	}

	// LengthError reports a fixed-size sequence with a missing or surplus element.
	LengthError struct {
		Index int
		Want  int
	}

	ShapeMismatchError struct {
		Expected Kind
		Observed Kind
	}

	// NumberError reports a number not written as a plain unsigned integer.
	NumberError struct {
		Input string
	}
)

func (e *DecodeError) Error() string {
	if e.Offset >= len(e.Input) {
		return fmt.Sprintf("hexa: odd length hex string %q", e.Input)
	}
	return fmt.Sprintf("hexa: invalid hex character %q at offset %d in %q", e.Input[e.Offset], e.Offset, e.Input)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("hexa: %s does not fit in %d bits", e.Input, e.Bits)
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// Missing reports whether the error is about an absent element rather than a surplus one.
func (e *LengthError) Missing() bool {
	return e.Index < e.Want
}

func (e *LengthError) Error() string {
	if e.Missing() {
		return fmt.Sprintf("hexa: missing element at index %d, want %d elements", e.Index, e.Want)
	}
	return fmt.Sprintf("hexa: unexpected element at index %d, want %d elements", e.Index, e.Want)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("hexa: expected %s, got %s", e.Expected, e.Observed)
}

func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("hexa: %s is not an unsigned integer", e.Input)
}

func (e *NumberError) Is(target error) bool {
	return target == ErrNumber
}

func expect(d Decoder, want Kind) error {
	got, err := d.Kind()
	if err != nil {
		return err
	}

	if got != want {
		return &ShapeMismatchError{Expected: want, Observed: got}
	}
	return nil
}
