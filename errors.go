package digitize

import (
	"errors"
	"fmt"
)

var (
	// ErrDigitRange marks a digit outside [-9, 9].
	ErrDigitRange = errors.New("digitize: digit out of range")
	// ErrMixedSign marks a digit whose sign disagrees with earlier digits.
	ErrMixedSign = errors.New("digitize: mixed-sign digits")
	// ErrOverflow marks a sequence whose value does not fit the target type.
	ErrOverflow = errors.New("digitize: value overflows target type")
)

// DigitError describes the offending position of a rejected digit sequence.
type DigitError struct {
	Index int   // position in the sequence
	Digit int64 // the digit at Index, widened
	Err   error // one of ErrDigitRange, ErrMixedSign, ErrOverflow
}

func (e *DigitError) Error() string {
	switch {
	case errors.Is(e.Err, ErrDigitRange):
		return fmt.Sprintf("digitize: digit %d at index %d out of range [-9, 9]", e.Digit, e.Index)
	case errors.Is(e.Err, ErrMixedSign):
		return fmt.Sprintf("digitize: digit %d at index %d has mixed sign", e.Digit, e.Index)
	case errors.Is(e.Err, ErrOverflow):
		return fmt.Sprintf("digitize: overflow at index %d (digit %d)", e.Index, e.Digit)
	default:
		return fmt.Sprintf("digitize: invalid digit %d at index %d: %v", e.Digit, e.Index, e.Err)
	}
}

func (e *DigitError) Unwrap() error { return e.Err }
