package digitize

import "unsafe"

// MaxDigits is the longest decimal expansion of any supported width (math.MaxUint64).
const MaxDigits = 20

// Integer is the set of integer types digits can be taken from or folded into.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Digits is a base-10 digit sequence, most significant digit first.
// Every digit carries the sign of the number it came from, so -123 is [-1 -2 -3].
type Digits []int8

// Int recomposes d into an int64. See FromDigits.
func (d Digits) Int() int64 { return FromDigits(d) }

// ToDigits returns the decimal digits of n, most significant first.
// Zero has no digits and yields an empty sequence.
//
// For negative n every digit is negative. Remainder and quotient are taken in T's own
// arithmetic, so the minimum value of a signed width is handled without negation.
func ToDigits[T Integer](n T) Digits {
	if n == 0 {
		return nil
	}
	var buf [MaxDigits]int8
	i := len(buf)
	for n != 0 {
		i--
		buf[i] = int8(n % 10) // always in (-10, 10)
		n /= 10
	}
	out := make(Digits, len(buf)-i)
	copy(out, buf[i:])
	return out
}

// FromDigits folds digits back into a number: acc = acc*10 + d, starting at 0.
//
// No validation is done. Digits outside [-9, 9] or of mixed sign give a
// deterministic but meaningless result. The accumulator wraps on overflow like any
// int64 arithmetic; use FromDigitsChecked to detect it.
func FromDigits[S ~[]D, D Integer](digits S) int64 {
	var acc int64
	for _, d := range digits {
		acc = acc*10 + int64(d)
	}
	return acc
}

// FromDigitsAs is FromDigits with a caller-chosen result type. The fold is done in T
// and wraps in T.
//
//	n := digitize.FromDigitsAs[uint64](digitize.ToDigits(uint64(math.MaxUint64)))
func FromDigitsAs[T Integer, S ~[]D, D Integer](digits S) T {
	var acc T
	for _, d := range digits {
		acc = acc*10 + T(d)
	}
	return acc
}

// FromDigitsChecked recomposes digits into T, rejecting anything FromDigitsAs would
// silently get wrong: digits outside [-9, 9], digits of mixed sign, negative digits
// for an unsigned T and results that do not fit in T.
// The returned error is a *DigitError.
func FromDigitsChecked[T Integer, S ~[]D, D Integer](digits S) (T, error) {
	var acc T
	unsigned := !Signed[T]()
	sign := 0
	for i, d := range digits {
		v, err := checkDigit(i, d, &sign)
		if err != nil {
			return 0, err
		}
		if v < 0 && unsigned {
			return 0, &DigitError{Index: i, Digit: v, Err: ErrOverflow}
		}
		next := acc * 10
		if next/10 != acc {
			return 0, &DigitError{Index: i, Digit: v, Err: ErrOverflow}
		}
		sum := next + T(v)
		if (v > 0 && sum < next) || (v < 0 && sum > next) {
			return 0, &DigitError{Index: i, Digit: v, Err: ErrOverflow}
		}
		acc = sum
	}
	return acc, nil
}

// Validate reports the first digit outside [-9, 9] or whose sign disagrees with the
// digits before it. Zero digits have no sign.
func Validate[S ~[]D, D Integer](digits S) error {
	sign := 0
	for i, d := range digits {
		if _, err := checkDigit(i, d, &sign); err != nil {
			return err
		}
	}
	return nil
}

// FromDigitsRadix folds digits in an arbitrary base. It panics if base < 2.
// Only base 10 is the inverse of ToDigits.
func FromDigitsRadix[S ~[]D, D Integer](digits S, base int) int64 {
	if base < 2 {
		panic("digitize: illegal radix")
	}
	b := int64(base)
	var acc int64
	for _, d := range digits {
		acc = acc*b + int64(d)
	}
	return acc
}

// BitSize reports the width of T in bits.
func BitSize[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Signed reports whether T is a signed integer type.
func Signed[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// checkDigit widens d to int64 and checks it against the range and the running sign.
func checkDigit[D Integer](i int, d D, sign *int) (int64, error) {
	if d > 9 {
		return int64(d), &DigitError{Index: i, Digit: int64(d), Err: ErrDigitRange}
	}
	v := int64(d)
	if v < -9 {
		return v, &DigitError{Index: i, Digit: v, Err: ErrDigitRange}
	}
	switch {
	case v > 0:
		if *sign < 0 {
			return v, &DigitError{Index: i, Digit: v, Err: ErrMixedSign}
		}
		*sign = 1
	case v < 0:
		if *sign > 0 {
			return v, &DigitError{Index: i, Digit: v, Err: ErrMixedSign}
		}
		*sign = -1
	}
	return v, nil
}
