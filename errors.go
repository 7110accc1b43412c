package hwfix

import "errors"

var (
	// ErrInvalidFormat is returned for formats with word_bits == 0,
	// frac_bits >= word_bits, or more than MaxGridBits magnitude bits.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnknownRoundingMode is returned for unparsable rounding labels.
	ErrUnknownRoundingMode = errors.New("unknown rounding mode")
	// ErrFormatMismatch is returned when operands of a binary operation have different formats.
	ErrFormatMismatch = errors.New("format mismatch")
	// ErrDivisionByZero is returned when dividing by a zero value.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonFiniteResult is returned when a NaN or an infinity would have to be quantized.
	ErrNonFiniteResult = errors.New("non-finite result")
	// ErrInvalidExponent is returned by Pow for exponents below 1.
	ErrInvalidExponent = errors.New("invalid exponent")
)
