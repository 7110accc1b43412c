// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hwfix

import (
	"fmt"
	"math"

	mu "github.com/avdva/hwfix/internal/mathutil"
	"github.com/shopspring/decimal"
)

// MaxGridBits is the largest number of magnitude bits (word bits excluding the sign bit)
// a Format can describe. Every grid point of such a format is exactly representable as a float64.
const MaxGridBits = 53

// RoundingMode defines how a scaled value is mapped onto the integer grid.
type RoundingMode uint8

const (
	// Floor rounds toward negative infinity.
	Floor RoundingMode = iota
	// Ceiling rounds toward positive infinity.
	Ceiling
	// TowardZero rounds to the nearest grid point, ties toward zero.
	TowardZero
	// AwayFromZero rounds to the nearest grid point, ties away from zero.
	AwayFromZero
)

var roundingLabels = [...]string{
	Floor:        "Floor",
	Ceiling:      "Ceiling",
	TowardZero:   "TowardZero",
	AwayFromZero: "AwayFromZero",
}

// ParseRoundingMode returns a rounding mode for its label.
// Labels are case-sensitive: "Floor", "Ceiling", "TowardZero", "AwayFromZero".
func ParseRoundingMode(label string) (RoundingMode, error) {
	for m, l := range roundingLabels {
		if l == label {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRoundingMode, label)
}

// MustParseRoundingMode is like ParseRoundingMode, but panics on error.
func MustParseRoundingMode(label string) RoundingMode {
	m, err := ParseRoundingMode(label)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the label of the mode, as accepted by ParseRoundingMode.
func (m RoundingMode) String() string {
	if m.valid() {
		return roundingLabels[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", uint8(m))
}

func (m RoundingMode) valid() bool {
	return int(m) < len(roundingLabels)
}

func (m RoundingMode) round(x float64) float64 {
	switch m {
	case Ceiling:
		return math.Ceil(x)
	case TowardZero:
		return mu.RoundHalfTowardZero(x)
	case AwayFromZero:
		return mu.RoundHalfAwayFromZero(x)
	default:
		return math.Floor(x)
	}
}

// Format describes a fixed-point representation.
// The zero Format is invalid; use NewFormat.
// Formats are comparable with ==.
type Format struct {
	signed   bool
	wordBits uint32
	fracBits uint32
	rounding RoundingMode
}

// NewFormat returns a format for given signedness, word width, fraction width, and rounding.
// Returns ErrInvalidFormat, if wordBits == 0, fracBits >= wordBits, or the word
// has more than MaxGridBits bits besides the sign bit.
func NewFormat(signed bool, wordBits, fracBits uint32, rounding RoundingMode) (Format, error) {
	f := Format{signed: signed, wordBits: wordBits, fracBits: fracBits, rounding: rounding}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// NewFormatFromLabel is like NewFormat, but takes the rounding mode as a label.
func NewFormatFromLabel(signed bool, wordBits, fracBits uint32, rounding string) (Format, error) {
	m, err := ParseRoundingMode(rounding)
	if err != nil {
		return Format{}, err
	}
	return NewFormat(signed, wordBits, fracBits, m)
}

// MustNewFormat is like NewFormat, but panics on error.
func MustNewFormat(signed bool, wordBits, fracBits uint32, rounding RoundingMode) Format {
	f, err := NewFormat(signed, wordBits, fracBits, rounding)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate checks the format's invariants.
func (f Format) Validate() error {
	switch {
	case f.wordBits == 0:
		return fmt.Errorf("%w: zero word width", ErrInvalidFormat)
	case f.wordBits > f.maxWordBits():
		return fmt.Errorf("%w: word width %d exceeds %d bits", ErrInvalidFormat, f.wordBits, f.maxWordBits())
	case f.fracBits >= f.wordBits:
		return fmt.Errorf("%w: %d fraction bits in a %d-bit word", ErrInvalidFormat, f.fracBits, f.wordBits)
	case !f.rounding.valid():
		return fmt.Errorf("%w: %v", ErrInvalidFormat, f.rounding)
	}
	return nil
}

func (f Format) maxWordBits() uint32 {
	if f.signed {
		return MaxGridBits + 1
	}
	return MaxGridBits
}

// Signed returns true for two's complement formats.
func (f Format) Signed() bool { return f.signed }

// WordBits returns the total width of the format.
func (f Format) WordBits() uint32 { return f.wordBits }

// FracBits returns the number of fractional bits.
func (f Format) FracBits() uint32 { return f.fracBits }

// IntBits returns the number of integer bits, excluding the sign bit.
func (f Format) IntBits() uint32 {
	if f.signed {
		return f.wordBits - f.fracBits - 1
	}
	return f.wordBits - f.fracBits
}

// Rounding returns the rounding mode.
func (f Format) Rounding() RoundingMode { return f.rounding }

// WithRounding returns a copy of f with another rounding mode.
func (f Format) WithRounding(m RoundingMode) Format {
	f.rounding = m
	return f
}

// Scale returns 2^frac_bits.
func (f Format) Scale() float64 {
	return mu.Pow2(int(f.fracBits))
}

// FullScale returns 2^(word_bits - frac_bits - sign), the magnitude bound of the format.
func (f Format) FullScale() float64 {
	return mu.Pow2(int(f.IntBits()))
}

// Resolution returns the grid step 2^-frac_bits.
func (f Format) Resolution() float64 {
	return mu.Pow2(-int(f.fracBits))
}

// UpperLimit returns the largest representable value.
func (f Format) UpperLimit() float64 {
	return f.FullScale() - f.Resolution()
}

// LowerLimit returns the smallest representable value.
func (f Format) LowerLimit() float64 {
	if f.signed {
		return -f.FullScale()
	}
	return 0
}

// Span returns UpperLimit() - LowerLimit().
func (f Format) Span() float64 {
	return f.UpperLimit() - f.LowerLimit()
}

// scaleFactor returns the factor mapping a real value onto the integer grid.
// It is computed from the word width and the full scale, which gives 2^frac_bits
// for both signed and unsigned formats.
func (f Format) scaleFactor() float64 {
	w := int(f.wordBits)
	if f.signed {
		w--
	}
	return mu.Pow2(w) / f.FullScale()
}

// String returns the format as sign, word and fraction widths followed by the rounding,
// like "s18.12/Floor" or "u8.4/Ceiling".
func (f Format) String() string {
	s := 'u'
	if f.signed {
		s = 's'
	}
	return fmt.Sprintf("%c%d.%d/%s", s, f.wordBits, f.fracBits, f.rounding)
}

// ResolutionDecimal returns the exact grid step.
func (f Format) ResolutionDecimal() decimal.Decimal {
	return pow5(f.fracBits).Shift(-int32(f.fracBits))
}

// pow5 returns 5^n. 2^-n == 5^n * 10^-n.
func pow5(n uint32) decimal.Decimal {
	result, five := decimal.New(1, 0), decimal.New(5, 0)
	for i := uint32(0); i < n; i++ {
		result = result.Mul(five)
	}
	return result
}
