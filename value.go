// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package hwfix models fixed-point arithmetic for sizing hardware datapaths.
// Every value is stored as a float64, but is quantized to the bit widths,
// signedness and rounding of a Format, and saturated at its representable range,
// after each operation, the way a fixed-point datapath would compute it.
//
// Values also track the range of what was committed into them,
// which helps to choose word and fraction widths, see the analysis package.
package hwfix

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is a fixed-point number bound to a Format.
// Its raw value is always on the format's grid and within its limits.
// All operations, except Commit, return new values with a fresh Range.
// Binary operations require both operands to have equal formats.
type Value struct {
	raw    float64
	format Format
	rng    Range
}

// New returns a value for x quantized to f.
func New(x float64, f Format) (Value, error) {
	return fromFloat(x, f, "new")
}

// MustNew is like New, but panics on error.
func MustNew(x float64, f Format) Value {
	v, err := New(x, f)
	if err != nil {
		panic(err)
	}
	return v
}

func fromFloat(x float64, f Format, op string) (Value, error) {
	q, err := Quantize(x, f)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", op, err)
	}
	return Value{raw: q, format: f}, nil
}

// Another returns a value for x with the same format as v.
func (v Value) Another(x float64) (Value, error) {
	return fromFloat(x, v.format, "another")
}

// Cast requantizes v to another format.
// Casting to a finer grid and back is exact; narrowing casts generally lose precision.
func (v Value) Cast(f Format) (Value, error) {
	return fromFloat(v.raw, f, "cast")
}

func (v Value) sameFormat(other Value, op string) error {
	if v.format != other.format {
		return fmt.Errorf("%s: %w: %v and %v", op, ErrFormatMismatch, v.format, other.format)
	}
	return nil
}

func (v Value) binary(other Value, op string, fn func(a, b float64) float64) (Value, error) {
	if err := v.sameFormat(other, op); err != nil {
		return Value{}, err
	}
	return fromFloat(fn(v.raw, other.raw), v.format, op)
}

// Add returns v+other.
func (v Value) Add(other Value) (Value, error) {
	return v.binary(other, "add", func(a, b float64) float64 { return a + b })
}

// Sub returns v-other.
func (v Value) Sub(other Value) (Value, error) {
	return v.binary(other, "sub", func(a, b float64) float64 { return a - b })
}

// Mul returns v*other.
func (v Value) Mul(other Value) (Value, error) {
	return v.binary(other, "mul", func(a, b float64) float64 { return a * b })
}

// Div returns v/other. Returns ErrDivisionByZero if other is zero.
func (v Value) Div(other Value) (Value, error) {
	if err := v.sameFormat(other, "div"); err != nil {
		return Value{}, err
	}
	if other.raw == 0 {
		return Value{}, fmt.Errorf("div: %w", ErrDivisionByZero)
	}
	return fromFloat(v.raw/other.raw, v.format, "div")
}

// Neg returns -v. For signed formats -LowerLimit() saturates at UpperLimit(),
// and for unsigned formats any nonzero value saturates at zero.
func (v Value) Neg() (Value, error) {
	return fromFloat(-v.raw, v.format, "neg")
}

// Pow returns v^n computed as n-1 multiplications, each of them quantized.
// Returns ErrInvalidExponent for n < 1.
func (v Value) Pow(n int) (Value, error) {
	if n < 1 {
		return Value{}, fmt.Errorf("pow: %w: %d", ErrInvalidExponent, n)
	}
	result, err := fromFloat(v.raw, v.format, "pow")
	if err != nil {
		return Value{}, err
	}
	for i := 1; i < n; i++ {
		if result, err = fromFloat(result.raw*v.raw, v.format, "pow"); err != nil {
			return Value{}, err
		}
	}
	return result, nil
}

// Commit stores newValue into v, widening v's range to include it.
// Unlike assignment, v keeps the range accumulated so far.
func (v *Value) Commit(newValue Value) error {
	if err := v.sameFormat(newValue, "commit"); err != nil {
		return err
	}
	v.rng.Update(newValue.raw)
	v.raw = newValue.raw
	return nil
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value) Cmp(other Value) (int, error) {
	if err := v.sameFormat(other, "cmp"); err != nil {
		return 0, err
	}
	switch {
	case v.raw < other.raw:
		return -1, nil
	case v.raw > other.raw:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal returns true, if both values have the same format and the same raw value.
// Ranges are ignored. Unlike Eq, it doesn't fail for different formats:
// such values are never equal.
func (v Value) Equal(other Value) bool {
	return v.format == other.format && v.raw == other.raw
}

// Eq returns v == other.
func (v Value) Eq(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return err == nil && c == 0, err
}

// Less returns v < other.
func (v Value) Less(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return c < 0, err
}

// LessOrEqual returns v <= other.
func (v Value) LessOrEqual(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return err == nil && c <= 0, err
}

// Greater returns v > other.
func (v Value) Greater(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return c > 0, err
}

// GreaterOrEqual returns v >= other.
func (v Value) GreaterOrEqual(other Value) (bool, error) {
	c, err := v.Cmp(other)
	return err == nil && c >= 0, err
}

// Float64 returns the quantized value.
func (v Value) Float64() float64 { return v.raw }

// Format returns v's format.
func (v Value) Format() Format { return v.format }

// Signed returns v.Format().Signed().
func (v Value) Signed() bool { return v.format.signed }

// WordBits returns v.Format().WordBits().
func (v Value) WordBits() uint32 { return v.format.wordBits }

// FracBits returns v.Format().FracBits().
func (v Value) FracBits() uint32 { return v.format.fracBits }

// Rounding returns v.Format().Rounding().
func (v Value) Rounding() RoundingMode { return v.format.rounding }

// Range returns the range of the values committed into v.
func (v Value) Range() Range { return v.rng }

// Decimal returns the exact decimal representation of v.
func (v Value) Decimal() decimal.Decimal {
	// raw*2^f is an integer, and raw = (raw*2^f) * 5^f * 10^-f.
	steps, _ := new(big.Float).SetFloat64(v.raw * v.format.Scale()).Int(nil)
	return decimal.NewFromBigInt(steps, 0).Mul(pow5(v.format.fracBits)).Shift(-int32(v.format.fracBits))
}

// String returns the shortest decimal representation of v.
func (v Value) String() string {
	return strconv.FormatFloat(v.raw, 'f', -1, 64)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	return v.String() + fmt.Sprintf(" {%v, [%v, %v]}", v.format, v.rng.Lower, v.rng.Upper)
}
