// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hwfix

import (
	"fmt"

	mu "github.com/avdva/hwfix/internal/mathutil"
	"golang.org/x/exp/constraints"
)

// Quantize maps x onto the grid of f using f's rounding mode,
// and saturates the result at [f.LowerLimit(), f.UpperLimit()].
// Values out of range are clamped, never wrapped.
// Returns ErrInvalidFormat for invalid formats and ErrNonFiniteResult for NaN and infinities.
// Quantize is idempotent: Quantize(Quantize(x, f), f) == Quantize(x, f).
func Quantize(x float64, f Format) (float64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	if !mu.IsFinite(x) {
		return 0, fmt.Errorf("%w: quantizing %v to %v", ErrNonFiniteResult, x, f)
	}
	return quantize(x, f), nil
}

// QuantizeFloat is like Quantize, but works with any float type.
// float32 inputs are quantized in float64 and converted back.
func QuantizeFloat[T constraints.Float](x T, f Format) (T, error) {
	q, err := Quantize(float64(x), f)
	return T(q), err
}

// quantize expects a valid format and a finite x.
func quantize(x float64, f Format) float64 {
	sf := f.scaleFactor()
	// x*sf may overflow to an infinity for huge inputs, which is then clamped.
	q := f.rounding.round(x*sf) / sf
	q = mu.Clamp(q, f.LowerLimit(), f.UpperLimit())
	if q == 0 { // normalize -0.
		q = 0
	}
	return q
}
