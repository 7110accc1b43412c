package hwfix

import "math"

// Range is the observed [Lower, Upper] span of a tracked value.
// A new Range is {0, 0}, not {+Inf, -Inf}: the span always includes zero.
// It only widens.
type Range struct {
	Upper float64
	Lower float64
}

// Update widens r to include x.
func (r *Range) Update(x float64) {
	r.Upper = math.Max(r.Upper, x)
	r.Lower = math.Min(r.Lower, x)
}

// Width returns Upper - Lower.
func (r Range) Width() float64 {
	return r.Upper - r.Lower
}

// Contains returns true, if Lower <= x <= Upper.
func (r Range) Contains(x float64) bool {
	return r.Lower <= x && x <= r.Upper
}
