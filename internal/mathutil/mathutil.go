package mathutil

import "math"

// MaxPow2 is the largest power of two with an exact entry in the table.
const MaxPow2 = 64

var (
	pow2Table = func() [MaxPow2 + 1]float64 {
		var t [MaxPow2 + 1]float64
		for i := range t {
			t[i] = math.Ldexp(1, i)
		}
		return t
	}()
)

// Pow2 returns 2^pow as a float64.
// Exponents outside [-1074, 1023] yield 0 or +Inf, as math.Ldexp does.
func Pow2(pow int) float64 {
	if pow >= 0 && pow <= MaxPow2 {
		return pow2Table[pow]
	}
	return math.Ldexp(1, pow)
}

// RoundHalfTowardZero rounds x to the nearest integer, resolving ties toward zero.
func RoundHalfTowardZero(x float64) float64 {
	t := math.Trunc(x)
	if d := x - t; d > 0.5 {
		t++
	} else if d < -0.5 {
		t--
	}
	return t
}

// RoundHalfAwayFromZero rounds x to the nearest integer, resolving ties away from zero.
func RoundHalfAwayFromZero(x float64) float64 {
	return math.Round(x)
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}

// CeilLog2 returns the smallest n >= 0, such that 2^n >= x.
// x must be positive and finite.
func CeilLog2(x float64) int {
	if x <= 1 {
		return 0
	}
	frac, exp := math.Frexp(x) // x = frac * 2^exp, frac in [0.5, 1)
	if frac == 0.5 {
		return exp - 1
	}
	return exp
}
