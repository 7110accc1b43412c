package typed

import "github.com/avdva/hwfix"

// Common formats, all of them use floor rounding, as plain truncation of the
// low bits does in hardware. Names follow IntM_N/UintM_N, where M is the number
// of integer bits (including the sign bit) and N the number of fractional bits.
type (
	// Int1_15 is s16.15, [-1, 1).
	Int1_15 struct{}
	// Int1_31 is s32.31, [-1, 1).
	Int1_31 struct{}
	// Int4_4 is s8.4, [-8, 7.9375].
	Int4_4 struct{}
	// Int6_12 is s18.12, [-32, 31.999755859375].
	Int6_12 struct{}
	// Int8_16 is s24.16, [-128, 128).
	Int8_16 struct{}
	// Uint1_7 is u8.7, [0, 1.9921875].
	Uint1_7 struct{}
	// Uint4_4 is u8.4, [0, 15.9375].
	Uint4_4 struct{}
)

var (
	int1_15 = hwfix.MustNewFormat(true, 16, 15, hwfix.Floor)
	int1_31 = hwfix.MustNewFormat(true, 32, 31, hwfix.Floor)
	int4_4  = hwfix.MustNewFormat(true, 8, 4, hwfix.Floor)
	int6_12 = hwfix.MustNewFormat(true, 18, 12, hwfix.Floor)
	int8_16 = hwfix.MustNewFormat(true, 24, 16, hwfix.Floor)
	uint1_7 = hwfix.MustNewFormat(false, 8, 7, hwfix.Floor)
	uint4_4 = hwfix.MustNewFormat(false, 8, 4, hwfix.Floor)
)

func (Int1_15) Format() hwfix.Format { return int1_15 }
func (Int1_31) Format() hwfix.Format { return int1_31 }
func (Int4_4) Format() hwfix.Format  { return int4_4 }
func (Int6_12) Format() hwfix.Format { return int6_12 }
func (Int8_16) Format() hwfix.Format { return int8_16 }
func (Uint1_7) Format() hwfix.Format { return uint1_7 }
func (Uint4_4) Format() hwfix.Format { return uint4_4 }
