package typed

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/avdva/hwfix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type badSpec struct{}

func (badSpec) Format() hwfix.Format { return hwfix.Format{} }

type ceil8_2 struct{}

func (ceil8_2) Format() hwfix.Format { return hwfix.MustNewFormat(true, 8, 2, hwfix.Ceiling) }

func TestNew(t *testing.T) {
	a := assert.New(t)
	v, err := New[Int6_12](2.12345678)
	if a.NoError(err) {
		a.Equal(2.123291015625, v.Float64())
		a.Equal(hwfix.MustNewFormat(true, 18, 12, hwfix.Floor), v.Format())
	}
	_, err = New[Int6_12](math.NaN())
	a.True(errors.Is(err, hwfix.ErrNonFiniteResult))
	a.Panics(func() {
		MustNew[Int6_12](math.Inf(1))
	})
	a.Panics(func() {
		MustNew[badSpec](1)
	})

	f, err := FromFloat[ceil8_2](float32(1.0625))
	if a.NoError(err) {
		a.Equal(1.25, f.Float64())
	}
}

func TestZeroValue(t *testing.T) {
	a := assert.New(t)
	var z Fixed[Int4_4]
	a.Equal(0.0, z.Float64())
	a.Equal(hwfix.Range{}, z.Range())
	a.Equal(int4_4, z.Format())
	a.Equal("0", z.String())
	one := MustNew[Int4_4](1)
	a.Equal(1.0, z.Add(one).Float64())
	a.True(z.Lt(one))
	a.True(z.Value().Equal(hwfix.MustNew(0, int4_4)))
	z.Commit(one)
	a.Equal(hwfix.Range{Upper: 1}, z.Range())
}

func TestArithmetic(t *testing.T) {
	a := assert.New(t)
	x, y := MustNew[Int6_12](2.12345678), MustNew[Int6_12](6.87654321)
	a.Equal(8.999755859375, x.Add(y).Float64())
	a.Equal(-4.753173828125, x.Sub(y).Float64())
	a.Equal(14.6005859375, x.Mul(y).Float64())
	q, err := x.Div(y)
	if a.NoError(err) {
		a.Equal(0.30859375, q.Float64())
	}
	_, err = x.Div(Fixed[Int6_12]{})
	a.True(errors.Is(err, hwfix.ErrDivisionByZero))

	p, err := x.Pow(2)
	if a.NoError(err) {
		a.Equal(4.50830078125, p.Float64())
	}
	_, err = x.Pow(0)
	a.True(errors.Is(err, hwfix.ErrInvalidExponent))

	c := MustNew[Int6_12](32)
	a.Equal(31.999755859375, y.Mul(c).Float64())
	a.Equal(-32.0, y.Neg().Mul(c).Float64())

	s, err := x.Another(-100)
	if a.NoError(err) {
		a.Equal(-32.0, s.Float64())
	}
}

func TestCompare(t *testing.T) {
	a := assert.New(t)
	x, y := MustNew[Uint4_4](1), MustNew[Uint4_4](2)
	tests := []struct {
		a, b               Fixed[Uint4_4]
		cmp                int
		lt, le, gt, ge, eq bool
	}{
		{x, y, -1, true, true, false, false, false},
		{y, x, 1, false, false, true, true, false},
		{x, x, 0, false, true, false, true, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.cmp, test.a.Cmp(test.b))
			a.Equal(test.lt, test.a.Lt(test.b))
			a.Equal(test.le, test.a.Le(test.b))
			a.Equal(test.gt, test.a.Gt(test.b))
			a.Equal(test.ge, test.a.Ge(test.b))
			a.Equal(test.eq, test.a.Eq(test.b))
		})
	}
}

func TestCast(t *testing.T) {
	a := assert.New(t)
	x := MustNew[Int4_4](-1.0625)
	w := Cast[Int8_16](x)
	a.Equal(-1.0625, w.Float64())
	a.Equal(hwfix.Range{}, w.Range())
	a.Equal(x, Cast[Int4_4](w))

	n := Cast[Int1_15](x)
	a.Equal(-1.0, n.Float64())
	a.Equal(-1.0, Cast[Int4_4](n).Float64())

	u := Cast[Uint1_7](MustNew[Int4_4](3))
	a.Equal(1.9921875, u.Float64())
	a.Equal(0.0, Cast[Uint1_7](x).Float64())
}

func TestCommit(t *testing.T) {
	a := assert.New(t)
	acc := MustNew[Int1_31](0)
	for _, x := range []float64{0.5, -0.25, 0} {
		acc.Commit(MustNew[Int1_31](x))
	}
	a.Equal(0.0, acc.Float64())
	a.Equal(hwfix.Range{Upper: 0.5, Lower: -0.25}, acc.Range())
	a.Equal(0.75, acc.Range().Width())

	v := acc.Value()
	require.Equal(t, acc.Range(), v.Range())
}
