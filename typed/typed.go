// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package typed implements fixed-point values, whose format is a type parameter.
// Mixing formats in arithmetic is a compile-time error, so operations on
// Fixed values don't return format errors.
//
// A format is declared as a zero-size type:
//
//	type Acc struct{}
//
//	func (Acc) Format() hwfix.Format { return accFormat }
//
// The semantics are the same as for hwfix.Value.
package typed

import (
	"fmt"

	"github.com/avdva/hwfix"
	"golang.org/x/exp/constraints"
)

// Spec provides a format for Fixed values. Format must always return the same valid format.
type Spec interface {
	Format() hwfix.Format
}

// Fixed is a fixed-point value in S's format.
// The zero value is 0 with an empty range.
type Fixed[S Spec] struct {
	v hwfix.Value
}

func format[S Spec]() hwfix.Format {
	var s S
	f := s.Format()
	if err := f.Validate(); err != nil {
		panic(fmt.Sprintf("typed: bad spec %T: %v", s, err))
	}
	return f
}

// must wraps results of operations, that cannot fail for operands of the same valid format.
func must[S Spec](v hwfix.Value, err error) Fixed[S] {
	if err != nil {
		panic("typed: " + err.Error())
	}
	return Fixed[S]{v: v}
}

// New returns x quantized to S's format.
// Returns an error for NaNs and infinities.
func New[S Spec](x float64) (Fixed[S], error) {
	v, err := hwfix.New(x, format[S]())
	if err != nil {
		return Fixed[S]{}, err
	}
	return Fixed[S]{v: v}, nil
}

// MustNew is like New, but panics on error.
func MustNew[S Spec](x float64) Fixed[S] {
	return must[S](hwfix.New(x, format[S]()))
}

// FromFloat is like New, but accepts any float type.
func FromFloat[S Spec, T constraints.Float](x T) (Fixed[S], error) {
	return New[S](float64(x))
}

// Cast requantizes a to T's format.
func Cast[T, S Spec](a Fixed[S]) Fixed[T] {
	return must[T](a.value().Cast(format[T]()))
}

func (a Fixed[S]) value() hwfix.Value {
	if a.v.Format() == (hwfix.Format{}) {
		return hwfix.MustNew(0, format[S]())
	}
	return a.v
}

// Another returns x quantized to a's format.
func (a Fixed[S]) Another(x float64) (Fixed[S], error) {
	return New[S](x)
}

// Add returns a+b.
func (a Fixed[S]) Add(b Fixed[S]) Fixed[S] {
	return must[S](a.value().Add(b.value()))
}

// Sub returns a-b.
func (a Fixed[S]) Sub(b Fixed[S]) Fixed[S] {
	return must[S](a.value().Sub(b.value()))
}

// Mul returns a*b.
func (a Fixed[S]) Mul(b Fixed[S]) Fixed[S] {
	return must[S](a.value().Mul(b.value()))
}

// Div returns a/b. Returns hwfix.ErrDivisionByZero if b is zero.
func (a Fixed[S]) Div(b Fixed[S]) (Fixed[S], error) {
	v, err := a.value().Div(b.value())
	if err != nil {
		return Fixed[S]{}, err
	}
	return Fixed[S]{v: v}, nil
}

// Neg returns -a.
func (a Fixed[S]) Neg() Fixed[S] {
	return must[S](a.value().Neg())
}

// Pow returns a^n, see hwfix.Value.Pow.
func (a Fixed[S]) Pow(n int) (Fixed[S], error) {
	v, err := a.value().Pow(n)
	if err != nil {
		return Fixed[S]{}, err
	}
	return Fixed[S]{v: v}, nil
}

// Commit stores b into a, widening a's range.
func (a *Fixed[S]) Commit(b Fixed[S]) {
	v := a.value()
	if err := v.Commit(b.value()); err != nil {
		panic("typed: " + err.Error())
	}
	a.v = v
}

// Cmp returns -1 if a < b, 0 if a == b, 1 if a > b.
func (a Fixed[S]) Cmp(b Fixed[S]) int {
	c, err := a.value().Cmp(b.value())
	if err != nil {
		panic("typed: " + err.Error())
	}
	return c
}

// Eq returns a == b.
func (a Fixed[S]) Eq(b Fixed[S]) bool { return a.Cmp(b) == 0 }

// Lt returns a < b.
func (a Fixed[S]) Lt(b Fixed[S]) bool { return a.Cmp(b) < 0 }

// Le returns a <= b.
func (a Fixed[S]) Le(b Fixed[S]) bool { return a.Cmp(b) <= 0 }

// Gt returns a > b.
func (a Fixed[S]) Gt(b Fixed[S]) bool { return a.Cmp(b) > 0 }

// Ge returns a >= b.
func (a Fixed[S]) Ge(b Fixed[S]) bool { return a.Cmp(b) >= 0 }

// Float64 returns the quantized value.
func (a Fixed[S]) Float64() float64 { return a.v.Float64() }

// Format returns S's format.
func (a Fixed[S]) Format() hwfix.Format { return format[S]() }

// Range returns the range of the values committed into a.
func (a Fixed[S]) Range() hwfix.Range { return a.v.Range() }

// Value returns a as a runtime-format value.
func (a Fixed[S]) Value() hwfix.Value { return a.value() }

func (a Fixed[S]) String() string { return a.value().String() }
