// Package analysis collects ranges of tracked fixed-point values, and reports
// how much of their formats' representable range was actually used.
// This helps to decide whether a word is over- or under-provisioned.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/avdva/hwfix"
	mu "github.com/avdva/hwfix/internal/mathutil"
)

var (
	// ErrArityMismatch is returned by New, if the numbers of values and names differ.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrNilValue is returned when a nil value is tracked.
	ErrNilValue = errors.New("nil value")
)

// Source is a value with a tracked range, like *hwfix.Value.
type Source interface {
	Range() hwfix.Range
	Format() hwfix.Format
}

type tracked struct {
	name  string
	value Source
}

// Analyzer reports ranges of a named set of values.
// It keeps the sources it was given, so if they are pointers,
// the report reflects all commits made before calling Report.
type Analyzer struct {
	items []tracked
}

// New returns an analyzer for values and their names.
// values[i] is reported as names[i].
func New(values []Source, names []string) (*Analyzer, error) {
	if len(values) != len(names) {
		return nil, fmt.Errorf("%w: %d values, %d names", ErrArityMismatch, len(values), len(names))
	}
	an := &Analyzer{items: make([]tracked, 0, len(values))}
	for i, v := range values {
		if err := an.Track(names[i], v); err != nil {
			return nil, err
		}
	}
	return an, nil
}

// Track adds a value to the analyzer.
// Returns hwfix.ErrInvalidFormat, if the value's format is invalid, like the one of a zero hwfix.Value.
func (an *Analyzer) Track(name string, v Source) error {
	if v == nil {
		return fmt.Errorf("%w: %q", ErrNilValue, name)
	}
	if err := v.Format().Validate(); err != nil {
		return fmt.Errorf("tracking %q: %w", name, err)
	}
	an.items = append(an.items, tracked{name: name, value: v})
	return nil
}

// Len returns the number of tracked values.
func (an *Analyzer) Len() int {
	return len(an.items)
}

// Report returns an entry per tracked value, in the order they were added.
func (an *Analyzer) Report() Report {
	result := make(Report, 0, len(an.items))
	for _, it := range an.items {
		result = append(result, newEntry(it.name, it.value.Range(), it.value.Format()))
	}
	return result
}

// Entry describes the observed range of a value.
type Entry struct {
	Name   string
	Lower  float64
	Upper  float64
	Format hwfix.Format
	// Percentage is the observed width relative to the representable width of Format, in percent.
	Percentage float64
	// MinWordBits is the narrowest word with the same signedness and fraction width as Format,
	// that still covers [Lower, Upper].
	MinWordBits uint32
}

func newEntry(name string, r hwfix.Range, f hwfix.Format) Entry {
	return Entry{
		Name:        name,
		Lower:       r.Lower,
		Upper:       r.Upper,
		Format:      f,
		Percentage:  100 * r.Width() / f.Span(),
		MinWordBits: minWordBits(r, f),
	}
}

// Oversized returns true, if the observed range fits into a narrower word.
func (e Entry) Oversized() bool {
	return e.MinWordBits < e.Format.WordBits()
}

// minWordBits returns the smallest word covering r, keeping f's fraction bits and signedness.
// Range bounds are on f's grid, so their magnitudes in grid steps are integers.
func minWordBits(r hwfix.Range, f hwfix.Format) uint32 {
	// fs = 2^intBits must satisfy fs - resolution >= upper, and, for signed formats, -fs <= lower.
	need := r.Upper + f.Resolution()
	if f.Signed() {
		need = math.Max(need, -r.Lower)
	}
	intBits := uint32(mu.CeilLog2(need))
	w := intBits + f.FracBits()
	if f.Signed() {
		w++
	}
	if w <= f.FracBits() { // at least one integer or sign bit.
		w = f.FracBits() + 1
	}
	return w
}
