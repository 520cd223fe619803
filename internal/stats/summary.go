// Package stats computes descriptive statistics over benchmark columns.
//
// Negative values are upstream error markers and never take part in a
// summary. A column with no usable values has an undefined summary, which is
// kept distinct from a summary of zeros.
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrUndefinedSummary matches every *UndefinedSummaryError via errors.Is.
var ErrUndefinedSummary = errors.New("summary is undefined")

// UndefinedSummaryError is returned when a quantity with no non-negative
// values is asked for numbers.
type UndefinedSummaryError struct {
	Quantity string
}

func (e *UndefinedSummaryError) Error() string {
	return fmt.Sprintf("%s: no non-negative values to summarize", e.Quantity)
}

func (e *UndefinedSummaryError) Unwrap() error { return ErrUndefinedSummary }

// Number is the set of column types a summary can be built over.
type Number interface {
	~int | ~int64 | ~float64
}

// FilterNonNegative returns the values that are >= 0, in their original
// order. NaN is dropped. Applying it twice gives the same result as once.
func FilterNonNegative[T Number](values []T) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if v >= 0 {
			out = append(out, v)
		}
	}
	return out
}

// Summary is either Defined, carrying mean, min, max and sample standard
// deviation, or Undefined. The zero value is Undefined.
type Summary[T Number] struct {
	n     int
	mean  float64
	min   T
	max   T
	stdev float64
}

// Compute filters values and summarizes what is left.
//
// The standard deviation uses the N-1 denominator and is exactly 0 for a
// single value.
func Compute[T Number](values []T) Summary[T] {
	kept := FilterNonNegative(values)
	if len(kept) == 0 {
		return Summary[T]{}
	}

	xs := make([]float64, len(kept))
	lo, hi := kept[0], kept[0]
	for i, v := range kept {
		xs[i] = float64(v)
		lo = min(lo, v)
		hi = max(hi, v)
	}

	s := Summary[T]{n: len(kept), min: lo, max: hi}
	if s.n == 1 {
		s.mean = xs[0]
		return s
	}
	s.mean, s.stdev = stat.MeanStdDev(xs, nil)
	return s
}

// Defined reports whether at least one value took part in the summary.
func (s Summary[T]) Defined() bool { return s.n > 0 }

// Count is the number of values that survived filtering.
func (s Summary[T]) Count() int { return s.n }

// Mean is the arithmetic mean. Like Min, Max and Stdev it is only
// meaningful when the summary is defined.
func (s Summary[T]) Mean() float64 { return s.mean }

func (s Summary[T]) Min() T { return s.min }

func (s Summary[T]) Max() T { return s.max }

// Stdev is the sample standard deviation.
func (s Summary[T]) Stdev() float64 { return s.stdev }

// Values returns the four statistics. ok is false for an undefined summary,
// in which case the numbers carry no meaning.
func (s Summary[T]) Values() (mean float64, lo, hi T, stdev float64, ok bool) {
	return s.mean, s.min, s.max, s.stdev, s.Defined()
}

// Require returns an *UndefinedSummaryError naming quantity when s is
// undefined, and nil otherwise.
func (s Summary[T]) Require(quantity string) error {
	if !s.Defined() {
		return &UndefinedSummaryError{Quantity: quantity}
	}
	return nil
}

func (s Summary[T]) String() string {
	if !s.Defined() {
		return "undefined"
	}
	return fmt.Sprintf("n=%d mean=%g min=%v max=%v stdev=%g", s.n, s.mean, s.min, s.max, s.stdev)
}
