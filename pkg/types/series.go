package types

import (
	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/featuregen/pkg/datatype/floats"
)

// Series is a named, positionally aligned column of float64 values.
// Each position is either valid or missing; missingness is tracked with an
// explicit validity mask so that a valid NaN or Inf (e.g. a degenerate R²)
// stays distinguishable from a position that was never computed.
type Series struct {
	Name string

	values floats.Slice
	valid  *bitset.BitSet
}

// NewSeries allocates a series of the given length with every position
// missing.
func NewSeries(name string, length int) *Series {
	return &Series{
		Name:   name,
		values: make(floats.Slice, length),
		valid:  bitset.New(uint(length)),
	}
}

// NewSeriesFrom builds a fully valid series from raw values.
func NewSeriesFrom(name string, values ...float64) *Series {
	s := NewSeries(name, len(values))
	for i, v := range values {
		s.Set(i, v)
	}
	return s
}

func (s *Series) Length() int {
	return len(s.values)
}

// Set stores v at position i and marks it valid. NaN and Inf are legal
// values; storing them does not make the position missing.
func (s *Series) Set(i int, v float64) {
	s.values[i] = v
	s.valid.Set(uint(i))
}

// SetMissing marks position i as missing.
func (s *Series) SetMissing(i int) {
	s.values[i] = 0
	s.valid.Clear(uint(i))
}

func (s *Series) Valid(i int) bool {
	return s.valid.Test(uint(i))
}

// Value returns the value at position i and whether it is valid.
func (s *Series) Value(i int) (float64, bool) {
	return s.values[i], s.valid.Test(uint(i))
}

// Last returns the value at the i-th position from the end.
func (s *Series) Last(i int) (float64, bool) {
	idx := len(s.values) - i - 1
	if idx < 0 {
		return 0, false
	}
	return s.Value(idx)
}

// Values returns a copy of the underlying values for every position,
// including missing ones (which read as 0). Use Value or ValidValues when
// missingness matters.
func (s *Series) Values() floats.Slice {
	out := make(floats.Slice, len(s.values))
	copy(out, s.values)
	return out
}

// ValidCount returns the number of valid positions.
func (s *Series) ValidCount() int {
	return int(s.valid.Count())
}

// ValidValues returns the valid values in positional order.
func (s *Series) ValidValues() floats.Slice {
	out := make(floats.Slice, 0, s.ValidCount())
	for i, v := range s.values {
		if s.valid.Test(uint(i)) {
			out = append(out, v)
		}
	}
	return out
}

// Mean of the valid values.
func (s *Series) Mean() float64 {
	return stat.Mean(s.ValidValues(), nil)
}

// Std is the sample standard deviation of the valid values.
func (s *Series) Std() float64 {
	return stat.StdDev(s.ValidValues(), nil)
}
