package floats

import "math"

// Slice is an ordered sequence of float64 values. It is the base numeric
// container for feature computations; missing-value semantics live in
// types.Series, not here.
type Slice []float64

func New(values ...float64) Slice {
	var s Slice
	s = append(s, values...)
	return s
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

// Last returns the value at the i-th position from the end.
func (s Slice) Last(i int) float64 {
	length := len(s)
	if length == 0 || length-i-1 < 0 {
		return 0.0
	}
	return s[length-i-1]
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() float64 {
	length := len(s)
	if length == 0 {
		return 0.0
	}
	return s.Sum() / float64(length)
}

// Add adds two slices element-wise. The slices must have the same length.
func (s Slice) Add(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] + b[i]
	}
	return c
}

// Sub subtracts two slices element-wise. The slices must have the same length.
func (s Slice) Sub(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i := range s {
		c[i] = s[i] - b[i]
	}
	return c
}

// Diff returns the period-over-period differences. The first element has no
// predecessor and is set to 0.
func (s Slice) Diff() (values Slice) {
	for i, v := range s {
		if i == 0 {
			values.Push(0)
			continue
		}
		values.Push(v - s[i-1])
	}
	return values
}

func (s Slice) Abs() (values Slice) {
	for _, v := range s {
		values.Push(math.Abs(v))
	}
	return values
}

// Tail returns the last size elements as a copy.
func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

// Truncate keeps the tail of the slice up to size elements, in place.
func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}
	return s[len(s)-size:]
}
