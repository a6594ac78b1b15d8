package trend

import (
	"fmt"

	"github.com/c9s/featuregen/pkg/datatype/floats"
	"github.com/c9s/featuregen/pkg/types"
)

const DefaultSlopeWindow = 60

// linearSlope fits an ordinary least-squares line through the window values
// against the synthetic index x = 0..n-1 and returns its slope. For n == 1
// the denominator is zero and the result is whatever IEEE-754 produces;
// non-finite inputs likewise propagate.
func linearSlope(window floats.Slice) float64 {
	n := float64(len(window))

	var sumX, sumY, sumXY, sumX2 float64
	for k, y := range window {
		x := float64(k)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	return (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
}

// linearSlopeR2 additionally computes the coefficient of determination of
// the fitted line. A constant window has zero total sum of squares and the
// division is performed anyway; the degenerate NaN/Inf result is returned
// as-is.
func linearSlopeR2(window floats.Slice) (slope, r2 float64) {
	n := float64(len(window))

	var sumX, sumY, sumXY, sumX2 float64
	for k, y := range window {
		x := float64(k)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	slope = (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
	intercept := (sumY - slope*sumX) / n
	mean := sumY / n

	var sst, ssr float64
	for k, y := range window {
		pred := intercept + slope*float64(k)
		sst += (y - mean) * (y - mean)
		ssr += (y - pred) * (y - pred)
	}

	return slope, 1 - ssr/sst
}

// LinearSlope computes the rolling least-squares slope of the named column.
// Each full window of length window ending at position i yields one slope;
// earlier positions, and windows containing missing values, are missing. The
// fit is against equally spaced integer positions, not the row index. The
// output column is named linear_slope_{window}. A window <= 0 selects
// DefaultSlopeWindow.
func LinearSlope(frame *types.Frame, col string, window int) (*types.Series, error) {
	if window <= 0 {
		window = DefaultSlopeWindow
	}

	src, err := frame.Column(col)
	if err != nil {
		return nil, err
	}

	n := src.Length()
	vals := src.Values()
	out := types.NewSeries(fmt.Sprintf("linear_slope_%d", window), n)

	for i := window - 1; i < n; i++ {
		if !windowValid(src, i-window+1, i) {
			continue
		}
		out.Set(i, linearSlope(vals[i-window+1:i+1]))
	}

	log.Debugf("linear_slope(%s, %d): %d of %d rows computed", col, window, out.ValidCount(), n)
	return out, nil
}

// LinearSlopeR2 computes the rolling least-squares slope and R² of the named
// column, with the same window and missing-value policy as LinearSlope. It
// returns a frame sharing the input's index with two columns,
// linear_slope_{window} and linear_r2_{window}. A constant window produces a
// valid NaN/Inf R² rather than a missing one.
func LinearSlopeR2(frame *types.Frame, col string, window int) (*types.Frame, error) {
	if window <= 0 {
		window = DefaultSlopeWindow
	}

	src, err := frame.Column(col)
	if err != nil {
		return nil, err
	}

	n := src.Length()
	vals := src.Values()
	slopes := types.NewSeries(fmt.Sprintf("linear_slope_%d", window), n)
	r2s := types.NewSeries(fmt.Sprintf("linear_r2_%d", window), n)

	for i := window - 1; i < n; i++ {
		if !windowValid(src, i-window+1, i) {
			continue
		}
		slope, r2 := linearSlopeR2(vals[i-window+1 : i+1])
		slopes.Set(i, slope)
		r2s.Set(i, r2)
	}

	out := types.NewFrame(frame.Index())
	if err := out.AddColumn(slopes); err != nil {
		return nil, err
	}
	if err := out.AddColumn(r2s); err != nil {
		return nil, err
	}

	log.Debugf("linear_slope_and_r2(%s, %d): %d of %d rows computed", col, window, slopes.ValidCount(), n)
	return out, nil
}
