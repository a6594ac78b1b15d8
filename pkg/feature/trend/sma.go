package trend

import (
	"fmt"

	"github.com/c9s/featuregen/pkg/types"
)

const DefaultSMAWindow = 30

// SMA computes the simple moving average of the named column over a rolling
// window. Position i holds the arithmetic mean of positions [i-window+1, i]
// when the full window exists and is valid, and is missing otherwise. The
// output column is named sma_{window}. A window <= 0 selects
// DefaultSMAWindow.
func SMA(frame *types.Frame, col string, window int) (*types.Series, error) {
	if window <= 0 {
		window = DefaultSMAWindow
	}

	src, err := frame.Column(col)
	if err != nil {
		return nil, err
	}

	n := src.Length()
	out := types.NewSeries(fmt.Sprintf("sma_%d", window), n)

	for i := window - 1; i < n; i++ {
		if !windowValid(src, i-window+1, i) {
			continue
		}

		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			v, _ := src.Value(j)
			sum += v
		}
		out.Set(i, sum/float64(window))
	}

	log.Debugf("sma(%s, %d): %d of %d rows computed", col, window, out.ValidCount(), n)
	return out, nil
}
