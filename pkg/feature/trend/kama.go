package trend

import (
	"math"

	"github.com/c9s/featuregen/pkg/types"
)

const (
	DefaultKAMAERWindow   = 10
	DefaultKAMAFastPeriod = 2
	DefaultKAMASlowPeriod = 30
)

// kamaState is the recurrence accumulator: the previous KAMA value and
// whether the fold has been seeded yet. Seeding happens once, at the first
// position with a defined smoothing constant, and is irreversible.
type kamaState struct {
	value  float64
	seeded bool
}

// KAMA computes Kaufman's Adaptive Moving Average of the named column. The
// smoothing constant at each position is derived from the efficiency ratio
// over a trailing window of erWindow periods, squeezed between the fast and
// slow EMA constants:
//
//	er    = |v[i] - v[i-erWindow]| / sum of |v[j] - v[j-1]| over the window
//	sc    = (er*(2/(fast+1) - 2/(slow+1)) + 2/(slow+1))^2
//	kama  = kama' + sc*(v[i] - kama')
//
// A zero efficiency-ratio denominator, or a missing value anywhere in the
// trailing window, yields er = 0 rather than a missing output: the recurrence
// then decays toward the input at the slow constant. The first erWindow
// positions have no defined smoothing constant and are missing; the first
// position past that is seeded with the raw input value.
//
// This is a strictly sequential fold over the whole series, not a per-window
// computation. Parameters <= 0 select the defaults (10, 2, 30).
func KAMA(frame *types.Frame, col string, erWindow, fastPeriod, slowPeriod int) (*types.Series, error) {
	if erWindow <= 0 {
		erWindow = DefaultKAMAERWindow
	}
	if fastPeriod <= 0 {
		fastPeriod = DefaultKAMAFastPeriod
	}
	if slowPeriod <= 0 {
		slowPeriod = DefaultKAMASlowPeriod
	}

	src, err := frame.Column(col)
	if err != nil {
		return nil, err
	}

	n := src.Length()
	out := types.NewSeries("kama", n)

	vals := src.Values()
	vol := vals.Diff().Abs()

	fastConst := 2.0 / float64(fastPeriod+1)
	slowConst := 2.0 / float64(slowPeriod+1)

	state := kamaState{}
	for i := erWindow; i < n; i++ {
		v, ok := src.Value(i)
		if !ok {
			// an unobserved point emits nothing and leaves the fold untouched
			continue
		}

		er := 0.0
		if windowValid(src, i-erWindow, i) {
			den := vol[i-erWindow+1 : i+1].Sum()
			if den != 0 {
				er = math.Abs(v-vals[i-erWindow]) / den
			}
		}

		sc := er*(fastConst-slowConst) + slowConst
		sc *= sc

		if !state.seeded {
			state = kamaState{value: v, seeded: true}
		} else {
			state.value += sc * (v - state.value)
		}
		out.Set(i, state.value)
	}

	log.Debugf("kama(%s, %d, %d, %d): %d of %d rows computed", col, erWindow, fastPeriod, slowPeriod, out.ValidCount(), n)
	return out, nil
}
