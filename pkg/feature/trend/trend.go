// Package trend computes trend-indicator columns (moving averages,
// rolling regression slope and fit quality) from a single column of an
// ordered frame. Every function returns output aligned 1:1 with the input
// rows; positions with insufficient history are missing, not zero.
package trend

import (
	"github.com/sirupsen/logrus"

	"github.com/c9s/featuregen/pkg/types"
)

var log = logrus.WithField("feature", "trend")

// windowValid reports whether every position in [from, to] is valid.
func windowValid(s *types.Series, from, to int) bool {
	for i := from; i <= to; i++ {
		if !s.Valid(i) {
			return false
		}
	}
	return true
}
