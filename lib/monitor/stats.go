package monitor

import (
	"math"
	"time"
)

// ----------------------------------------------------------------------------
// Gap statistics
// ----------------------------------------------------------------------------

// GapStats holds aggregate statistics over the observed tick gaps.
type GapStats struct {
	StdDeviation time.Duration `json:"std_deviation"`
	Min          time.Duration `json:"min"`
	Max          time.Duration `json:"max"`
	Mean         time.Duration `json:"mean"`
}

// Stats computes standard deviation, minimum, maximum, and mean over the
// report's gap samples.
func (r Report) Stats() GapStats {
	if len(r.Gaps) == 0 {
		return GapStats{}
	}

	// initialize min and max with the first value
	min := r.Gaps[0]
	max := r.Gaps[0]

	// calculate sum for mean
	var sum time.Duration
	for _, g := range r.Gaps {
		sum += g

		// update min and max while iterating
		if g < min {
			min = g
		}
		if g > max {
			max = g
		}
	}

	// calculate mean
	mean := sum / time.Duration(len(r.Gaps))

	// calculate sum of squared differences from mean
	var sumSquaredDiffs float64
	for _, g := range r.Gaps {
		diff := float64(g - mean)
		sumSquaredDiffs += diff * diff
	}

	// calculate standard deviation (population formula)
	stdDev := time.Duration(math.Sqrt(sumSquaredDiffs / float64(len(r.Gaps))))

	return GapStats{
		StdDeviation: stdDev,
		Min:          min,
		Max:          max,
		Mean:         mean,
	}
}
