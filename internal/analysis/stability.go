package analysis

import (
	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/stats"
)

// WristStabilitySlope quantifies movement smoothness for one trial: over the
// full analysis window [WindowStart, WindowEnd], take the ordered right-wrist
// z positions, compute the rate of change dz/dt between consecutive samples,
// and return the sample standard deviation of those rates. Higher means more
// erratic motion.
//
// Policies: sample pairs with zero time delta are skipped; fewer than 2 rate
// values leave the slope undefined (invalid measure, excluded downstream); a
// constant wrist position yields 0, never NaN.
func WristStabilitySlope(frames []models.Frame) models.Measure {
	var times, zs []float64
	for _, f := range frames {
		if f.Time < WindowStart || f.Time > WindowEnd {
			continue
		}
		times = append(times, f.Time)
		zs = append(zs, f.RWristZ)
	}

	var rates []float64
	for i := 1; i < len(zs); i++ {
		dt := times[i] - times[i-1]
		if dt == 0 {
			continue
		}
		rates = append(rates, (zs[i]-zs[i-1])/dt)
	}

	if len(rates) < 2 {
		return models.InvalidMeasure()
	}
	return models.ValidMeasure(stats.StdDev(rates))
}

// DeriveTrialFeatures computes the per-trial derived scalars from the trial's
// full frame sequence (ordered by time).
func DeriveTrialFeatures(trial *models.Trial, frames []models.Frame) models.TrialFeatures {
	return models.TrialFeatures{
		TrialID:     trial.TrialID,
		Result:      trial.Result,
		OutcomeCode: trial.OutcomeCode(),
		Slope:       WristStabilitySlope(frames),
		PinkyOffset: PinkyOffset(trial, frames),
	}
}
