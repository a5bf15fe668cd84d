package analysis

import (
	"math"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
)

// Analysis window applied to raw tracking before any per-trial feature is
// computed, in milliseconds from trial start.
const (
	WindowStart = 100
	WindowEnd   = 9000
)

// SymmetryFrames restricts a trial's frames to its follow-through window
// (release_time <= time <= follow_through_time) and attaches the bilateral
// symmetry features |R_x - L_x| for hip, ankle, eye and ear.
func SymmetryFrames(trial *models.Trial, frames []models.Frame) []models.SymmetryFrame {
	var out []models.SymmetryFrame
	for _, f := range frames {
		if f.Time < trial.ReleaseTime || f.Time > trial.FollowThroughTime {
			continue
		}
		out = append(out, models.SymmetryFrame{
			TrialID:        trial.TrialID,
			Time:           f.Time,
			OutcomeCode:    trial.OutcomeCode(),
			HipSymmetryX:   math.Abs(f.RHipX - f.LHipX),
			AnkleSymmetryX: math.Abs(f.RAnkleX - f.LAnkleX),
			EyeSymmetryX:   math.Abs(f.REyeX - f.LEyeX),
			EarSymmetryX:   math.Abs(f.REarX - f.LEarX),
		})
	}
	return out
}

// PinkyOffset finds the follow-through frame where the right wrist and the
// pinky base are closest in z and returns the signed offset
// R_WRIST_z - R_5THFINGER_z at that frame. An empty follow-through window
// yields an invalid measure.
func PinkyOffset(trial *models.Trial, frames []models.Frame) models.Measure {
	best := models.InvalidMeasure()
	bestDist := math.Inf(1)
	for _, f := range frames {
		if f.Time < trial.ReleaseTime || f.Time > trial.FollowThroughTime {
			continue
		}
		offset := f.RWristZ - f.R5thFingerZ
		if d := math.Abs(offset); d < bestDist {
			bestDist = d
			best = models.ValidMeasure(offset)
		}
	}
	return best
}
