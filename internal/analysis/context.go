package analysis

import (
	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
)

// Context holds every derived table, computed once at startup and shared
// read-only by all handlers. Nothing mutates it after Build.
type Context struct {
	Trials   []models.Trial
	Features []models.TrialFeatures // one per trial, same order as Trials
	Symmetry []models.SymmetryFrame // follow-through frames of all trials
}

// Build derives all features from the joined trial and frame tables. Frames
// must be ordered by trial and time, as the repositories return them.
func Build(trials []models.Trial, frames []models.Frame) *Context {
	byTrial := make(map[string][]models.Frame, len(trials))
	for _, f := range frames {
		byTrial[f.TrialID] = append(byTrial[f.TrialID], f)
	}

	ctx := &Context{
		Trials:   trials,
		Features: make([]models.TrialFeatures, 0, len(trials)),
	}
	for i := range trials {
		t := &trials[i]
		tf := byTrial[t.TrialID]
		ctx.Features = append(ctx.Features, DeriveTrialFeatures(t, tf))
		ctx.Symmetry = append(ctx.Symmetry, SymmetryFrames(t, tf)...)
	}
	return ctx
}

// SlopesByOutcome returns the wrist-stability slopes split by outcome.
// Trials with an undefined slope are excluded.
func (c *Context) SlopesByOutcome() (made, missed []float64) {
	for _, f := range c.Features {
		if !f.Slope.Valid {
			continue
		}
		if f.OutcomeCode == 1 {
			made = append(made, f.Slope.Value)
		} else {
			missed = append(missed, f.Slope.Value)
		}
	}
	return made, missed
}

// PinkyOffsetsByOutcome returns the pinky offsets split by outcome, with the
// matching entry angles for the scatter payload. Trials with an undefined
// offset are excluded.
func (c *Context) PinkyOffsetsByOutcome() (made, missed, madeAngles, missedAngles []float64) {
	angles := make(map[string]float64, len(c.Trials))
	for _, t := range c.Trials {
		angles[t.TrialID] = t.EntryAngle
	}
	for _, f := range c.Features {
		if !f.PinkyOffset.Valid {
			continue
		}
		if f.OutcomeCode == 1 {
			made = append(made, f.PinkyOffset.Value)
			madeAngles = append(madeAngles, angles[f.TrialID])
		} else {
			missed = append(missed, f.PinkyOffset.Value)
			missedAngles = append(missedAngles, angles[f.TrialID])
		}
	}
	return made, missed, madeAngles, missedAngles
}
