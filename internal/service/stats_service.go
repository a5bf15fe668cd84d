package service

import (
	"fmt"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/analysis"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/stats"
)

// StatsService computes group-wise aggregates and the hypothesis test over
// the derived data context.
type StatsService struct {
	ctx *analysis.Context
}

// NewStatsService creates a new stats service
func NewStatsService(ctx *analysis.Context) *StatsService {
	return &StatsService{ctx: ctx}
}

// GroupMeans computes made-vs-missed means of follow-through duration,
// wind-up duration and release height. The outcome partition is exhaustive
// and disjoint: the loader admits no result other than made or missed. An
// empty outcome group has no mean to report and fails explicitly rather
// than rendering a fabricated zero bar.
func (s *StatsService) GroupMeans() ([]models.GroupMeans, error) {
	var madeCount, missedCount int
	for i := range s.ctx.Trials {
		if s.ctx.Trials[i].Made() {
			madeCount++
		} else {
			missedCount++
		}
	}
	if madeCount == 0 || missedCount == 0 {
		return nil, fmt.Errorf("group means: empty outcome group (made=%d, missed=%d)", madeCount, missedCount)
	}

	type metric struct {
		name  string
		unit  string
		value func(*models.Trial) float64
	}
	metrics := []metric{
		{"follow_through_duration", "ms", func(t *models.Trial) float64 { return t.FollowThroughDuration }},
		{"windup_duration", "ms", func(t *models.Trial) float64 { return t.WindupDuration }},
		{"release_height", "m", func(t *models.Trial) float64 { return t.ReleaseHeight }},
	}

	out := make([]models.GroupMeans, 0, len(metrics))
	for _, m := range metrics {
		var made, missed []float64
		for i := range s.ctx.Trials {
			t := &s.ctx.Trials[i]
			if t.Made() {
				made = append(made, m.value(t))
			} else {
				missed = append(missed, m.value(t))
			}
		}
		out = append(out, models.GroupMeans{
			Metric:      m.name,
			Unit:        m.unit,
			MadeMean:    stats.Mean(made),
			MissedMean:  stats.Mean(missed),
			MadeCount:   len(made),
			MissedCount: len(missed),
		})
	}
	return out, nil
}

// WristStability returns the slope samples by outcome together with the
// Mann-Whitney U test comparing them. Trials whose slope could not be
// computed are excluded from both; an empty group fails the test explicitly.
func (s *StatsService) WristStability() (*models.GroupValues, *models.MannWhitneyResult, error) {
	made, missed := s.ctx.SlopesByOutcome()
	if len(made) == 0 || len(missed) == 0 {
		return nil, nil, fmt.Errorf("wrist stability: empty outcome group (made=%d, missed=%d)", len(made), len(missed))
	}

	test, err := stats.MannWhitneyU(made, missed)
	if err != nil {
		return nil, nil, err
	}

	return &models.GroupValues{Metric: "slope", Made: made, Missed: missed}, test, nil
}

// symmetryFeatures maps feature names to their accessor and display title,
// in report order.
var symmetryFeatures = []struct {
	name  string
	title string
	value func(*models.SymmetryFrame) float64
}{
	{"hip_symmetry_x", "Hip Symmetry X", func(f *models.SymmetryFrame) float64 { return f.HipSymmetryX }},
	{"ankle_symmetry_x", "Ankle Symmetry X", func(f *models.SymmetryFrame) float64 { return f.AnkleSymmetryX }},
	{"eye_symmetry_x", "Eye Symmetry X", func(f *models.SymmetryFrame) float64 { return f.EyeSymmetryX }},
	{"ear_symmetry_x", "Ear Symmetry X", func(f *models.SymmetryFrame) float64 { return f.EarSymmetryX }},
}

// SymmetryDensities estimates the per-outcome density of each symmetry
// feature over the follow-through frames, on a fixed 1000-point grid spanning
// that group's observed min/max.
func (s *StatsService) SymmetryDensities() ([]models.FeatureDensity, error) {
	out := make([]models.FeatureDensity, 0, len(symmetryFeatures))
	for _, feat := range symmetryFeatures {
		var made, missed []float64
		for i := range s.ctx.Symmetry {
			f := &s.ctx.Symmetry[i]
			if f.OutcomeCode == 1 {
				made = append(made, feat.value(f))
			} else {
				missed = append(missed, feat.value(f))
			}
		}

		fd := models.FeatureDensity{Feature: feat.name, Title: feat.title}
		for _, group := range []struct {
			name   string
			values []float64
		}{{models.ResultMade, made}, {models.ResultMissed, missed}} {
			xs, ys, err := stats.KDE(group.values, stats.DensityGridSize)
			if err != nil {
				return nil, fmt.Errorf("%s (%s): %w", feat.name, group.name, err)
			}
			fd.Curves = append(fd.Curves, models.DensityCurve{Group: group.name, X: xs, Y: ys})
		}
		out = append(out, fd)
	}
	return out, nil
}

// PinkyOffsets returns the pinky-offset samples by outcome and the matching
// entry angles for the offset-vs-angle scatter.
func (s *StatsService) PinkyOffsets() (box *models.GroupValues, madeAngles, missedAngles []float64, err error) {
	made, missed, madeAngles, missedAngles := s.ctx.PinkyOffsetsByOutcome()
	if len(made) == 0 && len(missed) == 0 {
		return nil, nil, nil, fmt.Errorf("pinky offset: no trial has a defined offset")
	}
	return &models.GroupValues{Metric: "pinky_offset", Made: made, Missed: missed}, madeAngles, missedAngles, nil
}

// Motion returns the trial-level forward wrist motion (x_wrist) and foot
// distance (y_ankle) samples by outcome.
func (s *StatsService) Motion() (xWrist, yAnkle *models.GroupValues) {
	xWrist = &models.GroupValues{Metric: "x_wrist"}
	yAnkle = &models.GroupValues{Metric: "y_ankle"}
	for i := range s.ctx.Trials {
		t := &s.ctx.Trials[i]
		if t.Made() {
			xWrist.Made = append(xWrist.Made, t.XWrist)
			yAnkle.Made = append(yAnkle.Made, t.YAnkle)
		} else {
			xWrist.Missed = append(xWrist.Missed, t.XWrist)
			yAnkle.Missed = append(yAnkle.Missed, t.YAnkle)
		}
	}
	return xWrist, yAnkle
}
