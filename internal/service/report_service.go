package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/metrics"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
)

// ReportService assembles the full report: ordered sections of narrative and
// chart payloads. Each section renders independently; a failing section
// carries an inline error message and never aborts the rest of the report.
type ReportService struct {
	trials *TrialService
	stats  *StatsService
	logger *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(trials *TrialService, stats *StatsService, logger *zap.Logger) *ReportService {
	return &ReportService{trials: trials, stats: stats, logger: logger}
}

// Build renders the report for one selected trial.
func (s *ReportService) Build(trialID string) *models.Report {
	report := &models.Report{
		Title:   "Hold It! Reaching for Cookies and Made Free Throws",
		TrialID: trialID,
	}

	report.Sections = append(report.Sections,
		s.section("wrist-timeseries", func() (*models.ReportSection, error) {
			sec, err := s.trials.WristTimeseries(trialID)
			if err != nil {
				return nil, err
			}
			sec.Narrative = narrativeIntro + "\n\n" + narrativeTimeseries
			return sec, nil
		}),
		s.section("group-means", s.GroupMeansSection),
		s.section("wrist-stability", s.WristStabilitySection),
		s.section("symmetry-density", s.SymmetrySection),
		s.section("pinky-offset", s.PinkyOffsetSection),
		s.section("motion", s.MotionSection),
		models.ReportSection{
			ID:        "conclusion",
			Title:     "Conclusion",
			Narrative: narrativeConclusion,
		},
	)

	return report
}

// section runs one section builder, converting a failure into an inline
// error on the section so the remaining sections still render.
func (s *ReportService) section(id string, build func() (*models.ReportSection, error)) models.ReportSection {
	sec, err := build()
	if err != nil {
		s.logger.Warn("report section failed",
			zap.String("section", id),
			zap.Error(err))
		metrics.SectionFailures.WithLabelValues(id).Inc()
		return models.ReportSection{ID: id, Error: err.Error()}
	}
	return *sec
}

// GroupMeansSection builds the three paired bar charts comparing made and
// missed means of follow-through duration, wind-up duration and release height.
func (s *ReportService) GroupMeansSection() (*models.ReportSection, error) {
	titles := map[string]string{
		"follow_through_duration": "Follow-through Duration (ms)",
		"windup_duration":         "Wind-up Duration (ms)",
		"release_height":          "Release Height (m)",
	}

	means, err := s.stats.GroupMeans()
	if err != nil {
		return nil, err
	}

	var charts []models.Chart
	for _, gm := range means {
		charts = append(charts, models.Chart{
			Type:   models.ChartBar,
			Title:  titles[gm.Metric],
			YLabel: "Average Value",
			Series: []models.Series{
				{
					Name:   "Made",
					Color:  models.ColorMade,
					Labels: []string{gm.Metric},
					Y:      []float64{gm.MadeMean},
					Text:   []string{fmt.Sprintf("%.2f", gm.MadeMean)},
				},
				{
					Name:   "Missed",
					Color:  models.ColorMissed,
					Labels: []string{gm.Metric},
					Y:      []float64{gm.MissedMean},
					Text:   []string{fmt.Sprintf("%.2f", gm.MissedMean)},
				},
			},
		})
	}

	return &models.ReportSection{
		ID:        "group-means",
		Title:     "Phase Durations and Release Height",
		Narrative: narrativeGroupMeans,
		Charts:    charts,
	}, nil
}

// WristStabilitySection builds the violin+box+points comparison of the
// wrist-stability slope by outcome, with the Mann-Whitney U summary.
func (s *ReportService) WristStabilitySection() (*models.ReportSection, error) {
	values, test, err := s.stats.WristStability()
	if err != nil {
		return nil, err
	}

	chart := models.Chart{
		Type:   models.ChartViolin,
		Title:  "Comparison of Wrist Stability for Made vs Missed Shots",
		XLabel: "Shot Outcome",
		YLabel: "Wrist Stability (Follow Through)",
		Series: []models.Series{
			{Name: "Made", Color: models.ColorMade, Y: values.Made},
			{Name: "Missed", Color: models.ColorMissed, Y: values.Missed},
		},
	}

	return &models.ReportSection{
		ID:        "wrist-stability",
		Title:     "Wrist Stability",
		Narrative: narrativeWristStability,
		Summary: fmt.Sprintf("U statistic: %.1f | p value: %.1e | Effect Size: %.1f",
			test.U, test.PValue, test.EffectSize),
		Charts: []models.Chart{chart},
		Test:   test,
	}, nil
}

// SymmetrySection builds the four side-by-side KDE density panels for the
// hip, ankle, eye and ear symmetry features.
func (s *ReportService) SymmetrySection() (*models.ReportSection, error) {
	densities, err := s.stats.SymmetryDensities()
	if err != nil {
		return nil, err
	}

	colors := map[string]string{
		models.ResultMade:   models.ColorMade,
		models.ResultMissed: models.ColorMissed,
	}

	charts := make([]models.Chart, 0, len(densities))
	for _, fd := range densities {
		chart := models.Chart{
			Type:   models.ChartDensity,
			Title:  fd.Title,
			XLabel: fd.Feature,
			YLabel: "Density",
		}
		for _, curve := range fd.Curves {
			chart.Series = append(chart.Series, models.Series{
				Name:  curve.Group,
				Mode:  "lines",
				Color: colors[curve.Group],
				X:     curve.X,
				Y:     curve.Y,
			})
		}
		charts = append(charts, chart)
	}

	return &models.ReportSection{
		ID:        "symmetry-density",
		Title:     "Body Symmetry",
		Narrative: narrativeSymmetry,
		Charts:    charts,
	}, nil
}

// PinkyOffsetSection builds the pinky-offset box plot by outcome and the
// offset-vs-entry-angle scatter.
func (s *ReportService) PinkyOffsetSection() (*models.ReportSection, error) {
	box, madeAngles, missedAngles, err := s.stats.PinkyOffsets()
	if err != nil {
		return nil, err
	}

	boxChart := models.Chart{
		Type:   models.ChartBox,
		Title:  "Made vs Missed Baskets vs. Pinky to Wrist Offset",
		XLabel: "Pinky to Wrist Offset",
		YLabel: "Shot Outcome",
		Series: []models.Series{
			{Name: "Made", Color: models.ColorMade, Y: box.Made},
			{Name: "Missed", Color: models.ColorMissed, Y: box.Missed},
		},
	}

	scatterChart := models.Chart{
		Type:   models.ChartScatter,
		Title:  "Scatter Plot: Offset vs Entry Angle for Made vs Missed Baskets",
		XLabel: "Offset (wrist to pinky (R_WRIST_z - R_5THFINGER_z))",
		YLabel: "Entry Angle (degrees)",
		Series: []models.Series{
			{Name: "Made", Mode: "markers", Color: models.ColorMade, X: box.Made, Y: madeAngles},
			{Name: "Missed", Mode: "markers", Color: models.ColorMissed, X: box.Missed, Y: missedAngles},
		},
	}

	return &models.ReportSection{
		ID:        "pinky-offset",
		Title:     "Follow through Fingers",
		Narrative: narrativePinky,
		Charts:    []models.Chart{boxChart, scatterChart},
	}, nil
}

// MotionSection builds the trial-level box plots of forward wrist motion and
// distance between feet.
func (s *ReportService) MotionSection() (*models.ReportSection, error) {
	xWrist, yAnkle := s.stats.Motion()

	wristChart := models.Chart{
		Type:   models.ChartBox,
		Title:  "Forward Motion during follow-through (Right Wrist in X)",
		XLabel: "Shot Outcome",
		YLabel: "Forward Motion of Right Wrist in X direction",
		Series: []models.Series{
			{Name: "Made", Color: models.ColorMade, Y: xWrist.Made},
			{Name: "Missed", Color: models.ColorMissed, Y: xWrist.Missed},
		},
	}

	ankleChart := models.Chart{
		Type:   models.ChartBox,
		Title:  "Distance between feet",
		XLabel: "Shot Outcome",
		YLabel: "Distance between feet",
		Series: []models.Series{
			{Name: "Made", Color: models.ColorMade, Y: yAnkle.Made},
			{Name: "Missed", Color: models.ColorMissed, Y: yAnkle.Missed},
		},
	}

	return &models.ReportSection{
		ID:        "motion",
		Title:     "Parting Observations",
		Narrative: narrativeMotion,
		Charts:    []models.Chart{wristChart, ankleChart},
	}, nil
}
