package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/analysis"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/database"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/dataset"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/repository"
)

// syntheticDataset builds the three-trial scenario: two made trials with a
// constant wrist position and one missed trial with an oscillating wrist.
func syntheticDataset() *dataset.Dataset {
	trials := []models.Trial{
		{
			TrialID: "T0001", ParticipantID: "P01", Result: models.ResultMade,
			WindupDuration: 200, FollowThroughDuration: 150,
			WindupStart: 300, WindupHeight: 1.1,
			ReleaseTime: 1000, ReleaseHeight: 2.3,
			FollowThroughTime: 1150, FollowThroughHeight: 2.5,
			EntryAngle: 44.5, XWrist: 0.12, YAnkle: 0.30,
		},
		{
			TrialID: "T0002", ParticipantID: "P01", Result: models.ResultMissed,
			WindupDuration: 220, FollowThroughDuration: 300,
			WindupStart: 310, WindupHeight: 1.0,
			ReleaseTime: 1000, ReleaseHeight: 2.2,
			FollowThroughTime: 1300, FollowThroughHeight: 2.4,
			EntryAngle: 41.0, XWrist: 0.18, YAnkle: 0.28,
		},
		{
			TrialID: "T0003", ParticipantID: "P01", Result: models.ResultMade,
			WindupDuration: 190, FollowThroughDuration: 160,
			WindupStart: 290, WindupHeight: 1.2,
			ReleaseTime: 1000, ReleaseHeight: 2.3,
			FollowThroughTime: 1160, FollowThroughHeight: 2.5,
			EntryAngle: 45.2, XWrist: 0.10, YAnkle: 0.31,
		},
	}

	var frames []models.Frame
	for _, trial := range trials {
		for i := 0; i < 20; i++ {
			time := 100.0 + float64(i)*100

			z := 1.8 // constant wrist for made trials
			if trial.Result == models.ResultMissed {
				z = 1.8 + 0.3*math.Sin(float64(i))
			}

			frames = append(frames, models.Frame{
				TrialID:     trial.TrialID,
				Time:        time,
				RWristZ:     z,
				R5thFingerZ: z + 0.15,
				RHipX:       0.30 + 0.010*float64(i),
				LHipX:       0.10,
				RAnkleX:     0.20 + 0.005*float64(i),
				LAnkleX:     0.10,
				REyeX:       0.050 + 0.002*float64(i),
				LEyeX:       0.040,
				REarX:       0.060 + 0.003*float64(i),
				LEarX:       0.050,
			})
		}
	}

	return &dataset.Dataset{Trials: trials, Frames: frames}
}

func newServices(t *testing.T) (*TrialService, *StatsService, *ReportService) {
	return newServicesWith(t, syntheticDataset())
}

func newServicesWith(t *testing.T, ds *dataset.Dataset) (*TrialService, *StatsService, *ReportService) {
	t.Helper()

	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Seed(db, ds))

	trialRepo := repository.NewTrialRepository(db)
	frameRepo := repository.NewFrameRepository(db)

	trials, err := trialRepo.All()
	require.NoError(t, err)
	frames, err := frameRepo.All()
	require.NoError(t, err)
	ctx := analysis.Build(trials, frames)

	trialService := NewTrialService(trialRepo, frameRepo)
	statsService := NewStatsService(ctx)
	reportService := NewReportService(trialService, statsService, zap.NewNop())
	return trialService, statsService, reportService
}

func TestGroupMeansSyntheticScenario(t *testing.T) {
	_, statsService, _ := newServices(t)

	means, err := statsService.GroupMeans()
	require.NoError(t, err)
	byMetric := make(map[string]models.GroupMeans, len(means))
	for _, gm := range means {
		byMetric[gm.Metric] = gm
	}

	ft := byMetric["follow_through_duration"]
	assert.InDelta(t, 155.0, ft.MadeMean, 1e-9)
	assert.InDelta(t, 300.0, ft.MissedMean, 1e-9)

	// Exhaustive and disjoint outcome partition.
	assert.Equal(t, 2, ft.MadeCount)
	assert.Equal(t, 1, ft.MissedCount)
	assert.Equal(t, 3, ft.MadeCount+ft.MissedCount)

	wu := byMetric["windup_duration"]
	assert.InDelta(t, 195.0, wu.MadeMean, 1e-9)
	assert.InDelta(t, 220.0, wu.MissedMean, 1e-9)
}

func TestGroupMeansEmptyOutcomeGroup(t *testing.T) {
	ds := syntheticDataset()

	// Every trial made: the missed group is empty after partitioning.
	for i := range ds.Trials {
		ds.Trials[i].Result = models.ResultMade
	}
	_, statsService, reportService := newServicesWith(t, ds)

	// No fabricated 0.00 mean: the aggregator refuses the empty group.
	_, err := statsService.GroupMeans()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty outcome group")

	_, err = reportService.GroupMeansSection()
	require.Error(t, err)

	// The full report still renders, with the failure inline on its section.
	report := reportService.Build("T0001")
	require.Len(t, report.Sections, 7)
	assert.Empty(t, report.Sections[0].Error)
	assert.Contains(t, report.Sections[1].Error, "empty outcome group")
	assert.Empty(t, report.Sections[5].Error)
}

func TestWristStabilityTest(t *testing.T) {
	_, statsService, _ := newServices(t)

	values, test, err := statsService.WristStability()
	require.NoError(t, err)

	// Constant made wrists yield zero slopes; the oscillating missed wrist
	// does not.
	require.Len(t, values.Made, 2)
	require.Len(t, values.Missed, 1)
	assert.Equal(t, 0.0, values.Made[0])
	assert.Equal(t, 0.0, values.Made[1])
	assert.Greater(t, values.Missed[0], 0.0)

	// Both made slopes rank below the missed one: boundary U.
	assert.Equal(t, 0.0, test.U)
	assert.Equal(t, 2, test.N1)
	assert.Equal(t, 1, test.N2)
}

func TestWristTimeseries(t *testing.T) {
	trialService, _, _ := newServices(t)

	section, err := trialService.WristTimeseries("T0001")
	require.NoError(t, err)

	require.Len(t, section.Charts, 1)
	chart := section.Charts[0]
	assert.Equal(t, models.ChartLine, chart.Type)
	require.Len(t, chart.Series, 4) // line + three phase markers
	assert.Len(t, chart.Series[0].X, 20)
	assert.Contains(t, section.Summary, "made")
	assert.Contains(t, section.Summary, "200")
}

func TestWristTimeseriesErrors(t *testing.T) {
	trialService, _, _ := newServices(t)

	_, err := trialService.WristTimeseries("T9999")
	assert.ErrorIs(t, err, ErrTrialNotFound)

	_, err = trialService.WristTimeseries("banana")
	assert.ErrorIs(t, err, ErrInvalidTrialID)

	_, err = trialService.WristTimeseries("T1")
	assert.ErrorIs(t, err, ErrInvalidTrialID)
}

func TestSymmetryDensities(t *testing.T) {
	_, statsService, _ := newServices(t)

	densities, err := statsService.SymmetryDensities()
	require.NoError(t, err)
	require.Len(t, densities, 4)

	assert.Equal(t, "hip_symmetry_x", densities[0].Feature)
	for _, fd := range densities {
		require.Len(t, fd.Curves, 2)
		for _, curve := range fd.Curves {
			assert.Len(t, curve.X, 1000)
			for _, y := range curve.Y {
				assert.GreaterOrEqual(t, y, 0.0)
			}
		}
	}
}

func TestSymmetrySectionDensityCharts(t *testing.T) {
	_, _, reportService := newServices(t)

	section, err := reportService.SymmetrySection()
	require.NoError(t, err)

	// One density panel per symmetry feature, made and missed curves each.
	require.Len(t, section.Charts, 4)
	assert.Equal(t, "hip_symmetry_x", section.Charts[0].XLabel)
	for _, chart := range section.Charts {
		assert.Equal(t, models.ChartDensity, chart.Type)
		require.Len(t, chart.Series, 2)
		assert.Equal(t, models.ResultMade, chart.Series[0].Name)
		assert.Equal(t, models.ResultMissed, chart.Series[1].Name)
		for _, series := range chart.Series {
			assert.Len(t, series.X, 1000)
		}
	}
}

func TestPinkyOffsets(t *testing.T) {
	_, statsService, _ := newServices(t)

	box, madeAngles, missedAngles, err := statsService.PinkyOffsets()
	require.NoError(t, err)

	require.Len(t, box.Made, 2)
	require.Len(t, box.Missed, 1)
	for _, v := range box.Made {
		assert.InDelta(t, -0.15, v, 1e-9)
	}
	assert.Len(t, madeAngles, 2)
	assert.Len(t, missedAngles, 1)
}

func TestReportBuildFullOrder(t *testing.T) {
	_, _, reportService := newServices(t)

	report := reportService.Build("T0001")
	require.Len(t, report.Sections, 7)

	ids := make([]string, len(report.Sections))
	for i, s := range report.Sections {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{
		"wrist-timeseries", "group-means", "wrist-stability",
		"symmetry-density", "pinky-offset", "motion", "conclusion",
	}, ids)

	for _, s := range report.Sections {
		assert.Empty(t, s.Error, "section %s should render", s.ID)
	}
	assert.NotNil(t, report.Sections[2].Test)
}

func TestReportBuildUnknownTrialRendersRest(t *testing.T) {
	_, _, reportService := newServices(t)

	report := reportService.Build("T9999")
	require.Len(t, report.Sections, 7)

	// The timeseries section fails with a clear message; nothing else does.
	assert.Equal(t, "trial not found", report.Sections[0].Error)
	for _, s := range report.Sections[1:] {
		assert.Empty(t, s.Error, "section %s should render", s.ID)
	}
}
