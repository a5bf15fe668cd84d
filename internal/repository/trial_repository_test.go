package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/database"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/dataset"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/repository"
)

func seededRepos(t *testing.T) (*repository.TrialRepository, *repository.FrameRepository) {
	t.Helper()

	db, err := database.Open(database.Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ds := &dataset.Dataset{
		Trials: []models.Trial{
			{TrialID: "T0001", ParticipantID: "P01", Result: models.ResultMade,
				WindupDuration: 200, FollowThroughDuration: 150,
				WindupStart: 300, ReleaseTime: 1000, FollowThroughTime: 1150,
				ReleaseHeight: 2.3, EntryAngle: 44.5, XWrist: 0.12, YAnkle: 0.30},
			{TrialID: "T0002", ParticipantID: "P01", Result: models.ResultMissed,
				WindupDuration: 220, FollowThroughDuration: 300,
				WindupStart: 310, ReleaseTime: 1000, FollowThroughTime: 1300},
		},
		Frames: []models.Frame{
			{TrialID: "T0001", Time: 100, RWristZ: 1.8},
			{TrialID: "T0001", Time: 200, RWristZ: 1.9},
			{TrialID: "T0001", Time: 9500, RWristZ: 2.0},
		},
	}
	require.NoError(t, database.Seed(db, ds))

	return repository.NewTrialRepository(db), repository.NewFrameRepository(db)
}

func TestGetByID(t *testing.T) {
	trials, _ := seededRepos(t)

	trial, err := trials.GetByID("T0001")
	require.NoError(t, err)
	assert.Equal(t, models.ResultMade, trial.Result)
	assert.Equal(t, 150.0, trial.FollowThroughDuration)
	assert.Equal(t, 44.5, trial.EntryAngle)
}

func TestGetByIDNotFound(t *testing.T) {
	trials, _ := seededRepos(t)

	_, err := trials.GetByID("T0404")
	assert.ErrorIs(t, err, repository.ErrTrialNotFound)
}

func TestCountByResult(t *testing.T) {
	trials, _ := seededRepos(t)

	made, missed, err := trials.CountByResult()
	require.NoError(t, err)
	assert.Equal(t, 1, made)
	assert.Equal(t, 1, missed)
}

func TestForTrialInWindow(t *testing.T) {
	_, frames := seededRepos(t)

	got, err := frames.ForTrialInWindow("T0001", 100, 9000)
	require.NoError(t, err)
	require.Len(t, got, 2, "frame at 9500 ms is outside the window")
	assert.Equal(t, 100.0, got[0].Time)
	assert.Equal(t, 200.0, got[1].Time)

	empty, err := frames.ForTrialInWindow("T0002", 100, 9000)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
