package service

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/analysis"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
	"github.com/yashvi-parmar/freethrows-backend-go/internal/repository"
)

// Service-level errors mapped to user-facing responses by the handlers.
var (
	ErrInvalidTrialID = errors.New("trial id must match the form T0001")
	ErrTrialNotFound  = repository.ErrTrialNotFound
	ErrNoDataInRange  = errors.New("no tracking data in the 100-9000 ms window")
)

var trialIDPattern = regexp.MustCompile(`^T\d{4}$`)

// TrialService handles per-trial lookups and the annotated wrist time series.
type TrialService struct {
	trials *repository.TrialRepository
	frames *repository.FrameRepository
}

// NewTrialService creates a new trial service
func NewTrialService(trials *repository.TrialRepository, frames *repository.FrameRepository) *TrialService {
	return &TrialService{trials: trials, frames: frames}
}

// List returns the trial summaries for the trial picker.
func (s *TrialService) List() ([]models.TrialSummary, error) {
	return s.trials.List()
}

// Counts returns the number of loaded trials per outcome.
func (s *TrialService) Counts() (made, missed int, err error) {
	return s.trials.CountByResult()
}

// WristTimeseries builds the annotated R_WRIST_z chart for one trial:
// the z position over the analysis window with markers at wind-up start,
// release and follow-through, plus the duration/outcome summary line.
//
// Unknown trial IDs and empty windows return defined errors, never a crash.
func (s *TrialService) WristTimeseries(trialID string) (*models.ReportSection, error) {
	if !trialIDPattern.MatchString(trialID) {
		return nil, ErrInvalidTrialID
	}

	trial, err := s.trials.GetByID(trialID)
	if err != nil {
		return nil, err
	}

	frames, err := s.frames.ForTrialInWindow(trialID, analysis.WindowStart, analysis.WindowEnd)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrNoDataInRange
	}

	times := make([]float64, len(frames))
	zs := make([]float64, len(frames))
	for i, f := range frames {
		times[i] = f.Time
		zs[i] = f.RWristZ
	}

	chart := models.Chart{
		Type:   models.ChartLine,
		Title:  fmt.Sprintf("R_WRIST_z Position over Time for Trial %s", trialID),
		XLabel: "Time",
		YLabel: "R_WRIST_z Position",
		Series: []models.Series{
			{
				Name:  "R_WRIST_z Position",
				Mode:  "lines",
				Color: models.ColorMade,
				X:     times,
				Y:     zs,
			},
			{
				Name:  "Wind-up Start",
				Mode:  "markers",
				Color: models.ColorMissed,
				X:     []float64{trial.WindupStart},
				Y:     []float64{trial.WindupHeight},
			},
			{
				Name:  "Release Point",
				Mode:  "markers",
				Color: models.ColorAccent,
				X:     []float64{trial.ReleaseTime},
				Y:     []float64{trial.ReleaseHeight},
			},
			{
				Name:  "Follow Through Release Point",
				Mode:  "markers",
				Color: models.ColorMissed,
				X:     []float64{trial.FollowThroughTime},
				Y:     []float64{trial.FollowThroughHeight},
			},
		},
	}

	return &models.ReportSection{
		ID:    "wrist-timeseries",
		Title: "Initial Observations",
		Summary: fmt.Sprintf("Wind-up Duration: %g ms | Follow Through Duration: %g ms | Result: %s",
			trial.WindupDuration, trial.FollowThroughDuration, trial.Result),
		Charts: []models.Chart{chart},
	}, nil
}
