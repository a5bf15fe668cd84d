package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
)

// ErrTrialNotFound is returned when a trial identifier has no row in the
// joined trial table.
var ErrTrialNotFound = errors.New("trial not found")

const trialColumns = `trial_id, participant_id, result,
	windup_duration, follow_through_duration,
	windup_start, windup_height,
	release_time, release_height,
	follow_through_time, follow_through_height,
	entry_angle, x_wrist, y_ankle`

// TrialRepository handles database operations for trials
type TrialRepository struct {
	db *sql.DB
}

// NewTrialRepository creates a new trial repository
func NewTrialRepository(db *sql.DB) *TrialRepository {
	return &TrialRepository{db: db}
}

// GetByID retrieves one trial by its identifier
func (r *TrialRepository) GetByID(trialID string) (*models.Trial, error) {
	query := `SELECT ` + trialColumns + ` FROM trials WHERE trial_id = ?`

	var t models.Trial
	err := r.db.QueryRow(query, trialID).Scan(
		&t.TrialID, &t.ParticipantID, &t.Result,
		&t.WindupDuration, &t.FollowThroughDuration,
		&t.WindupStart, &t.WindupHeight,
		&t.ReleaseTime, &t.ReleaseHeight,
		&t.FollowThroughTime, &t.FollowThroughHeight,
		&t.EntryAngle, &t.XWrist, &t.YAnkle,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trial %s: %w", trialID, err)
	}
	return &t, nil
}

// All retrieves every trial ordered by identifier
func (r *TrialRepository) All() ([]models.Trial, error) {
	query := `SELECT ` + trialColumns + ` FROM trials ORDER BY trial_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trials: %w", err)
	}
	defer rows.Close()

	var trials []models.Trial
	for rows.Next() {
		var t models.Trial
		if err := rows.Scan(
			&t.TrialID, &t.ParticipantID, &t.Result,
			&t.WindupDuration, &t.FollowThroughDuration,
			&t.WindupStart, &t.WindupHeight,
			&t.ReleaseTime, &t.ReleaseHeight,
			&t.FollowThroughTime, &t.FollowThroughHeight,
			&t.EntryAngle, &t.XWrist, &t.YAnkle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trial: %w", err)
		}
		trials = append(trials, t)
	}
	return trials, rows.Err()
}

// List retrieves the trial summaries (identifier and outcome) ordered by identifier
func (r *TrialRepository) List() ([]models.TrialSummary, error) {
	rows, err := r.db.Query(`SELECT trial_id, result FROM trials ORDER BY trial_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trials: %w", err)
	}
	defer rows.Close()

	var summaries []models.TrialSummary
	for rows.Next() {
		var s models.TrialSummary
		if err := rows.Scan(&s.TrialID, &s.Result); err != nil {
			return nil, fmt.Errorf("failed to scan trial summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// CountByResult returns the number of trials per outcome
func (r *TrialRepository) CountByResult() (made, missed int, err error) {
	rows, err := r.db.Query(`SELECT result, COUNT(*) FROM trials GROUP BY result`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count trials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var result string
		var n int
		if err := rows.Scan(&result, &n); err != nil {
			return 0, 0, fmt.Errorf("failed to scan trial count: %w", err)
		}
		switch result {
		case models.ResultMade:
			made = n
		case models.ResultMissed:
			missed = n
		}
	}
	return made, missed, rows.Err()
}
