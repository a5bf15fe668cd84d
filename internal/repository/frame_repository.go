package repository

import (
	"database/sql"
	"fmt"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
)

const frameColumns = `trial_id, time,
	R_WRIST_x, R_WRIST_y, R_WRIST_z,
	L_WRIST_x, L_WRIST_y, L_WRIST_z,
	R_5THFINGER_z,
	R_HIP_x, L_HIP_x,
	R_ANKLE_x, L_ANKLE_x,
	R_EYE_x, L_EYE_x,
	R_EAR_x, L_EAR_x`

// FrameRepository handles database operations for tracking frames
type FrameRepository struct {
	db *sql.DB
}

// NewFrameRepository creates a new frame repository
func NewFrameRepository(db *sql.DB) *FrameRepository {
	return &FrameRepository{db: db}
}

func scanFrames(rows *sql.Rows) ([]models.Frame, error) {
	var frames []models.Frame
	for rows.Next() {
		var f models.Frame
		if err := rows.Scan(
			&f.TrialID, &f.Time,
			&f.RWristX, &f.RWristY, &f.RWristZ,
			&f.LWristX, &f.LWristY, &f.LWristZ,
			&f.R5thFingerZ,
			&f.RHipX, &f.LHipX,
			&f.RAnkleX, &f.LAnkleX,
			&f.REyeX, &f.LEyeX,
			&f.REarX, &f.LEarX,
		); err != nil {
			return nil, fmt.Errorf("failed to scan frame: %w", err)
		}
		frames = append(frames, f)
	}
	return frames, rows.Err()
}

// ForTrialInWindow retrieves a trial's frames with from <= time <= to,
// ordered by time
func (r *FrameRepository) ForTrialInWindow(trialID string, from, to float64) ([]models.Frame, error) {
	query := `SELECT ` + frameColumns + `
		FROM frames
		WHERE trial_id = ? AND time >= ? AND time <= ?
		ORDER BY time`

	rows, err := r.db.Query(query, trialID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames for trial %s: %w", trialID, err)
	}
	defer rows.Close()

	return scanFrames(rows)
}

// All retrieves every frame ordered by trial identifier and time
func (r *FrameRepository) All() ([]models.Frame, error) {
	query := `SELECT ` + frameColumns + ` FROM frames ORDER BY trial_id, time`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames: %w", err)
	}
	defer rows.Close()

	return scanFrames(rows)
}
