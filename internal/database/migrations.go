package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates the trial and frame tables. The store is rebuilt from the
// CSV sources on every start, so there is no migration versioning.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS trials (
			trial_id TEXT PRIMARY KEY,
			participant_id TEXT NOT NULL,
			result TEXT NOT NULL CHECK (result IN ('made', 'missed')),
			windup_duration REAL NOT NULL,
			follow_through_duration REAL NOT NULL,
			windup_start REAL NOT NULL,
			windup_height REAL NOT NULL,
			release_time REAL NOT NULL,
			release_height REAL NOT NULL,
			follow_through_time REAL NOT NULL,
			follow_through_height REAL NOT NULL,
			entry_angle REAL NOT NULL,
			x_wrist REAL NOT NULL,
			y_ankle REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS frames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			trial_id TEXT NOT NULL REFERENCES trials(trial_id),
			time REAL NOT NULL,
			R_WRIST_x REAL NOT NULL,
			R_WRIST_y REAL NOT NULL,
			R_WRIST_z REAL NOT NULL,
			L_WRIST_x REAL NOT NULL,
			L_WRIST_y REAL NOT NULL,
			L_WRIST_z REAL NOT NULL,
			R_5THFINGER_z REAL NOT NULL,
			R_HIP_x REAL NOT NULL,
			L_HIP_x REAL NOT NULL,
			R_ANKLE_x REAL NOT NULL,
			L_ANKLE_x REAL NOT NULL,
			R_EYE_x REAL NOT NULL,
			L_EYE_x REAL NOT NULL,
			R_EAR_x REAL NOT NULL,
			L_EAR_x REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_frames_trial_time ON frames(trial_id, time)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
