package database

import (
	"database/sql"
	"fmt"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/dataset"
)

// Seed inserts a loaded dataset into the store. It runs once at startup;
// everything afterwards is read-only.
func Seed(db *sql.DB, ds *dataset.Dataset) error {
	return Transaction(db, func(tx *sql.Tx) error {
		trialStmt, err := tx.Prepare(`
			INSERT INTO trials (
				trial_id, participant_id, result,
				windup_duration, follow_through_duration,
				windup_start, windup_height,
				release_time, release_height,
				follow_through_time, follow_through_height,
				entry_angle, x_wrist, y_ankle
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare trial insert: %w", err)
		}
		defer trialStmt.Close()

		for _, t := range ds.Trials {
			if _, err := trialStmt.Exec(
				t.TrialID, t.ParticipantID, t.Result,
				t.WindupDuration, t.FollowThroughDuration,
				t.WindupStart, t.WindupHeight,
				t.ReleaseTime, t.ReleaseHeight,
				t.FollowThroughTime, t.FollowThroughHeight,
				t.EntryAngle, t.XWrist, t.YAnkle,
			); err != nil {
				return fmt.Errorf("insert trial %s: %w", t.TrialID, err)
			}
		}

		frameStmt, err := tx.Prepare(`
			INSERT INTO frames (
				trial_id, time,
				R_WRIST_x, R_WRIST_y, R_WRIST_z,
				L_WRIST_x, L_WRIST_y, L_WRIST_z,
				R_5THFINGER_z,
				R_HIP_x, L_HIP_x,
				R_ANKLE_x, L_ANKLE_x,
				R_EYE_x, L_EYE_x,
				R_EAR_x, L_EAR_x
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare frame insert: %w", err)
		}
		defer frameStmt.Close()

		for _, f := range ds.Frames {
			if _, err := frameStmt.Exec(
				f.TrialID, f.Time,
				f.RWristX, f.RWristY, f.RWristZ,
				f.LWristX, f.LWristY, f.LWristZ,
				f.R5thFingerZ,
				f.RHipX, f.LHipX,
				f.RAnkleX, f.LAnkleX,
				f.REyeX, f.LEyeX,
				f.REarX, f.LEarX,
			); err != nil {
				return fmt.Errorf("insert frame for trial %s: %w", f.TrialID, err)
			}
		}

		return nil
	})
}
