package models

// Shot outcomes. The loader rejects any other value of the result column.
const (
	ResultMade   = "made"
	ResultMissed = "missed"
)

// Trial represents one free-throw attempt: the inner join of the participant
// metadata row and the phase-duration row for a trial_id.
type Trial struct {
	TrialID       string `json:"trial_id" db:"trial_id"`
	ParticipantID string `json:"participant_id" db:"participant_id"`
	Result        string `json:"result" db:"result"` // made | missed

	// Phase timing (milliseconds) and wrist heights (meters)
	WindupDuration        float64 `json:"windup_duration" db:"windup_duration"`
	FollowThroughDuration float64 `json:"follow_through_duration" db:"follow_through_duration"`
	WindupStart           float64 `json:"windup_start" db:"windup_start"`
	WindupHeight          float64 `json:"windup_height" db:"windup_height"`
	ReleaseTime           float64 `json:"release_time" db:"release_time"`
	ReleaseHeight         float64 `json:"release_height" db:"release_height"`
	FollowThroughTime     float64 `json:"follow_through_time" db:"follow_through_time"`
	FollowThroughHeight   float64 `json:"follow_through_height" db:"follow_through_height"`

	// Per-trial ball and posture measurements
	EntryAngle float64 `json:"entry_angle" db:"entry_angle"` // degrees
	XWrist     float64 `json:"x_wrist" db:"x_wrist"`         // forward wrist motion
	YAnkle     float64 `json:"y_ankle" db:"y_ankle"`         // distance between feet
}

// Made reports whether the trial was a successful shot.
func (t *Trial) Made() bool {
	return t.Result == ResultMade
}

// OutcomeCode returns the binary outcome encoding (1 = made, 0 = missed).
func (t *Trial) OutcomeCode() int {
	if t.Made() {
		return 1
	}
	return 0
}

// TrialSummary is the listing view of a trial (for the trial picker input).
type TrialSummary struct {
	TrialID string `json:"trial_id" db:"trial_id"`
	Result  string `json:"result" db:"result"`
}
