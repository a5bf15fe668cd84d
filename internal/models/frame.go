package models

// Frame represents one time-sampled pose observation within a trial.
// Field tags mirror the tracking source columns exactly (R_WRIST_z, L_HIP_x, ...).
// Timestamps are milliseconds from trial start and are non-decreasing within
// a trial.
type Frame struct {
	TrialID string  `json:"trial_id" db:"trial_id"`
	Time    float64 `json:"time" db:"time"`

	RWristX float64 `json:"R_WRIST_x" db:"R_WRIST_x"`
	RWristY float64 `json:"R_WRIST_y" db:"R_WRIST_y"`
	RWristZ float64 `json:"R_WRIST_z" db:"R_WRIST_z"`
	LWristX float64 `json:"L_WRIST_x" db:"L_WRIST_x"`
	LWristY float64 `json:"L_WRIST_y" db:"L_WRIST_y"`
	LWristZ float64 `json:"L_WRIST_z" db:"L_WRIST_z"`

	R5thFingerZ float64 `json:"R_5THFINGER_z" db:"R_5THFINGER_z"`

	RHipX   float64 `json:"R_HIP_x" db:"R_HIP_x"`
	LHipX   float64 `json:"L_HIP_x" db:"L_HIP_x"`
	RAnkleX float64 `json:"R_ANKLE_x" db:"R_ANKLE_x"`
	LAnkleX float64 `json:"L_ANKLE_x" db:"L_ANKLE_x"`
	REyeX   float64 `json:"R_EYE_x" db:"R_EYE_x"`
	LEyeX   float64 `json:"L_EYE_x" db:"L_EYE_x"`
	REarX   float64 `json:"R_EAR_x" db:"R_EAR_x"`
	LEarX   float64 `json:"L_EAR_x" db:"L_EAR_x"`
}

// SymmetryFrame is a frame restricted to the follow-through window with its
// derived bilateral symmetry features attached. Symmetry values are absolute
// differences and therefore always >= 0.
type SymmetryFrame struct {
	TrialID     string  `json:"trial_id"`
	Time        float64 `json:"time"`
	OutcomeCode int     `json:"outcome_code"` // 1 = made, 0 = missed

	HipSymmetryX   float64 `json:"hip_symmetry_x"`
	AnkleSymmetryX float64 `json:"ankle_symmetry_x"`
	EyeSymmetryX   float64 `json:"eye_symmetry_x"`
	EarSymmetryX   float64 `json:"ear_symmetry_x"`
}
