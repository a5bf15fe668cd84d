package dataset

// Source file names expected in the data directory.
const (
	ParticipantsFile = "participants.csv"
	DurationsFile    = "durations.csv"
	TrackingFile     = "tracking.csv"
)

// Required columns per source. Names are fixed by the upstream dataset and
// must be preserved exactly.
var (
	participantColumns = []string{
		"trial_id", "participant_id", "entry_angle", "x_wrist", "y_ankle",
	}

	durationColumns = []string{
		"trial_id", "result",
		"windup_duration", "follow_through_duration",
		"windup_start", "windup_height",
		"release_time", "release_height",
		"follow_through_time", "follow_through_height",
	}

	trackingColumns = []string{
		"trial_id", "time",
		"R_WRIST_x", "R_WRIST_y", "R_WRIST_z",
		"L_WRIST_x", "L_WRIST_y", "L_WRIST_z",
		"R_5THFINGER_z",
		"R_HIP_x", "L_HIP_x",
		"R_ANKLE_x", "L_ANKLE_x",
		"R_EYE_x", "L_EYE_x",
		"R_EAR_x", "L_EAR_x",
	}
)
