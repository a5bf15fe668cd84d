package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
)

const participantsCSV = `trial_id,participant_id,entry_angle,x_wrist,y_ankle
T0001,P01,44.5,0.12,0.30
T0002,P01,41.0,0.18,0.28
T0003,P01,45.2,0.10,0.31
T0099,P01,40.0,0.20,0.29
`

const durationsCSV = `trial_id,result,windup_duration,follow_through_duration,windup_start,windup_height,release_time,release_height,follow_through_time,follow_through_height
T0001,made,200,150,300,1.1,1000,2.3,1150,2.5
T0002,missed,220,300,310,1.0,1000,2.2,1300,2.4
T0003,made,190,160,290,1.2,1000,2.3,1160,2.5
T0042,made,210,170,280,1.1,1000,2.3,1170,2.5
`

const trackingCSV = `trial_id,time,R_WRIST_x,R_WRIST_y,R_WRIST_z,L_WRIST_x,L_WRIST_y,L_WRIST_z,R_5THFINGER_z,R_HIP_x,L_HIP_x,R_ANKLE_x,L_ANKLE_x,R_EYE_x,L_EYE_x,R_EAR_x,L_EAR_x
T0001,100,0.1,0.2,1.8,0.1,0.2,1.7,1.65,0.3,0.1,0.2,0.1,0.05,0.04,0.06,0.05
T0001,200,0.1,0.2,1.9,0.1,0.2,1.8,1.75,0.3,0.1,0.2,0.1,0.05,0.04,0.06,0.05
T0002,100,0.1,0.2,1.8,0.1,0.2,1.7,1.65,0.3,0.1,0.2,0.1,0.05,0.04,0.06,0.05
T0404,100,0.1,0.2,1.8,0.1,0.2,1.7,1.65,0.3,0.1,0.2,0.1,0.05,0.04,0.06,0.05
`

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeSources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeSource(t, dir, ParticipantsFile, participantsCSV)
	writeSource(t, dir, DurationsFile, durationsCSV)
	writeSource(t, dir, TrackingFile, trackingCSV)
	return dir
}

func TestLoadJoinCorrectness(t *testing.T) {
	ds, err := Load(writeSources(t), zap.NewNop())
	require.NoError(t, err)

	// Inner join on trial_id: T0099 has no durations row, T0042 no
	// participants row; both drop silently.
	require.Len(t, ds.Trials, 3)
	ids := []string{ds.Trials[0].TrialID, ds.Trials[1].TrialID, ds.Trials[2].TrialID}
	assert.Equal(t, []string{"T0001", "T0002", "T0003"}, ids)

	// Key fields match the corresponding source rows.
	t1 := ds.Trials[0]
	assert.Equal(t, models.ResultMade, t1.Result)
	assert.Equal(t, "P01", t1.ParticipantID)
	assert.Equal(t, 200.0, t1.WindupDuration)
	assert.Equal(t, 150.0, t1.FollowThroughDuration)
	assert.Equal(t, 1000.0, t1.ReleaseTime)
	assert.Equal(t, 44.5, t1.EntryAngle)
	assert.Equal(t, 0.12, t1.XWrist)

	// Frame-level join keeps only frames of surviving trials (T0404 drops).
	require.Len(t, ds.Frames, 3)
	for _, f := range ds.Frames {
		assert.Contains(t, ids, f.TrialID)
	}
	assert.Equal(t, 1.8, ds.Frames[0].RWristZ)
	assert.Equal(t, 1.65, ds.Frames[0].R5thFingerZ)
}

func TestLoadMissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, ParticipantsFile, participantsCSV)
	writeSource(t, dir, DurationsFile, strings.Replace(durationsCSV, "release_time", "release", 1))
	writeSource(t, dir, TrackingFile, trackingCSV)

	_, err := Load(dir, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
	assert.Contains(t, err.Error(), "release_time")
}

func TestLoadInvalidResultValue(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, ParticipantsFile, participantsCSV)
	writeSource(t, dir, DurationsFile, strings.Replace(durationsCSV, "T0002,missed", "T0002,blocked", 1))
	writeSource(t, dir, TrackingFile, trackingCSV)

	_, err := Load(dir, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid result "blocked"`)
	assert.Contains(t, err.Error(), "T0002")
}

func TestLoadInvalidNumber(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, ParticipantsFile, strings.Replace(participantsCSV, "44.5", "forty", 1))
	writeSource(t, dir, DurationsFile, durationsCSV)
	writeSource(t, dir, TrackingFile, trackingCSV)

	_, err := Load(dir, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry_angle")
}

func TestQualityIssuesTemporalOrdering(t *testing.T) {
	ds := &Dataset{Trials: []models.Trial{
		{TrialID: "T0001", WindupDuration: 200, FollowThroughDuration: 150, WindupStart: 300, ReleaseTime: 1000, FollowThroughTime: 1150},
		{TrialID: "T0002", WindupDuration: -5, FollowThroughDuration: 150, WindupStart: 300, ReleaseTime: 1000, FollowThroughTime: 1150},
		{TrialID: "T0003", WindupDuration: 200, FollowThroughDuration: 150, WindupStart: 1200, ReleaseTime: 1000, FollowThroughTime: 1150},
	}}

	issues := ds.QualityIssues()
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0], "T0002")
	assert.Contains(t, issues[1], "T0003")
}

func TestParseTableMissingColumn(t *testing.T) {
	_, err := ParseTable("participants.csv", strings.NewReader("trial_id,entry_angle\nT0001,44.5\n"), participantColumns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `participants.csv: missing column "participant_id"`)
}
