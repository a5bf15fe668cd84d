package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/models"
)

// Dataset holds the joined trial-level and frame-level tables. It is built
// once at startup and read-only afterwards.
type Dataset struct {
	Trials []models.Trial
	Frames []models.Frame // ordered by trial_id, then source order (time non-decreasing)
}

// Load reads the three CSV sources from dir, validates their schemas and
// inner-joins them on trial_id. Trials present in only one source are
// dropped; a missing required column or a result value outside made/missed
// fails the load with a descriptive error.
func Load(dir string, logger *zap.Logger) (*Dataset, error) {
	participants, err := readTable(filepath.Join(dir, ParticipantsFile), participantColumns)
	if err != nil {
		return nil, err
	}
	durations, err := readTable(filepath.Join(dir, DurationsFile), durationColumns)
	if err != nil {
		return nil, err
	}
	tracking, err := readTable(filepath.Join(dir, TrackingFile), trackingColumns)
	if err != nil {
		return nil, err
	}

	ds, err := Join(participants, durations, tracking)
	if err != nil {
		return nil, err
	}

	for _, issue := range ds.QualityIssues() {
		logger.Warn("data quality issue", zap.String("issue", issue))
	}
	logger.Info("dataset loaded",
		zap.Int("trials", len(ds.Trials)),
		zap.Int("frames", len(ds.Frames)))

	return ds, nil
}

// Table is a parsed CSV source: the header index and the raw rows.
type Table struct {
	File    string
	Columns map[string]int
	Rows    [][]string
}

func readTable(path string, required []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	return ParseTable(filepath.Base(path), f, required)
}

// ParseTable reads one CSV source and validates that every required column
// is present. Validation happens here, at load time, so later lookups can
// never fail on a missing column.
func ParseTable(name string, r io.Reader, required []string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}

	columns := make(map[string]int, len(header))
	for i, col := range header {
		columns[col] = i
	}
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", name, col)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: read rows: %w", name, err)
	}

	return &Table{File: name, Columns: columns, Rows: rows}, nil
}

func (t *Table) get(row []string, col string) string {
	return row[t.Columns[col]]
}

func (t *Table) getFloat(row []string, rowIdx int, col string) (float64, error) {
	s := t.get(row, col)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: invalid %s value %q", t.File, rowIdx+2, col, s)
	}
	return v, nil
}

// Join inner-joins the three parsed sources on trial_id. The trial-level
// table is participants joined with durations; the frame-level table keeps
// only tracking rows whose trial_id survived the trial-level join.
func Join(participants, durations, tracking *Table) (*Dataset, error) {
	type participantRow struct {
		participantID string
		entryAngle    float64
		xWrist        float64
		yAnkle        float64
	}

	byTrial := make(map[string]participantRow, len(participants.Rows))
	for i, row := range participants.Rows {
		id := participants.get(row, "trial_id")
		entryAngle, err := participants.getFloat(row, i, "entry_angle")
		if err != nil {
			return nil, err
		}
		xWrist, err := participants.getFloat(row, i, "x_wrist")
		if err != nil {
			return nil, err
		}
		yAnkle, err := participants.getFloat(row, i, "y_ankle")
		if err != nil {
			return nil, err
		}
		byTrial[id] = participantRow{
			participantID: participants.get(row, "participant_id"),
			entryAngle:    entryAngle,
			xWrist:        xWrist,
			yAnkle:        yAnkle,
		}
	}

	trials := make([]models.Trial, 0, len(durations.Rows))
	trialIDs := make(map[string]bool, len(durations.Rows))
	for i, row := range durations.Rows {
		id := durations.get(row, "trial_id")
		p, ok := byTrial[id]
		if !ok {
			continue // inner join: no participant row for this trial
		}

		result := durations.get(row, "result")
		if result != models.ResultMade && result != models.ResultMissed {
			return nil, fmt.Errorf("%s row %d: invalid result %q for trial %s (want made or missed)",
				durations.File, i+2, result, id)
		}

		t := models.Trial{
			TrialID:       id,
			ParticipantID: p.participantID,
			Result:        result,
			EntryAngle:    p.entryAngle,
			XWrist:        p.xWrist,
			YAnkle:        p.yAnkle,
		}

		var err error
		fields := []struct {
			col string
			dst *float64
		}{
			{"windup_duration", &t.WindupDuration},
			{"follow_through_duration", &t.FollowThroughDuration},
			{"windup_start", &t.WindupStart},
			{"windup_height", &t.WindupHeight},
			{"release_time", &t.ReleaseTime},
			{"release_height", &t.ReleaseHeight},
			{"follow_through_time", &t.FollowThroughTime},
			{"follow_through_height", &t.FollowThroughHeight},
		}
		for _, f := range fields {
			if *f.dst, err = durations.getFloat(row, i, f.col); err != nil {
				return nil, err
			}
		}

		trials = append(trials, t)
		trialIDs[id] = true
	}
	sort.Slice(trials, func(i, j int) bool { return trials[i].TrialID < trials[j].TrialID })

	frames := make([]models.Frame, 0, len(tracking.Rows))
	for i, row := range tracking.Rows {
		id := tracking.get(row, "trial_id")
		if !trialIDs[id] {
			continue // inner join: trial dropped or unknown
		}

		f := models.Frame{TrialID: id}
		var err error
		fields := []struct {
			col string
			dst *float64
		}{
			{"time", &f.Time},
			{"R_WRIST_x", &f.RWristX},
			{"R_WRIST_y", &f.RWristY},
			{"R_WRIST_z", &f.RWristZ},
			{"L_WRIST_x", &f.LWristX},
			{"L_WRIST_y", &f.LWristY},
			{"L_WRIST_z", &f.LWristZ},
			{"R_5THFINGER_z", &f.R5thFingerZ},
			{"R_HIP_x", &f.RHipX},
			{"L_HIP_x", &f.LHipX},
			{"R_ANKLE_x", &f.RAnkleX},
			{"L_ANKLE_x", &f.LAnkleX},
			{"R_EYE_x", &f.REyeX},
			{"L_EYE_x", &f.LEyeX},
			{"R_EAR_x", &f.REarX},
			{"L_EAR_x", &f.LEarX},
		}
		for _, fl := range fields {
			if *fl.dst, err = tracking.getFloat(row, i, fl.col); err != nil {
				return nil, err
			}
		}
		frames = append(frames, f)
	}
	sort.SliceStable(frames, func(i, j int) bool { return frames[i].TrialID < frames[j].TrialID })

	return &Dataset{Trials: trials, Frames: frames}, nil
}

// QualityIssues checks the temporal ordering invariant per trial:
// windup_duration >= 0, follow_through_duration >= 0, and release_time
// strictly between windup_start and follow_through_time. Violations are
// reported, not fatal.
func (d *Dataset) QualityIssues() []string {
	var issues []string
	for _, t := range d.Trials {
		if t.WindupDuration < 0 {
			issues = append(issues, fmt.Sprintf("trial %s: negative windup_duration %g", t.TrialID, t.WindupDuration))
		}
		if t.FollowThroughDuration < 0 {
			issues = append(issues, fmt.Sprintf("trial %s: negative follow_through_duration %g", t.TrialID, t.FollowThroughDuration))
		}
		if !(t.WindupStart < t.ReleaseTime && t.ReleaseTime < t.FollowThroughTime) {
			issues = append(issues, fmt.Sprintf("trial %s: release_time %g not between windup_start %g and follow_through_time %g",
				t.TrialID, t.ReleaseTime, t.WindupStart, t.FollowThroughTime))
		}
	}
	return issues
}
