package models

// Colorblind-friendly palette used by every chart in the report.
const (
	ColorMade   = "#0072B2"
	ColorMissed = "#E69F00"
	ColorText   = "#3E3E3E"
	ColorAccent = "#009E73"
)

// Chart types understood by the report front-end.
const (
	ChartLine    = "line"
	ChartBar     = "bar"
	ChartViolin  = "violin"
	ChartDensity = "density"
	ChartBox     = "box"
	ChartScatter = "scatter"
)

// Series is one plotted trace within a chart.
type Series struct {
	Name   string    `json:"name"`
	Mode   string    `json:"mode,omitempty"` // lines | markers
	Color  string    `json:"color,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Labels []string  `json:"labels,omitempty"` // categorical x values
	Text   []string  `json:"text,omitempty"`   // per-point annotations
}

// Chart is a renderable chart payload.
type Chart struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	XLabel string   `json:"x_label,omitempty"`
	YLabel string   `json:"y_label,omitempty"`
	Series []Series `json:"series"`
}

// ReportSection is one block of the report: narrative text plus zero or more
// charts. A section that failed to render carries Error and no charts; the
// rest of the report is unaffected.
type ReportSection struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Narrative string             `json:"narrative,omitempty"`
	Summary   string             `json:"summary,omitempty"` // numeric one-liner shown above the charts
	Charts    []Chart            `json:"charts,omitempty"`
	Test      *MannWhitneyResult `json:"test,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// Report is the full rendered report for one selected trial.
type Report struct {
	Title    string          `json:"title"`
	TrialID  string          `json:"trial_id"`
	Sections []ReportSection `json:"sections"`
}
