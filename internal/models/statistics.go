package models

// Measure is a derived scalar that may be undefined when a trial lacks enough
// samples to compute it. It replaces silent NaN propagation: callers check
// Valid before using Value, and aggregations exclude invalid measures.
type Measure struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// ValidMeasure wraps a computed value.
func ValidMeasure(v float64) Measure {
	return Measure{Value: v, Valid: true}
}

// InvalidMeasure marks a measure as insufficient data.
func InvalidMeasure() Measure {
	return Measure{}
}

// TrialFeatures holds the per-trial derived scalars, computed once at startup.
type TrialFeatures struct {
	TrialID     string  `json:"trial_id"`
	Result      string  `json:"result"`
	OutcomeCode int     `json:"outcome_code"`
	Slope       Measure `json:"slope"`        // wrist-stability slope over [100, 9000] ms
	PinkyOffset Measure `json:"pinky_offset"` // signed wrist-pinky z offset at closest approach
}

// GroupMeans is one paired made-vs-missed mean comparison for a metric.
type GroupMeans struct {
	Metric      string  `json:"metric"`
	Unit        string  `json:"unit,omitempty"`
	MadeMean    float64 `json:"made_mean"`
	MissedMean  float64 `json:"missed_mean"`
	MadeCount   int     `json:"made_count"`
	MissedCount int     `json:"missed_count"`
}

// MannWhitneyResult is the outcome of the two-sided Mann-Whitney U test.
//
// Tie policy: ranks are midranks and the variance of U carries the standard
// tie correction; the p-value uses the continuity-corrected normal
// approximation. The effect size r uses the uncorrected
// z = (U - n1*n2/2) / sqrt(n1*n2*(n1+n2+1)/12) and r = z / sqrt(n1+n2).
type MannWhitneyResult struct {
	U          float64 `json:"u_statistic"`
	PValue     float64 `json:"p_value"`
	Z          float64 `json:"z"`
	EffectSize float64 `json:"effect_size"`
	N1         int     `json:"n1"`
	N2         int     `json:"n2"`
}

// DensityCurve is a kernel-density estimate evaluated on a fixed-resolution
// grid spanning the group's observed min/max.
type DensityCurve struct {
	Group string    `json:"group"` // made | missed
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// FeatureDensity is the set of per-group density curves for one symmetry feature.
type FeatureDensity struct {
	Feature string         `json:"feature"`
	Title   string         `json:"title"`
	Curves  []DensityCurve `json:"curves"`
}

// GroupValues is a named sample split by outcome, the input shape for box,
// violin and scatter chart payloads.
type GroupValues struct {
	Metric string    `json:"metric"`
	Made   []float64 `json:"made"`
	Missed []float64 `json:"missed"`
}
