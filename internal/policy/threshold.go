package policy

// ThresholdParams configures the naive reaction rule.
type ThresholdParams struct {
	// TargetInflation is the threshold the Fed reacts around (default 2.0).
	TargetInflation float64
	// StepSize is the fixed move per period (default 0.25).
	StepSize float64
}

// DefaultThresholdParams matches the canonical demo behavior.
func DefaultThresholdParams() ThresholdParams {
	return ThresholdParams{TargetInflation: 2.0, StepSize: 0.25}
}

// ThresholdRule hikes by exactly StepSize when candidate inflation exceeds
// the target and cuts by exactly StepSize otherwise. No inertia, no
// smoothing; it is deliberately naive.
type ThresholdRule struct {
	Params ThresholdParams
}

func NewThresholdRule(p ThresholdParams) *ThresholdRule {
	if p.StepSize == 0 {
		p = DefaultThresholdParams()
	}
	return &ThresholdRule{Params: p}
}

func (r *ThresholdRule) Name() string { return "threshold" }

func (r *ThresholdRule) Move(ctx Context) float64 {
	if ctx.CandidateInflation > r.Params.TargetInflation {
		return ctx.CurrentRate + r.Params.StepSize
	}
	return ctx.CurrentRate - r.Params.StepSize
}
