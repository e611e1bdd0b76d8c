package policy

// Context carries what a rule may look at when moving the policy rate.
type Context struct {
	// CandidateInflation is the inflation implied for the upcoming period.
	CandidateInflation float64
	// CurrentRate is the federal funds rate before the move.
	CurrentRate float64
}

// Rule decides the next federal funds rate. The returned value is
// pre-clamp; the simulation engine applies the indicator range.
type Rule interface {
	Name() string
	Move(ctx Context) float64
}
