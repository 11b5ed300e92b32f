package hepce

import "math"

// defaultClearanceProbability is one sixth of RateToProbability(0.25),
// representing that ~25% of acute infections clear within the six-month
// acute window (spec §4.5.3).
var defaultClearanceProbability = RateToProbability(0.25) / 6

// ClearanceEvent draws spontaneous clearance of an acute HCV infection.
type ClearanceEvent struct {
	log                  Logger
	clearanceProbability float64
}

// NewClearanceEvent constructs a ClearanceEvent.
func NewClearanceEvent(ds DataSource, log Logger) *ClearanceEvent {
	return &ClearanceEvent{
		log:                  log,
		clearanceProbability: requireFloatConfig(ds, log, "infection.clearance_prob", defaultClearanceProbability),
	}
}

// Name implements Event.
func (e *ClearanceEvent) Name() string { return "clearance" }

// Execute implements Event (spec §4.5.3).
func (e *ClearanceEvent) Execute(p *Person, sampler *Sampler) {
	if p.HCV().Status != HCVAcute {
		return
	}
	if sampler.DrawBernoulli(math.Max(0, e.clearanceProbability)) {
		p.ClearHCV(true)
	}
}
