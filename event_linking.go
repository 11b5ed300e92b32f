package hepce

import (
	"math"
	"strconv"
)

// LinkingEvent implements the linkage-to-care template shared by the HCV
// and HIV variants (spec §4.5.10): identified Persons are linked at a
// demographic base probability, boosted or decayed by one of three
// scaling policies when screening was recent.
type LinkingEvent struct {
	log  Logger
	it   InfectionType
	name string

	discountRate float64

	baseIdx *tableIndex // age_years/sex/behavior/pregnancy_state -> (background_p, intervention_p)

	interventionCost      float64
	falsePositiveTestCost float64
	recentScreenCutoff    int
	scalingType           string
	scalingCoefficient    float64
	recentScreenMultiplier float64

	pregnancyAware bool
	isInfected     func(*Person) bool
}

// NewHCVLinkingEvent constructs the HCV variant of LinkingEvent.
func NewHCVLinkingEvent(ds DataSource, log Logger, pregnancyAware bool) *LinkingEvent {
	return newLinkingEvent(ds, log, HCVInfectionType, "hcv_linking", "linking", pregnancyAware,
		func(p *Person) bool { return p.HCV().Status != HCVNone })
}

// NewHIVLinkingEvent constructs the HIV variant of LinkingEvent.
func NewHIVLinkingEvent(ds DataSource, log Logger, pregnancyAware bool) *LinkingEvent {
	return newLinkingEvent(ds, log, HIVInfectionType, "hiv_linking", "hiv_linking", pregnancyAware,
		func(p *Person) bool { return p.HIV().Status != HIVNone })
}

func newLinkingEvent(ds DataSource, log Logger, it InfectionType, name, configPrefix string,
	pregnancyAware bool, isInfected func(*Person) bool) *LinkingEvent {
	coefficient := requireFloatConfig(ds, log, configPrefix+".scaling_coefficient", 1)
	return &LinkingEvent{
		log:                    log,
		it:                     it,
		name:                   name,
		discountRate:           requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		baseIdx:                loadTableIndex(ds, log, name+"_base"),
		interventionCost:       requireFloatConfig(ds, log, configPrefix+".intervention_cost", 0),
		falsePositiveTestCost:  requireFloatConfig(ds, log, configPrefix+".false_positive_test_cost", 0),
		recentScreenCutoff:     requireIntConfig(ds, log, configPrefix+".recent_screen_cutoff", 0),
		scalingType:            requireStringConfig(ds, log, configPrefix+".scaling_type", "multiplier"),
		scalingCoefficient:     coefficient,
		recentScreenMultiplier: requireFloatConfig(ds, log, configPrefix+".recent_screen_multiplier", coefficient),
		pregnancyAware:         pregnancyAware,
		isInfected:             isInfected,
	}
}

// Name implements Event.
func (e *LinkingEvent) Name() string { return e.name }

// Execute implements Event (spec §4.5.10).
func (e *LinkingEvent) Execute(p *Person, sampler *Sampler) {
	if p.Linkage(e.it).State == Linked {
		return
	}
	if !p.Screening(e.it).Identified {
		return
	}
	if !e.isInfected(p) {
		p.FalsePositive(e.it)
		p.AddCost(e.falsePositiveTestCost, Discount(e.falsePositiveTestCost, e.discountRate, p.CurrentTimestep()), CostLinking)
		return
	}

	pregnancyKey := "-1"
	if e.pregnancyAware {
		pregnancyKey = p.Pregnancy().State.String()
	}
	row, ok := e.baseIdx.get(strconv.Itoa(p.AgeYears()), p.Sex().String(), p.Behavior().Behavior.String(), pregnancyKey)
	if !ok {
		return
	}
	identifiedBy := p.Screening(e.it).IdentifiedBy
	prob := row["background_p"]
	intervention := false
	if identifiedBy == ScreeningIntervention {
		prob = row["intervention_p"]
		intervention = true
	}

	elapsed := p.TimeSinceLastScreening(e.it)
	if elapsed <= e.recentScreenCutoff {
		prob = e.scale(prob, elapsed)
	}

	if !sampler.DrawBernoulli(prob) {
		return
	}
	p.Link(e.it)
	if intervention {
		p.AddCost(e.interventionCost, Discount(e.interventionCost, e.discountRate, p.CurrentTimestep()), CostLinking)
	}
}

// scale applies the configured scaling policy to a base probability
// (spec §4.5.10). See DESIGN.md for the derivation of each formula
// against the spec's pinned oracle values.
func (e *LinkingEvent) scale(p float64, elapsed int) float64 {
	rate := ProbabilityToRate(p)
	switch e.scalingType {
	case "multiplier":
		return RateToProbability(rate * e.recentScreenMultiplier)
	case "exponential":
		decay := math.Exp(-e.scalingCoefficient * (float64(elapsed) + 1))
		return RateToProbability(rate * decay)
	case "sigmoidal":
		factor := 1 / (1 + math.Exp(-e.scalingCoefficient))
		return RateToProbability(rate * factor)
	default:
		e.log.Errorf("%s: unrecognized scaling_type %q", e.name, e.scalingType)
		return p
	}
}
