package hepce

import "strconv"

// testCharacteristics holds the cost/sensitivity/specificity for one
// screening test modality (antibody or RNA), per spec §6's
// `screening_{background,intervention}_{ab,rna}.*` configuration family.
type testCharacteristics struct {
	cost              float64
	acuteSensitivity  float64
	chronicSensitivity float64
	specificity       float64
}

func loadTestCharacteristics(ds DataSource, log Logger, prefix string) testCharacteristics {
	return testCharacteristics{
		cost:               requireFloatConfig(ds, log, prefix+".cost", 0),
		acuteSensitivity:   requireFloatConfig(ds, log, prefix+".acute_sensitivity", 1),
		chronicSensitivity: requireFloatConfig(ds, log, prefix+".chronic_sensitivity", 1),
		specificity:        requireFloatConfig(ds, log, prefix+".specificity", 1),
	}
}

// ScreeningEvent implements the screening cascade template shared by the
// HCV and HIV variants (spec §4.5.9): it is parameterized by
// InfectionType, the config-key prefix family, and an isInfected /
// isAcute predicate so the two variants are one generalized event.
type ScreeningEvent struct {
	log  Logger
	it   InfectionType
	name string

	discountRate float64

	backgroundIdx    *tableIndex // age_years/sex/behavior -> accept probability
	interventionIdx  *tableIndex

	ab  testCharacteristics
	rna testCharacteristics

	interventionType string // one-time, periodic, null
	period           int

	isInfected func(*Person) bool
	isAcute    func(*Person) bool
}

// NewHCVScreeningEvent constructs the HCV variant of ScreeningEvent.
func NewHCVScreeningEvent(ds DataSource, log Logger) *ScreeningEvent {
	return newScreeningEvent(ds, log, HCVInfectionType, "hcv_screening", "screening",
		func(p *Person) bool { return p.HCV().Status != HCVNone },
		func(p *Person) bool { return p.HCV().Status == HCVAcute })
}

// NewHIVScreeningEvent constructs the HIV variant of ScreeningEvent.
func NewHIVScreeningEvent(ds DataSource, log Logger) *ScreeningEvent {
	return newScreeningEvent(ds, log, HIVInfectionType, "hiv_screening", "hiv_screening",
		func(p *Person) bool { return p.HIV().Status != HIVNone },
		func(p *Person) bool { return false })
}

func newScreeningEvent(ds DataSource, log Logger, it InfectionType, name, configPrefix string,
	isInfected, isAcute func(*Person) bool) *ScreeningEvent {
	return &ScreeningEvent{
		log:              log,
		it:               it,
		name:             name,
		discountRate:     requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		backgroundIdx:    loadTableIndex(ds, log, name+"_background"),
		interventionIdx:  loadTableIndex(ds, log, name+"_intervention"),
		ab:               loadTestCharacteristics(ds, log, configPrefix+"_background_ab"),
		rna:              loadTestCharacteristics(ds, log, configPrefix+"_background_rna"),
		interventionType: requireStringConfig(ds, log, configPrefix+".intervention_type", "null"),
		period:           requireIntConfig(ds, log, configPrefix+".period", 12),
		isInfected:       isInfected,
		isAcute:          isAcute,
	}
}

// Name implements Event.
func (e *ScreeningEvent) Name() string { return e.name }

// Execute implements Event (spec §4.5.9).
func (e *ScreeningEvent) Execute(p *Person, sampler *Sampler) {
	if p.Linkage(e.it).State == Linked {
		return
	}

	useIntervention := false
	switch e.interventionType {
	case "one-time":
		useIntervention = p.CurrentTimestep() == 1
	case "periodic":
		useIntervention = p.TimeSinceLastScreening(e.it) >= e.period
	}
	chosenType := ScreeningBackground
	idx := e.backgroundIdx
	if useIntervention {
		chosenType = ScreeningIntervention
		idx = e.interventionIdx
	}

	row, ok := idx.get(strconv.Itoa(p.AgeYears()), p.Sex().String(), p.Behavior().Behavior.String())
	if !ok {
		return
	}
	if !sampler.DrawBernoulli(row["screen_acceptance_probability"]) {
		return
	}

	p.Screen(e.it, AntibodyTest, chosenType)
	p.AddCost(e.ab.cost, Discount(e.ab.cost, e.discountRate, p.CurrentTimestep()), CostScreening)

	infected := e.isInfected(p)
	abPositiveProb := 1 - e.ab.specificity
	if infected {
		if e.isAcute(p) {
			abPositiveProb = e.ab.acuteSensitivity
		} else {
			abPositiveProb = e.ab.chronicSensitivity
		}
	}
	if !sampler.DrawBernoulli(abPositiveProb) {
		if infected {
			p.AddFalseNegative(e.it)
		}
		return
	}

	p.SetAbPositive(e.it, true)
	p.Screen(e.it, RNATest, chosenType)
	p.AddCost(e.rna.cost, Discount(e.rna.cost, e.discountRate, p.CurrentTimestep()), CostScreening)

	rnaPositiveProb := 1 - e.rna.specificity
	if infected {
		if e.isAcute(p) {
			rnaPositiveProb = e.rna.acuteSensitivity
		} else {
			rnaPositiveProb = e.rna.chronicSensitivity
		}
	}
	if sampler.DrawBernoulli(rnaPositiveProb) {
		p.Diagnose(e.it)
		p.SetIdentifiedBy(e.it, chosenType)
	} else if infected {
		p.AddFalseNegative(e.it)
	}
}
