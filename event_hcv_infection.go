package hepce

import "strconv"

// HCVInfectionEvent draws new HCV incidence for uninfected Persons,
// assigns genotype 3, and progresses acute infections to chronic after
// the acute window (spec §4.5.8).
type HCVInfectionEvent struct {
	log Logger

	incidenceIdx      *tableIndex // age_years/sex/behavior -> probability
	genotypeThreeProb float64
}

// NewHCVInfectionEvent constructs an HCVInfectionEvent.
func NewHCVInfectionEvent(ds DataSource, log Logger) *HCVInfectionEvent {
	return &HCVInfectionEvent{
		log:               log,
		incidenceIdx:      loadTableIndex(ds, log, "incidence"),
		genotypeThreeProb: requireFloatConfig(ds, log, "infection.genotype_three_prob", 0),
	}
}

// Name implements Event.
func (e *HCVInfectionEvent) Name() string { return "hcv_infection" }

// acuteWindowMonths is the number of months an acute infection persists
// before progressing to chronic absent clearance (spec §4.5.8).
const acuteWindowMonths = 6

// Execute implements Event (spec §4.5.8).
func (e *HCVInfectionEvent) Execute(p *Person, sampler *Sampler) {
	switch p.HCV().Status {
	case HCVNone:
		row, ok := e.incidenceIdx.get(strconv.Itoa(p.AgeYears()), p.Sex().String(), p.Behavior().Behavior.String())
		if !ok {
			return
		}
		if !sampler.DrawBernoulli(row["probability"]) {
			return
		}
		p.InfectHCV()
		if sampler.DrawBernoulli(e.genotypeThreeProb) {
			p.SetGenotypeThree(true)
		}
	case HCVAcute:
		if p.TimeSinceHCVChanged() >= acuteWindowMonths {
			p.ProgressToChronic()
		}
	case HCVChronic:
		// no-op
	}
}
