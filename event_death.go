package hepce

import "strconv"

// DeathEvent composes a per-timestep death probability from background
// mortality, fibrosis-stratified liver mortality, HIV mortality, and
// overdose fatality, then draws a single outcome (spec §4.5.4).
type DeathEvent struct {
	log Logger

	f4Infected        float64
	f4Uninfected      float64
	decompInfected    float64
	decompUninfected  float64
	hivMortality      float64

	backgroundIdx *tableIndex // age_years/sex/behavior -> p
	smrIdx        *tableIndex // sex -> smr
	overdoseIdx   *tableIndex // behavior/moud_state -> fatality_probability

	hivEnabled      bool
	overdoseEnabled bool
}

// NewDeathEvent constructs a DeathEvent, preloading every mortality
// input it needs.
func NewDeathEvent(ds DataSource, log Logger) *DeathEvent {
	overdoseIdx := loadTableIndex(ds, log, "overdoses")
	return &DeathEvent{
		log:              log,
		f4Infected:       requireFloatConfig(ds, log, "mortality.f4_infected", 0),
		f4Uninfected:     requireFloatConfig(ds, log, "mortality.f4_uninfected", 0),
		decompInfected:   requireFloatConfig(ds, log, "mortality.decomp_infected", 0),
		decompUninfected: requireFloatConfig(ds, log, "mortality.decomp_uninfected", 0),
		hivMortality:     requireFloatConfig(ds, log, "mortality.hiv", 0),
		backgroundIdx:    loadTableIndex(ds, log, "background_mortality"),
		smrIdx:           loadTableIndex(ds, log, "SMR"),
		overdoseIdx:      overdoseIdx,
		hivEnabled:       requireBoolConfig(ds, log, "mortality.hiv_enabled", false),
		overdoseEnabled:  requireBoolConfig(ds, log, "mortality.overdose_enabled", len(overdoseIdx.rows) > 0),
	}
}

// Name implements Event.
func (e *DeathEvent) Name() string { return "death" }

// Execute implements Event (spec §4.5.4).
func (e *DeathEvent) Execute(p *Person, sampler *Sampler) {
	if p.Age() >= MaxAgeMonths {
		p.Die(DeathAge)
		return
	}

	backgroundRow, _ := e.backgroundIdx.get(strconv.Itoa(p.AgeYears()), p.Sex().String(), p.Behavior().Behavior.String())
	smrRow, _ := e.smrIdx.get(p.Sex().String())
	background := backgroundRow["p"] * smrRow["smr"]

	infected := p.HCV().Status != HCVNone
	var fibrosis float64
	switch p.HCV().Fibrosis {
	case F4:
		if infected {
			fibrosis = e.f4Infected
		} else {
			fibrosis = e.f4Uninfected
		}
	case Decomp:
		if infected {
			fibrosis = e.decompInfected
		} else {
			fibrosis = e.decompUninfected
		}
	}

	var hiv float64
	if e.hivEnabled && p.HIV().Status != HIVNone {
		hiv = e.hivMortality
	}

	var overdose float64
	if e.overdoseEnabled && p.Overdose().Active {
		row, ok := e.overdoseIdx.get(p.Behavior().Behavior.String(), p.MOUD().State.String())
		if ok {
			overdose = row["fatality_probability"]
		}
	}

	weights := []float64{background, fibrosis, hiv, overdose}
	idx, err := sampler.GetDecision(weights)
	if err != nil {
		e.log.Errorf("death: %s", err)
		return
	}
	switch idx {
	case 0:
		p.Die(DeathBackground)
	case 1:
		p.Die(DeathLiver)
	case 2:
		p.Die(DeathHIV)
	case 3:
		p.Die(DeathOverdose)
	}
}
