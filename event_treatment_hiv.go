package hepce

// HIVTreatmentEvent runs the HIV antiretroviral treatment cascade:
// eligibility, initiation, course cost/toxicity/withdrawal, and
// suppression/CD4 restoration milestones (spec §4.5.12).
type HIVTreatmentEvent struct {
	log          Logger
	discountRate float64

	treatmentCost           float64
	treatmentInitiationProb float64
	ltfuProbability         float64

	ineligibleBehavior   map[Behavior]bool
	ineligibleTimeFormer int
	ineligibleTimeLinked int

	courseIdx *tableIndex // course -> cost, toxicity_prob, withdrawal_prob, months_to_suppression, months_to_high_cd4
	utilityIdx *tableIndex // on_treatment/high_cd4 -> utility
}

// NewHIVTreatmentEvent constructs an HIVTreatmentEvent.
func NewHIVTreatmentEvent(ds DataSource, log Logger) *HIVTreatmentEvent {
	e := &HIVTreatmentEvent{
		log:                     log,
		discountRate:            requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		treatmentCost:           requireFloatConfig(ds, log, "hiv_treatment.treatment_cost", 0),
		treatmentInitiationProb: requireFloatConfig(ds, log, "hiv_treatment.treatment_initiation", 0),
		ltfuProbability:         requireFloatConfig(ds, log, "hiv_treatment.ltfu_probability", 0),
		ineligibleTimeFormer:    requireIntConfig(ds, log, "eligibility.ineligible_time_former_threshold", 0),
		ineligibleTimeLinked:    requireIntConfig(ds, log, "eligibility.ineligible_time_since_linked", 0),
		courseIdx:               loadTableIndex(ds, log, "hiv_treatments"),
		utilityIdx:              loadTableIndex(ds, log, "HIV_table"),
	}
	e.ineligibleBehavior = map[Behavior]bool{}
	behaviors, _ := ds.ConfigString("eligibility.ineligible_drug_use")
	for _, tok := range splitCSVConfig(behaviors) {
		for _, b := range behaviorOrder {
			if b.String() == tok {
				e.ineligibleBehavior[b] = true
			}
		}
	}
	return e
}

// Name implements Event.
func (e *HIVTreatmentEvent) Name() string { return "hiv_treatment" }

func (e *HIVTreatmentEvent) eligible(p *Person) bool {
	if e.ineligibleBehavior[p.Behavior().Behavior] {
		return false
	}
	if p.TimeSinceLastActiveUse() < e.ineligibleTimeFormer {
		return false
	}
	if p.TimeSinceLinkChange(HIVInfectionType) < e.ineligibleTimeLinked {
		return false
	}
	return true
}

// Execute implements Event (spec §4.5.12).
func (e *HIVTreatmentEvent) Execute(p *Person, sampler *Sampler) {
	if p.Linkage(HIVInfectionType).State != Linked {
		return
	}
	tx := p.Treatment(HIVInfectionType)

	if !tx.Initiated && !e.eligible(p) {
		return
	}

	if sampler.DrawBernoulli(e.ltfuProbability) {
		e.endCourse(p)
		return
	}

	p.AddCost(e.treatmentCost, Discount(e.treatmentCost, e.discountRate, p.CurrentTimestep()), CostHIV)

	if !tx.Initiated {
		if !sampler.DrawBernoulli(e.treatmentInitiationProb) {
			return
		}
		p.InitiateTreatment(HIVInfectionType)
	}

	row, ok := e.courseIdx.get("0")
	if !ok {
		return
	}
	p.AddCost(row["cost"], Discount(row["cost"], e.discountRate, p.CurrentTimestep()), CostHIV)
	e.setUtility(p)

	if sampler.DrawBernoulli(row["toxicity_prob"]) {
		p.AddToxicReaction(HIVInfectionType)
	}

	if sampler.DrawBernoulli(row["withdrawal_prob"]) {
		p.AddWithdrawal(HIVInfectionType)
		if p.HIV().Status.IsSuppressed() {
			e.unsuppress(p)
		}
		e.endCourse(p)
		return
	}

	since := p.TimeSinceTreatmentInitiated(HIVInfectionType)
	if since == int(row["months_to_suppression"]) {
		e.suppress(p)
	}
	if since == int(row["months_to_high_cd4"]) {
		e.restoreHighCD4(p)
	}
	e.setUtility(p)
}

func (e *HIVTreatmentEvent) endCourse(p *Person) {
	p.EndTreatment(HIVInfectionType)
	p.Unlink(HIVInfectionType)
	if err := p.SetUtility(1, UtilityHIV); err != nil {
		e.log.Errorf("hiv_treatment: %s", err)
	}
}

func (e *HIVTreatmentEvent) suppress(p *Person) {
	switch p.HIV().Status {
	case LowCD4Unsuppressed:
		p.SetHIV(LowCD4Suppressed)
	case HighCD4Unsuppressed:
		p.SetHIV(HighCD4Suppressed)
	}
}

func (e *HIVTreatmentEvent) unsuppress(p *Person) {
	switch p.HIV().Status {
	case LowCD4Suppressed:
		p.SetHIV(LowCD4Unsuppressed)
	case HighCD4Suppressed:
		p.SetHIV(HighCD4Unsuppressed)
	}
}

func (e *HIVTreatmentEvent) restoreHighCD4(p *Person) {
	switch p.HIV().Status {
	case LowCD4Unsuppressed:
		p.SetHIV(HighCD4Unsuppressed)
	case LowCD4Suppressed:
		p.SetHIV(HighCD4Suppressed)
	}
}

func (e *HIVTreatmentEvent) setUtility(p *Person) {
	row, ok := e.utilityIdx.get(boolStr(p.Treatment(HIVInfectionType).Initiated), boolStr(!p.HIV().IsLowCD4()))
	if !ok {
		return
	}
	if err := p.SetUtility(row["utility"], UtilityHIV); err != nil {
		e.log.Errorf("hiv_treatment: %s", err)
	}
}
