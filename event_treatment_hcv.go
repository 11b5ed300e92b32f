package hepce

// HCVTreatmentEvent runs the HCV direct-acting-antiviral treatment
// cascade: eligibility, initiation, course cost/toxicity/withdrawal, and
// completion with SVR or escalation to salvage (spec §4.5.11).
type HCVTreatmentEvent struct {
	log          Logger
	discountRate float64

	treatmentCost     float64
	retreatmentCost   float64
	treatmentUtility  float64
	toxCost           float64
	toxUtility        float64
	treatmentInitiationProb float64
	ltfuProbability   float64
	allowRetreatment  bool

	eligibleFibrosis        map[FibrosisState]bool
	ineligibleBehavior      map[Behavior]bool
	ineligiblePregnancy     map[PregnancyState]bool
	ineligibleTimeFormer    int
	ineligibleTimeLinked    int

	coursesIdx *tableIndex // retreatment/genotype_three/cirrhotic -> duration, cost, svr_prob, withdrawal, toxicity_prob

	pregnancyAware bool
}

// NewHCVTreatmentEvent constructs an HCVTreatmentEvent.
func NewHCVTreatmentEvent(ds DataSource, log Logger, pregnancyAware bool) *HCVTreatmentEvent {
	e := &HCVTreatmentEvent{
		log:                     log,
		discountRate:            requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		treatmentCost:           requireFloatConfig(ds, log, "treatment.treatment_cost", 0),
		retreatmentCost:         requireFloatConfig(ds, log, "treatment.retreatment_cost", 0),
		treatmentUtility:        requireFloatConfig(ds, log, "treatment.treatment_utility", 1),
		toxCost:                 requireFloatConfig(ds, log, "treatment.tox_cost", 0),
		toxUtility:              requireFloatConfig(ds, log, "treatment.tox_utility", 1),
		treatmentInitiationProb: requireFloatConfig(ds, log, "treatment.treatment_initiation", 0),
		ltfuProbability:         requireFloatConfig(ds, log, "treatment.ltfu_probability", 0),
		allowRetreatment:        requireBoolConfig(ds, log, "treatment.allow_retreatment", true),
		ineligibleTimeFormer:    requireIntConfig(ds, log, "eligibility.ineligible_time_former_threshold", 0),
		ineligibleTimeLinked:    requireIntConfig(ds, log, "eligibility.ineligible_time_since_linked", 0),
		coursesIdx:              loadTableIndex(ds, log, "treatments"),
		pregnancyAware:          pregnancyAware,
	}

	e.eligibleFibrosis = map[FibrosisState]bool{}
	stages, _ := ds.ConfigString("eligibility.eligible_fibrosis_stages")
	if stages == "" {
		for _, f := range fibrosisOrder {
			e.eligibleFibrosis[f] = true
		}
	} else {
		for _, tok := range splitCSVConfig(stages) {
			for _, f := range fibrosisOrder {
				if f.String() == tok {
					e.eligibleFibrosis[f] = true
				}
			}
		}
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

	e.ineligiblePregnancy = map[PregnancyState]bool{}
	states, _ := ds.ConfigString("eligibility.ineligible_pregnancy_states")
	for _, tok := range splitCSVConfig(states) {
		for _, s := range []PregnancyState{PregnancyNotApplicable, PregnancyNoneState, Pregnant,
			RestrictedPostpartum, YearOnePostpartum, YearTwoPostpartum} {
			if s.String() == tok {
				e.ineligiblePregnancy[s] = true
			}
		}
	}

	return e
}

// Name implements Event.
func (e *HCVTreatmentEvent) Name() string { return "hcv_treatment" }

func (e *HCVTreatmentEvent) eligible(p *Person) bool {
	if !e.eligibleFibrosis[p.HCV().Fibrosis] {
		return false
	}
	if e.ineligibleBehavior[p.Behavior().Behavior] {
		return false
	}
	if e.pregnancyAware && e.ineligiblePregnancy[p.Pregnancy().State] {
		return false
	}
	if p.TimeSinceLastActiveUse() < e.ineligibleTimeFormer {
		return false
	}
	if p.TimeSinceLinkChange(HCVInfectionType) < e.ineligibleTimeLinked {
		return false
	}
	return true
}

// Execute implements Event (spec §4.5.11).
func (e *HCVTreatmentEvent) Execute(p *Person, sampler *Sampler) {
	if p.Linkage(HCVInfectionType).State != Linked {
		return
	}
	tx := p.Treatment(HCVInfectionType)

	if !tx.Initiated {
		if !e.eligible(p) {
			return
		}
		if tx.Completions > 0 || tx.Withdrawals > 0 {
			if !e.allowRetreatment {
				return
			}
		}
	}

	if sampler.DrawBernoulli(e.ltfuProbability) {
		p.EndTreatment(HCVInfectionType)
		p.Unlink(HCVInfectionType)
		e.resetUtility(p)
		return
	}

	inRetreatment := tx.Completions > 0 || tx.Withdrawals > 0
	visitCost := e.treatmentCost
	if inRetreatment {
		visitCost = e.retreatmentCost
	}
	p.AddCost(visitCost, Discount(visitCost, e.discountRate, p.CurrentTimestep()), CostTreatment)

	if !tx.Initiated {
		if !sampler.DrawBernoulli(e.treatmentInitiationProb) {
			return
		}
		p.InitiateTreatment(HCVInfectionType)
		tx = p.Treatment(HCVInfectionType)
	}

	row, ok := e.courseRow(inRetreatment, p.HCV().GenotypeThree, p.HCV().Fibrosis == Decomp)
	if !ok {
		return
	}
	p.AddCost(row["cost"], Discount(row["cost"], e.discountRate, p.CurrentTimestep()), CostTreatment)
	if err := p.SetUtility(e.treatmentUtility, UtilityTreatment); err != nil {
		e.log.Errorf("hcv_treatment: %s", err)
	}

	if sampler.DrawBernoulli(row["toxicity_prob"]) {
		p.AddToxicReaction(HCVInfectionType)
		p.AddCost(e.toxCost, Discount(e.toxCost, e.discountRate, p.CurrentTimestep()), CostTreatment)
		if err := p.SetUtility(e.toxUtility, UtilityTreatment); err != nil {
			e.log.Errorf("hcv_treatment: %s", err)
		}
	}

	if sampler.DrawBernoulli(row["withdrawal"]) {
		p.AddWithdrawal(HCVInfectionType)
		p.EndTreatment(HCVInfectionType)
		p.Unlink(HCVInfectionType)
		e.resetUtility(p)
		return
	}

	if p.TimeSinceTreatmentInitiated(HCVInfectionType) == int(row["duration"]) {
		p.AddCompletedTreatment(HCVInfectionType)
		if sampler.DrawBernoulli(row["svr_prob_if_completed"]) {
			p.AddSVR()
			p.ClearHCV(false)
			p.ClearDiagnosis(HCVInfectionType)
			p.EndTreatment(HCVInfectionType)
			p.Unlink(HCVInfectionType)
			e.resetUtility(p)
			return
		}
		if !p.Treatment(HCVInfectionType).InSalvage {
			p.InitiateTreatment(HCVInfectionType)
			return
		}
		p.EndTreatment(HCVInfectionType)
		p.Unlink(HCVInfectionType)
		e.resetUtility(p)
	}
}

func (e *HCVTreatmentEvent) resetUtility(p *Person) {
	if err := p.SetUtility(1, UtilityTreatment); err != nil {
		e.log.Errorf("hcv_treatment: %s", err)
	}
}

func (e *HCVTreatmentEvent) courseRow(inRetreatment, genotypeThree, cirrhotic bool) (map[string]float64, bool) {
	return e.coursesIdx.get(boolStr(inRetreatment), boolStr(genotypeThree), boolStr(cirrhotic))
}
