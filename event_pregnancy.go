package hepce

import "strconv"

// pregnancyMinAgeMonths / pregnancyMaxAgeMonths bound the reproductive
// age window the Pregnancy event applies to (spec §4.5.15).
const (
	pregnancyMinAgeMonths = 15 * 12
	pregnancyMaxAgeMonths = 45 * 12
	gestationFullTerm     = 9
	restrictedPostpartumMonths = 3
	postpartumYearMonths       = 12
)

// PregnancyEvent runs the pregnancy/postpartum state machine and
// delivery outcomes for female Persons of reproductive age (spec
// §4.5.15).
type PregnancyEvent struct {
	log Logger

	pregnancyIdx *tableIndex // age_years[/gestation] -> pregnancy_probability, miscarriage

	multipleDeliveryProb     float64
	infantTestedProb         float64
	verticalTransmissionProb float64
}

// NewPregnancyEvent constructs a PregnancyEvent.
func NewPregnancyEvent(ds DataSource, log Logger) *PregnancyEvent {
	return &PregnancyEvent{
		log:                      log,
		pregnancyIdx:             loadTableIndex(ds, log, "pregnancy"),
		multipleDeliveryProb:     requireFloatConfig(ds, log, "pregnancy.multiple_delivery_probability", 0),
		infantTestedProb:         requireFloatConfig(ds, log, "pregnancy.infant_hcv_tested_probability", 0),
		verticalTransmissionProb: requireFloatConfig(ds, log, "pregnancy.vertical_hcv_transition_probability", 0),
	}
}

// Name implements Event.
func (e *PregnancyEvent) Name() string { return "pregnancy" }

// Execute implements Event (spec §4.5.15).
func (e *PregnancyEvent) Execute(p *Person, sampler *Sampler) {
	if p.Sex() != Female || p.Age() < pregnancyMinAgeMonths || p.Age() >= pregnancyMaxAgeMonths {
		return
	}
	state := p.Pregnancy().State
	elapsed := p.TimeSincePregnancyChanged()

	if state == RestrictedPostpartum && elapsed < restrictedPostpartumMonths {
		return
	}
	if state == YearTwoPostpartum && elapsed >= postpartumYearMonths {
		p.EndPostpartum()
		return
	}
	if state == YearOnePostpartum && elapsed >= postpartumYearMonths {
		p.SetPregnancyState(YearTwoPostpartum)
		return
	}
	if state == RestrictedPostpartum && elapsed >= restrictedPostpartumMonths {
		p.SetPregnancyState(YearOnePostpartum)
		return
	}

	if state == Pregnant {
		gestation := elapsed
		row, _ := e.pregnancyIdx.get(strconv.Itoa(p.AgeYears()), strconv.Itoa(gestation))
		if gestation < gestationFullTerm {
			if sampler.DrawBernoulli(row["miscarriage"]) {
				p.Stillbirth()
			}
			return
		}
		if sampler.DrawBernoulli(row["miscarriage"]) {
			p.Stillbirth()
			return
		}
		e.deliver(p, sampler)
		return
	}

	if state == PregnancyNoneState {
		row, ok := e.pregnancyIdx.get(strconv.Itoa(p.AgeYears()))
		if ok && sampler.DrawBernoulli(row["pregnancy_probability"]) {
			p.Impregnate()
		}
	}
}

func (e *PregnancyEvent) deliver(p *Person, sampler *Sampler) {
	infants := 1
	if sampler.DrawBernoulli(e.multipleDeliveryProb) {
		infants = 2
	}
	chronic := p.HCV().Status == HCVChronic
	for i := 0; i < infants; i++ {
		var child Child
		if chronic {
			child.HCVInfected = sampler.DrawBernoulli(e.verticalTransmissionProb)
			child.Tested = sampler.DrawBernoulli(e.infantTestedProb)
		}
		p.Birth(child)
	}
}
