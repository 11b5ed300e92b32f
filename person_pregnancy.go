package hepce

// TimeSincePregnancyChanged returns months since the pregnancy state last
// changed, or a large sentinel if it never has.
func (p *Person) TimeSincePregnancyChanged() int {
	if p.pregnancy.TimeChanged == NoTimestamp {
		return MaxAgeMonths
	}
	return p.currentTimestep - p.pregnancy.TimeChanged
}

// SetPregnancyState overwrites the pregnancy state and stamps the change
// time. Ordering (spec invariant 8) is the Pregnancy event's
// responsibility.
func (p *Person) SetPregnancyState(state PregnancyState) {
	p.pregnancy.State = state
	p.pregnancy.TimeChanged = p.currentTimestep
}

// Impregnate transitions a Person from PregnancyNoneState into Pregnant
// (spec invariant 8: entered only from none).
func (p *Person) Impregnate() {
	if p.pregnancy.State != PregnancyNoneState {
		return
	}
	p.pregnancy.Pregnancies++
	p.SetPregnancyState(Pregnant)
}

// Stillbirth ends a pregnancy without a live birth, incrementing the
// stillbirth counter and transitioning to restricted postpartum.
func (p *Person) Stillbirth() {
	p.pregnancy.Stillbirths++
	p.SetPregnancyState(RestrictedPostpartum)
}

// Birth records a live birth of child, incrementing the infant and
// per-outcome exposure/infection/testing counters, and transitions to
// restricted postpartum.
func (p *Person) Birth(child Child) {
	p.pregnancy.Infants++
	p.pregnancy.Children = append(p.pregnancy.Children, child)
	if p.hcv.Status == HCVChronic {
		p.pregnancy.HCVExposedInfants++
	}
	if child.HCVInfected {
		p.pregnancy.HCVInfectedInfants++
	}
	if child.Tested {
		p.pregnancy.HCVTestedInfants++
	}
	p.SetPregnancyState(RestrictedPostpartum)
}

// AddInfantExposure records an HCV-exposed infant independent of a full
// Birth call, for bookkeeping paths that count exposure before the
// delivery outcome is known.
func (p *Person) AddInfantExposure() {
	p.pregnancy.HCVExposedInfants++
}

// EndPostpartum returns the Person to PregnancyNoneState, completing the
// restricted -> year-one -> year-two -> none progression (spec invariant
// 8).
func (p *Person) EndPostpartum() {
	p.SetPregnancyState(PregnancyNoneState)
}
