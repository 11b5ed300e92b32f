package hepce

// TimeSinceLastScreening returns months since the last screen for it, or
// a large sentinel if never screened.
func (p *Person) TimeSinceLastScreening(it InfectionType) int {
	s := p.screening[it]
	if s.TimeLastScreen == NoTimestamp {
		return MaxAgeMonths
	}
	return p.currentTimestep - s.TimeLastScreen
}

// Screen records that a screening test of the given modality was
// administered under the given screening policy (spec §4.5.9).
func (p *Person) Screen(it InfectionType, test ScreeningTest, screenType ScreeningType) {
	s := p.screening[it]
	s.TimeLastScreen = p.currentTimestep
	switch test {
	case AntibodyTest:
		s.AbTests++
	case RNATest:
		s.RNATests++
	}
	_ = screenType
}

// SetAbPositive records the antibody-test result for it.
func (p *Person) SetAbPositive(it InfectionType, v bool) {
	p.screening[it].AbPositive = v
}

// Diagnose flags the Person as identified (known-positive) for it, via
// the screening type currently in effect (spec invariant 3, §4.4).
func (p *Person) Diagnose(it InfectionType) {
	s := p.screening[it]
	if s.Identified {
		return
	}
	s.Identified = true
	s.TimeIdentified = p.currentTimestep
	s.TimesIdentified++
}

// ClearDiagnosis un-flags a Person as identified for it, used when a
// diagnosed infection is subsequently cured (spec §4.5.11 HCV SVR path).
// Retained per spec §9 for output-schema compatibility even though no
// event reads IdentificationsCleared back.
func (p *Person) ClearDiagnosis(it InfectionType) {
	s := p.screening[it]
	if !s.Identified {
		return
	}
	s.Identified = false
	s.IdentificationsCleared++
}

// FalsePositive reverses a positive screening identification for a
// Person who is truly uninfected for it, so the net diagnose/false-positive
// balance in TimesIdentified (spec invariant 3) returns to its value
// before that identification. A Person not yet identified is recorded as
// identified first, so the call nets to zero for them.
func (p *Person) FalsePositive(it InfectionType) {
	s := p.screening[it]
	wasIdentified := s.Identified
	if !wasIdentified {
		s.Identified = true
		s.TimeIdentified = p.currentTimestep
		s.TimesIdentified++
	}
	s.Identified = false
	s.TimesIdentified--
}

// AddFalseNegative records a screening test that missed a true
// infection. Retained per spec §9 for output-schema compatibility; no
// event body consumes this counter.
func (p *Person) AddFalseNegative(it InfectionType) {
	p.screening[it].FalseNegatives++
}

// SetIdentifiedBy records the screening type that led to the Person's
// current identification for it.
func (p *Person) SetIdentifiedBy(it InfectionType, t ScreeningType) {
	p.screening[it].IdentifiedBy = t
}
