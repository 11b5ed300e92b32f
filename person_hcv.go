package hepce

// InfectHCV infects the Person with acute HCV (spec §4.4, invariant 5).
// If already infected (hcv != none), this is a no-op -- reinfection
// requires prior clearance.
func (p *Person) InfectHCV() {
	if p.hcv.Status != HCVNone {
		return
	}
	p.hcv.Status = HCVAcute
	p.hcv.TimeChanged = p.currentTimestep
	p.hcv.Seropositive = true
	p.hcv.TimesInfected++
	if p.hcv.Fibrosis == FibrosisNone {
		p.hcv.Fibrosis = F0
	}
}

// ClearHCV clears the Person's HCV infection. If isAcute, the acute
// clearance counter is incremented (spec §4.4).
func (p *Person) ClearHCV(isAcute bool) {
	p.hcv.Status = HCVNone
	p.hcv.TimeChanged = p.currentTimestep
	if isAcute {
		p.hcv.TimesAcuteCleared++
	}
}

// ProgressToChronic moves an acute infection to chronic. Called by the
// HCVInfection event once six months have elapsed since the acute
// infection began (spec §4.5.8).
func (p *Person) ProgressToChronic() {
	p.hcv.Status = HCVChronic
	p.hcv.TimeChanged = p.currentTimestep
}

// SetGenotypeThree marks the Person's HCV infection as genotype 3.
func (p *Person) SetGenotypeThree(v bool) {
	p.hcv.GenotypeThree = v
}

// SetFibrosis overwrites the true fibrosis state and stamps the change
// time. Monotonicity (spec invariant 2) is the caller's responsibility
// -- the only caller is the FibrosisProgression event, which only ever
// advances the state by one step.
func (p *Person) SetFibrosis(state FibrosisState) {
	p.hcv.Fibrosis = state
	p.hcv.TimeFibrosisChanged = p.currentTimestep
}

// TimeSinceHCVChanged returns the number of months since hcv.TimeChanged,
// or a large sentinel if it has never changed.
func (p *Person) TimeSinceHCVChanged() int {
	if p.hcv.TimeChanged == NoTimestamp {
		return MaxAgeMonths
	}
	return p.currentTimestep - p.hcv.TimeChanged
}

// TimeSinceLastStaging returns the number of months since the last
// fibrosis staging, or a large sentinel if staging has never occurred.
func (p *Person) TimeSinceLastStaging() int {
	if p.staging.TimeLastStaging == NoTimestamp {
		return MaxAgeMonths
	}
	return p.currentTimestep - p.staging.TimeLastStaging
}

// DiagnoseFibrosis records a new measured fibrosis state from a staging
// test and stamps the staging time.
func (p *Person) DiagnoseFibrosis(state MeasuredFibrosisState) {
	p.staging.Measured = state
	p.staging.TimeLastStaging = p.currentTimestep
}

// SetSecondTestGiven marks that a second staging test was administered
// this staging round.
func (p *Person) SetSecondTestGiven(v bool) {
	p.staging.SecondTestGiven = v
}

// SetHCC overwrites the HCC progression state.
func (p *Person) SetHCC(state HCCState) {
	p.hcc.State = state
}

// DiagnoseHCC marks the Person's HCC as clinically diagnosed.
func (p *Person) DiagnoseHCC() {
	p.hcc.Diagnosed = true
}

// TimeSinceLastActiveUse returns the number of months since the Person
// last had an active-use timestep, or a large sentinel if never active.
func (p *Person) TimeSinceLastActiveUse() int {
	if p.behavior.TimeLastActive == NoTimestamp {
		return MaxAgeMonths
	}
	return p.currentTimestep - p.behavior.TimeLastActive
}

// SetBehavior transitions the Person's drug-use behavior. Transitions
// into Never are refused (Never is absorbing-from-above, spec §3); any
// other value stamps TimeLastActive if the new state is active.
func (p *Person) SetBehavior(b Behavior) {
	if b == Never {
		return
	}
	p.behavior.Behavior = b
	if b.IsActive() {
		p.behavior.TimeLastActive = p.currentTimestep
	}
}

// ToggleOverdose flips the overdose flag. Onset (false->true) increments
// the cumulative overdose count (spec §4.5.13).
func (p *Person) ToggleOverdose() {
	if !p.overdose.Active {
		p.overdose.Count++
	}
	p.overdose.Active = !p.overdose.Active
}

// TransitionMOUD advances the cyclic MOUD state machine: none -> current
// -> post -> none. Called by exactly one event per run: the standalone
// MOUD event when configured, otherwise BehaviorChanges (spec §9 open
// question) -- never both, since BehaviorChanges only loads its own MOUD
// transition table when no standalone MOUD event is present.
func (p *Person) TransitionMOUD() {
	switch p.moud.State {
	case MOUDNone:
		p.moud.State = MOUDCurrent
		p.moud.TimeStarted = p.currentTimestep
	case MOUDCurrent:
		p.moud.State = MOUDPost
	case MOUDPost:
		p.moud.State = MOUDNone
	}
	p.moud.ConcurrentMonths = 0
}
