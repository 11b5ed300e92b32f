package hepce

// Link marks the Person linked to care for it, stamping the change time
// and incrementing LinkCount (spec invariant: LinkCount equals the
// number of transitions into Linked).
func (p *Person) Link(it InfectionType) {
	l := p.linkage[it]
	l.State = Linked
	l.TimeChanged = p.currentTimestep
	l.LinkCount++
}

// Unlink marks the Person unlinked from care for it.
func (p *Person) Unlink(it InfectionType) {
	l := p.linkage[it]
	l.State = Unlinked
	l.TimeChanged = p.currentTimestep
}

// TimeSinceLinkChange returns months since the linkage state for it last
// changed, or a large sentinel if it never has.
func (p *Person) TimeSinceLinkChange(it InfectionType) int {
	l := p.linkage[it]
	if l.TimeChanged == NoTimestamp {
		return MaxAgeMonths
	}
	return p.currentTimestep - l.TimeChanged
}

// InitiateTreatment starts (or escalates to salvage) treatment for it
// (spec §4.4, invariant 4: InSalvage implies Initiated). If already in
// salvage, this is a no-op.
func (p *Person) InitiateTreatment(it InfectionType) {
	t := p.treatment[it]
	if t.InSalvage {
		return
	}
	if t.Initiated {
		t.InSalvage = true
		t.SalvageCount++
		return
	}
	t.Initiated = true
	t.Starts++
	t.TimeInitiated = p.currentTimestep
}

// AddWithdrawal records a treatment withdrawal for it.
func (p *Person) AddWithdrawal(it InfectionType) {
	p.treatment[it].Withdrawals++
}

// AddToxicReaction records a toxic reaction during treatment for it.
func (p *Person) AddToxicReaction(it InfectionType) {
	p.treatment[it].ToxicReactions++
}

// AddCompletedTreatment records a completed treatment course for it.
func (p *Person) AddCompletedTreatment(it InfectionType) {
	p.treatment[it].Completions++
}

// AddSVR records a sustained virologic response. Meaningful only for
// HCV, but kept generic since TreatmentDetails is shared per §3.
func (p *Person) AddSVR() {
	p.hcv.SVRs++
}

// EndTreatment clears the initiated/in-salvage flags for it, leaving the
// cumulative counters untouched.
func (p *Person) EndTreatment(it InfectionType) {
	t := p.treatment[it]
	t.Initiated = false
	t.InSalvage = false
}

// TimeSinceTreatmentInitiated returns months since treatment for it was
// last initiated, or a large sentinel if never initiated.
func (p *Person) TimeSinceTreatmentInitiated(it InfectionType) int {
	t := p.treatment[it]
	if !t.Initiated && t.TimeInitiated == 0 && t.Starts == 0 {
		return MaxAgeMonths
	}
	return p.currentTimestep - t.TimeInitiated
}
