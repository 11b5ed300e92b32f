package hepce

// VoluntaryRelinkingEvent draws voluntary return-to-care for Persons who
// have been unlinked for no more than a configurable window (spec
// §4.5.16).
type VoluntaryRelinkingEvent struct {
	log Logger
	it  InfectionType

	probability float64
	duration    int
}

// NewHCVVoluntaryRelinkingEvent constructs the HCV variant.
func NewHCVVoluntaryRelinkingEvent(ds DataSource, log Logger) *VoluntaryRelinkingEvent {
	return newVoluntaryRelinkingEvent(ds, log, HCVInfectionType, "linking")
}

// NewHIVVoluntaryRelinkingEvent constructs the HIV variant.
func NewHIVVoluntaryRelinkingEvent(ds DataSource, log Logger) *VoluntaryRelinkingEvent {
	return newVoluntaryRelinkingEvent(ds, log, HIVInfectionType, "hiv_linking")
}

func newVoluntaryRelinkingEvent(ds DataSource, log Logger, it InfectionType, configPrefix string) *VoluntaryRelinkingEvent {
	return &VoluntaryRelinkingEvent{
		log:         log,
		it:          it,
		probability: requireFloatConfig(ds, log, configPrefix+".voluntary_relinkage_probability", 0),
		duration:    requireIntConfig(ds, log, configPrefix+".voluntary_relink_duration", 0),
	}
}

// Name implements Event.
func (e *VoluntaryRelinkingEvent) Name() string {
	if e.it == HCVInfectionType {
		return "voluntary_relinking"
	}
	return "hiv_voluntary_relinking"
}

// Execute implements Event (spec §4.5.16).
func (e *VoluntaryRelinkingEvent) Execute(p *Person, sampler *Sampler) {
	if p.Linkage(e.it).State != Unlinked {
		return
	}
	if p.TimeSinceLinkChange(e.it) > e.duration {
		return
	}
	if sampler.DrawBernoulli(e.probability) {
		p.Link(e.it)
	}
}
