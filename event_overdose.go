package hepce

// OverdoseEvent draws a non-fatal overdose for active drug users,
// stratified by behavior and MOUD state (spec §4.5.13). Fatal overdose
// is composed separately by the Death event.
type OverdoseEvent struct {
	log Logger

	overdoseIdx *tableIndex // behavior/moud_state -> overdose_probability
}

// NewOverdoseEvent constructs an OverdoseEvent.
func NewOverdoseEvent(ds DataSource, log Logger) *OverdoseEvent {
	return &OverdoseEvent{
		log:         log,
		overdoseIdx: loadTableIndex(ds, log, "overdoses"),
	}
}

// Name implements Event.
func (e *OverdoseEvent) Name() string { return "overdose" }

// Execute implements Event (spec §4.5.13).
func (e *OverdoseEvent) Execute(p *Person, sampler *Sampler) {
	if !p.Behavior().Behavior.IsActive() {
		return
	}
	row, ok := e.overdoseIdx.get(p.Behavior().Behavior.String(), p.MOUD().State.String())
	if !ok {
		return
	}
	if sampler.DrawBernoulli(row["overdose_probability"]) {
		p.ToggleOverdose()
	}
}
