package hepce

import "strconv"

// MOUDEvent advances MOUDDetails independently of BehaviorChanges' own
// hook, via a (current_state, age, sex) transition table, and sets the
// MOUD utility from a matching table (spec §4.5.14).
type MOUDEvent struct {
	log Logger

	transitionsIdx *tableIndex // current_state/age_years/sex -> transition_probability
	utilityIdx     *tableIndex // current_state -> utility
}

// NewMOUDEvent constructs a MOUDEvent.
func NewMOUDEvent(ds DataSource, log Logger) *MOUDEvent {
	return &MOUDEvent{
		log:            log,
		transitionsIdx: loadTableIndex(ds, log, "moud_transitions"),
		utilityIdx:     loadTableIndex(ds, log, "moud_utilities"),
	}
}

// Name implements Event.
func (e *MOUDEvent) Name() string { return "moud" }

// Execute implements Event (spec §4.5.14).
func (e *MOUDEvent) Execute(p *Person, sampler *Sampler) {
	row, ok := e.transitionsIdx.get(p.MOUD().State.String(), strconv.Itoa(p.AgeYears()), p.Sex().String())
	if ok && sampler.DrawBernoulli(row["transition_probability"]) {
		p.TransitionMOUD()
	}

	utilRow, ok := e.utilityIdx.get(p.MOUD().State.String())
	if !ok {
		return
	}
	if err := p.SetUtility(utilRow["utility"], UtilityMOUD); err != nil {
		e.log.Errorf("moud: %s", err)
	}
}
