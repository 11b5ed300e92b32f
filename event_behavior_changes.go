package hepce

import "strconv"

// BehaviorChangesEvent draws a new drug-use behavior category from a
// demographic/MOUD-indexed transition table and charges the resulting
// behavior cost/utility. When no standalone MOUD event is configured for
// the run, it also keeps the MOUD state machine in sync itself (spec
// §4.5.2, §4.5.14, §9); when MOUD is its own event, that event is the
// sole owner of MOUD transitions.
type BehaviorChangesEvent struct {
	log          Logger
	discountRate float64

	transitionsIdx *tableIndex // keyed age_years/sex/moud_state/behavior -> 5 probabilities
	impactsIdx     *tableIndex // keyed sex/behavior -> cost, utility

	// moudIdx mirrors the MOUD event's own transition table so this
	// event can advance MOUDDetails in runs where the MOUD event itself
	// is not configured (spec: "the two events share state"). Nil when a
	// standalone MOUD event is configured for the run, or when
	// moud_transitions is missing or has no rows.
	moudIdx *tableIndex
}

// NewBehaviorChangesEvent constructs a BehaviorChangesEvent, preloading
// its transition and impact tables. moudEventPresent reports whether a
// standalone MOUD event is also configured for this run (spec §9): when
// it is, MOUD is that event's job alone, and this event's own MOUD
// transition table is left unloaded so Execute never double-draws it.
func NewBehaviorChangesEvent(ds DataSource, log Logger, moudEventPresent bool) *BehaviorChangesEvent {
	e := &BehaviorChangesEvent{
		log:            log,
		discountRate:   requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		transitionsIdx: loadTableIndex(ds, log, "behavior_transitions"),
		impactsIdx:     loadTableIndex(ds, log, "behavior_impacts"),
	}
	if moudEventPresent {
		return e
	}
	if rows, ok := ds.LoadTable("moud_transitions"); ok && len(rows) > 0 {
		e.moudIdx = newTableIndex(rows)
	}
	return e
}

// Name implements Event.
func (e *BehaviorChangesEvent) Name() string { return "behavior_changes" }

var behaviorOrder = []Behavior{Never, FormerNonInjection, FormerInjection, NonInjection, Injection}

// Execute implements Event (spec §4.5.2).
func (e *BehaviorChangesEvent) Execute(p *Person, sampler *Sampler) {
	ageYears := strconv.Itoa(p.AgeYears())
	sex := p.Sex().String()
	moud := p.MOUD().State.String()
	behavior := p.Behavior().Behavior.String()

	row, ok := e.transitionsIdx.get(ageYears, sex, moud, behavior)
	if !ok {
		return
	}
	weights := make([]float64, len(behaviorOrder))
	for i, b := range behaviorOrder {
		weights[i] = row[b.String()]
	}
	idx, err := sampler.GetDecision(weights)
	if err != nil {
		e.log.Errorf("behavior_changes: %s", err)
		return
	}
	if idx < len(behaviorOrder) {
		p.SetBehavior(behaviorOrder[idx])
	}

	impactRow, ok := e.impactsIdx.get(sex, p.Behavior().Behavior.String())
	if ok {
		cost := impactRow["cost"]
		p.AddCost(cost, Discount(cost, e.discountRate, p.CurrentTimestep()), CostBehavior)
		if err := p.SetUtility(impactRow["utility"], UtilityBehavior); err != nil {
			e.log.Errorf("behavior_changes: %s", err)
		}
	}

	if e.moudIdx != nil {
		e.syncMOUD(p, sampler)
	}
}

func (e *BehaviorChangesEvent) syncMOUD(p *Person, sampler *Sampler) {
	row, ok := e.moudIdx.get(p.MOUD().State.String(), strconv.Itoa(p.AgeYears()), p.Sex().String())
	if !ok {
		return
	}
	if sampler.DrawBernoulli(row["transition_probability"]) {
		p.TransitionMOUD()
	}
}
