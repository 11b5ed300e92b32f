package hepce

import "strconv"

// AgingEvent advances a Person by one month and charges the background
// cost/utility for their current demographic cell (spec §4.5.1).
type AgingEvent struct {
	log           Logger
	discountRate  float64
	backgroundIdx *tableIndex
}

// NewAgingEvent constructs an AgingEvent, preloading the joined
// background_costs x background_utilities table and the discounting
// rate so Execute performs no I/O.
func NewAgingEvent(ds DataSource, log Logger) *AgingEvent {
	return &AgingEvent{
		log:           log,
		discountRate:  requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		backgroundIdx: loadTableIndex(ds, log, "background_costs_utilities"),
	}
}

// Name implements Event.
func (e *AgingEvent) Name() string { return "aging" }

// Execute implements Event (spec §4.5.1).
func (e *AgingEvent) Execute(p *Person, _ *Sampler) {
	p.Grow()

	row, ok := e.backgroundIdx.get(strconv.Itoa(p.AgeYears()), p.Sex().String(), p.Behavior().Behavior.String())
	if !ok {
		e.log.Warnf("aging: %s", DataTableRowMissing(strconv.Itoa(p.AgeYears())+"/"+p.Sex().String()+"/"+p.Behavior().Behavior.String()))
		return
	}

	cost := row["cost"]
	p.AddCost(cost, Discount(cost, e.discountRate, p.CurrentTimestep()), CostBackground)
	if err := p.SetUtility(row["utility"], UtilityBackground); err != nil {
		e.log.Errorf("aging: %s", err)
	}
}
