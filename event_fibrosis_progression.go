package hepce

// fibrosisOrder is the strict, non-decreasing progression path (spec
// invariant 2). Decomp has no successor.
var fibrosisOrder = []FibrosisState{F0, F1, F2, F3, F4, Decomp}

func nextFibrosisState(s FibrosisState) FibrosisState {
	for i, f := range fibrosisOrder {
		if f == s && i+1 < len(fibrosisOrder) {
			return fibrosisOrder[i+1]
		}
	}
	return s
}

// FibrosisProgressionEvent advances a Person's true fibrosis state by at
// most one step per timestep and charges the corresponding liver
// cost/utility (spec §4.5.5).
type FibrosisProgressionEvent struct {
	log          Logger
	discountRate float64

	progressionIdx *tableIndex // true_fib -> probability of advancing
	impactsIdx     *tableIndex // infected/fibrosis_state -> cost, utility

	costOnlyIfIdentified bool
}

// NewFibrosisProgressionEvent constructs a FibrosisProgressionEvent.
func NewFibrosisProgressionEvent(ds DataSource, log Logger) *FibrosisProgressionEvent {
	return &FibrosisProgressionEvent{
		log:                  log,
		discountRate:         requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		progressionIdx:       loadTableIndex(ds, log, "fibrosis_progression"),
		impactsIdx:           loadTableIndex(ds, log, "hcv_impacts"),
		costOnlyIfIdentified: requireBoolConfig(ds, log, "fibrosis.add_cost_only_if_identified", false),
	}
}

// Name implements Event.
func (e *FibrosisProgressionEvent) Name() string { return "fibrosis_progression" }

// Execute implements Event (spec §4.5.5).
func (e *FibrosisProgressionEvent) Execute(p *Person, sampler *Sampler) {
	if p.HCV().Status == HCVNone {
		return
	}

	row, ok := e.progressionIdx.get(p.HCV().Fibrosis.String())
	if ok && sampler.DrawBernoulli(row["probability"]) {
		p.SetFibrosis(nextFibrosisState(p.HCV().Fibrosis))
	}

	infected := boolStr(p.HCV().Status != HCVNone)
	impactRow, ok := e.impactsIdx.get(infected, p.HCV().Fibrosis.String())
	if !ok {
		return
	}
	if !e.costOnlyIfIdentified || p.Screening(HCVInfectionType).Identified {
		cost := impactRow["cost"]
		p.AddCost(cost, Discount(cost, e.discountRate, p.CurrentTimestep()), CostLiver)
	}
	if err := p.SetUtility(impactRow["utility"], UtilityLiver); err != nil {
		e.log.Errorf("fibrosis_progression: %s", err)
	}
}
