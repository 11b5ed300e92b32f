package hepce

// measuredOrder gives MeasuredFibrosisState a total order for the
// "maximum of the two tests" combining method.
var measuredOrder = []MeasuredFibrosisState{MeasuredNone, MeasuredF01, MeasuredF23, MeasuredF4, MeasuredDecomp}

func measuredRank(m MeasuredFibrosisState) int {
	for i, v := range measuredOrder {
		if v == m {
			return i
		}
	}
	return -1
}

// FibrosisStagingEvent periodically administers up to two staging tests
// and reconciles their results into the Person's measured fibrosis state
// (spec §4.5.6).
type FibrosisStagingEvent struct {
	log          Logger
	discountRate float64

	period int

	testOneIdx      *tableIndex // true_fib -> probability vector over MeasuredFibrosisState
	testOneCost     float64
	testTwoEnabled  bool
	testTwoIdx      *tableIndex
	testTwoCost     float64
	testTwoEligible map[MeasuredFibrosisState]bool

	combineMethod string // "latest" or "maximum"
}

// NewFibrosisStagingEvent constructs a FibrosisStagingEvent.
func NewFibrosisStagingEvent(ds DataSource, log Logger) *FibrosisStagingEvent {
	e := &FibrosisStagingEvent{
		log:            log,
		discountRate:   requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		period:         requireIntConfig(ds, log, "fibrosis_staging.period", 12),
		testOneIdx:     loadTableIndex(ds, log, "fibrosis_staging_test_one"),
		testOneCost:    requireFloatConfig(ds, log, "fibrosis_staging.test_one_cost", 0),
		testTwoEnabled: requireBoolConfig(ds, log, "fibrosis_staging.test_two", false),
		testTwoCost:    requireFloatConfig(ds, log, "fibrosis_staging.test_two_cost", 0),
		combineMethod:  requireStringConfig(ds, log, "fibrosis_staging.multitest_result_method", "latest"),
	}
	if e.testTwoEnabled {
		e.testTwoIdx = loadTableIndex(ds, log, "fibrosis_staging_test_two")
	}
	e.testTwoEligible = map[MeasuredFibrosisState]bool{}
	eligible, _ := ds.ConfigString("fibrosis_staging.test_two_eligible_stages")
	for _, tok := range splitCSVConfig(eligible) {
		for _, m := range measuredOrder {
			if m.String() == tok {
				e.testTwoEligible[m] = true
			}
		}
	}
	return e
}

// Name implements Event.
func (e *FibrosisStagingEvent) Name() string { return "fibrosis_staging" }

// Execute implements Event (spec §4.5.6).
func (e *FibrosisStagingEvent) Execute(p *Person, sampler *Sampler) {
	if p.HCV().Fibrosis == FibrosisNone {
		return
	}
	hasStaged := p.Staging().TimeLastStaging != NoTimestamp
	if hasStaged && p.TimeSinceLastStaging() < e.period {
		return
	}

	resultOne, ok := e.drawMeasured(e.testOneIdx, p.HCV().Fibrosis.String(), sampler)
	if !ok {
		return
	}
	p.DiagnoseFibrosis(resultOne)
	p.AddCost(e.testOneCost, Discount(e.testOneCost, e.discountRate, p.CurrentTimestep()), CostStaging)

	final := resultOne
	secondGiven := false
	if e.testTwoEnabled && e.testTwoEligible[resultOne] {
		resultTwo, ok := e.drawMeasured(e.testTwoIdx, p.HCV().Fibrosis.String(), sampler)
		if ok {
			secondGiven = true
			p.AddCost(e.testTwoCost, Discount(e.testTwoCost, e.discountRate, p.CurrentTimestep()), CostStaging)
			switch e.combineMethod {
			case "latest":
				final = resultTwo
			case "maximum":
				if measuredRank(resultTwo) > measuredRank(resultOne) {
					final = resultTwo
				}
			default:
				e.log.Errorf("fibrosis_staging: unrecognized multitest_result_method %q", e.combineMethod)
				p.SetSecondTestGiven(secondGiven)
				return
			}
		}
	}
	p.SetSecondTestGiven(secondGiven)
	p.DiagnoseFibrosis(final)
}

func (e *FibrosisStagingEvent) drawMeasured(idx *tableIndex, trueFib string, sampler *Sampler) (MeasuredFibrosisState, bool) {
	row, ok := idx.get(trueFib)
	if !ok {
		return MeasuredNone, false
	}
	weights := make([]float64, len(measuredOrder))
	for i, m := range measuredOrder {
		weights[i] = row[m.String()]
	}
	i, err := sampler.GetDecision(weights)
	if err != nil {
		e.log.Errorf("fibrosis_staging: %s", err)
		return MeasuredNone, false
	}
	if i >= len(measuredOrder) {
		return MeasuredNone, false
	}
	return measuredOrder[i], true
}
