package hepce

// HCCProgressionEvent advances hepatocellular carcinoma state for
// Persons with advanced fibrosis, at most one step per timestep, and may
// flag a clinical diagnosis once in the late stage (spec §4.5.7).
type HCCProgressionEvent struct {
	log Logger

	progressionIdx *tableIndex // true_fib -> (to_early, to_late) probabilities
	diagnosisIdx   *tableIndex // true_fib -> diagnosis probability while late
}

// NewHCCProgressionEvent constructs an HCCProgressionEvent.
func NewHCCProgressionEvent(ds DataSource, log Logger) *HCCProgressionEvent {
	return &HCCProgressionEvent{
		log:            log,
		progressionIdx: loadTableIndex(ds, log, "hcc_progression"),
		diagnosisIdx:   loadTableIndex(ds, log, "hcc_diagnosis"),
	}
}

// Name implements Event.
func (e *HCCProgressionEvent) Name() string { return "hcc_progression" }

// Execute implements Event (spec §4.5.7).
func (e *HCCProgressionEvent) Execute(p *Person, sampler *Sampler) {
	fib := p.HCV().Fibrosis
	if fib != F3 && fib != F4 && fib != Decomp {
		return
	}

	switch p.HCC().State {
	case HCCNone:
		row, ok := e.progressionIdx.get(fib.String())
		if !ok {
			return
		}
		idx, err := sampler.GetDecision([]float64{row["to_early"]})
		if err != nil {
			e.log.Errorf("hcc_progression: %s", err)
			return
		}
		if idx == 0 {
			p.SetHCC(HCCEarly)
		}
	case HCCEarly:
		row, ok := e.progressionIdx.get(fib.String())
		if !ok {
			return
		}
		idx, err := sampler.GetDecision([]float64{row["to_late"]})
		if err != nil {
			e.log.Errorf("hcc_progression: %s", err)
			return
		}
		if idx == 0 {
			p.SetHCC(HCCLate)
		}
	case HCCLate:
		if p.HCC().Diagnosed {
			return
		}
		row, ok := e.diagnosisIdx.get(fib.String())
		if !ok {
			return
		}
		if sampler.DrawBernoulli(row["diagnosis_probability"]) {
			p.DiagnoseHCC()
		}
	}
}
