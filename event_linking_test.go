package hepce

import "testing"

func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestLinkingScaleMultiplier(t *testing.T) {
	e := &LinkingEvent{log: &fakeLogger{}, scalingType: "multiplier", recentScreenMultiplier: 0.5}
	got := e.scale(0.03, 5)
	if !approxEqual(got, 0.01511, 1e-5) {
		t.Fatalf("multiplier scaling: got %v, want ~0.01511", got)
	}
}

func TestLinkingScaleExponential(t *testing.T) {
	e := &LinkingEvent{log: &fakeLogger{}, scalingType: "exponential", scalingCoefficient: 1.0}
	got := e.scale(0.03, 5)
	if !approxEqual(got, 7.55e-5, 1e-7) {
		t.Fatalf("exponential scaling: got %v, want ~7.55e-5", got)
	}
}

func TestLinkingScaleSigmoidal(t *testing.T) {
	e := &LinkingEvent{log: &fakeLogger{}, scalingType: "sigmoidal", scalingCoefficient: 3.0}
	got := e.scale(0.03, 5)
	if !approxEqual(got, 0.02860, 1e-5) {
		t.Fatalf("sigmoidal scaling: got %v, want ~0.02860", got)
	}
}

func TestLinkingScaleUnrecognizedReturnsInput(t *testing.T) {
	log := &fakeLogger{}
	e := &LinkingEvent{log: log, name: "hcv_linking", scalingType: "bogus"}
	got := e.scale(0.03, 5)
	if got != 0.03 {
		t.Fatalf("unrecognized scaling_type should return input unchanged, got %v", got)
	}
	if len(log.errors) != 1 {
		t.Fatalf("expected one logged error, got %d", len(log.errors))
	}
}

func TestLinkingExecuteSkipsUnidentified(t *testing.T) {
	ds := newFakeDataSource()
	log := &fakeLogger{}
	ev := NewHCVLinkingEvent(ds, log, false)
	p := NewPerson(Male, 30*12, false)
	p.InfectHCV()
	s := NewSampler(1)
	ev.Execute(p, s)
	if p.Linkage(HCVInfectionType).State == Linked {
		t.Fatal("unidentified person should never be linked")
	}
}

func TestLinkingExecuteFalsePositiveChargesCostAndDoesNotLink(t *testing.T) {
	ds := newFakeDataSource()
	ds.floats["linking.false_positive_test_cost"] = 50
	log := &fakeLogger{}
	ev := NewHCVLinkingEvent(ds, log, false)
	p := NewPerson(Male, 30*12, false)
	p.Diagnose(HCVInfectionType) // identified but not actually infected
	s := NewSampler(1)
	ev.Execute(p, s)
	if p.Linkage(HCVInfectionType).State == Linked {
		t.Fatal("false positive should not link")
	}
	nominal, _ := p.Costs().GetTotals()
	if nominal != 50 {
		t.Fatalf("expected false-positive cost of 50 charged, got %v", nominal)
	}
}

func TestLinkingExecuteLinksOnSuccess(t *testing.T) {
	ds := newFakeDataSource()
	ds.tables["hcv_linking_base"] = []TableRow{
		{Key: []string{"30", "male", "never", "-1"}, Values: map[string]float64{"background_p": 1, "intervention_p": 1}},
	}
	log := &fakeLogger{}
	ev := NewHCVLinkingEvent(ds, log, false)
	p := NewPerson(Male, 30*12, false)
	p.InfectHCV()
	p.Diagnose(HCVInfectionType)
	s := NewSampler(1)
	ev.Execute(p, s)
	if p.Linkage(HCVInfectionType).State != Linked {
		t.Fatal("expected person to link with probability 1")
	}
}
