package hepce

import "testing"

func TestNewPersonDefaults(t *testing.T) {
	p := NewPerson(Male, 360, false)
	if !p.Alive() {
		t.Fatal("new person should be alive")
	}
	if p.HCV().Status != HCVNone {
		t.Fatalf("expected HCVNone, got %v", p.HCV().Status)
	}
	if p.Behavior().Behavior != Never {
		t.Fatalf("expected Never behavior, got %v", p.Behavior().Behavior)
	}
	if p.Pregnancy().State != PregnancyNotApplicable {
		t.Fatalf("male should be PregnancyNotApplicable, got %v", p.Pregnancy().State)
	}
}

func TestGrowAdvancesClock(t *testing.T) {
	p := NewPerson(Female, 180, false)
	p.Grow()
	if p.CurrentTimestep() != 1 || p.Age() != 181 || p.LifeSpan() != 1 {
		t.Fatalf("unexpected state after Grow: ts=%d age=%d life=%d", p.CurrentTimestep(), p.Age(), p.LifeSpan())
	}
}

func TestDieIsTerminal(t *testing.T) {
	p := NewPerson(Male, 240, false)
	p.Die(DeathAge)
	if p.Alive() {
		t.Fatal("person should be dead")
	}
	if p.DeathReason() != DeathAge {
		t.Fatalf("expected DeathAge, got %v", p.DeathReason())
	}
}

func TestInfectHCVRequiresPriorClearance(t *testing.T) {
	p := NewPerson(Male, 300, false)
	p.InfectHCV()
	if p.HCV().Status != HCVAcute {
		t.Fatalf("expected HCVAcute, got %v", p.HCV().Status)
	}
	if p.HCV().Fibrosis != F0 {
		t.Fatalf("expected fibrosis to initialize to F0, got %v", p.HCV().Fibrosis)
	}

	// reinfection attempt while still infected is a no-op
	p.hcv.TimesInfected = 0
	p.InfectHCV()
	if p.HCV().TimesInfected != 0 {
		t.Fatal("reinfection while still infected should be a no-op")
	}

	p.ClearHCV(true)
	if p.HCV().Status != HCVNone {
		t.Fatalf("expected HCVNone after clearance, got %v", p.HCV().Status)
	}
	if p.HCV().TimesAcuteCleared != 1 {
		t.Fatalf("expected TimesAcuteCleared=1, got %d", p.HCV().TimesAcuteCleared)
	}

	p.InfectHCV()
	if p.HCV().Status != HCVAcute {
		t.Fatal("reinfection after clearance should succeed")
	}
	if p.HCV().TimesInfected != 1 {
		t.Fatalf("expected TimesInfected=1 after first real infection, got %d", p.HCV().TimesInfected)
	}
}

func TestSetBehaviorRefusesNever(t *testing.T) {
	p := NewPerson(Male, 300, false)
	p.SetBehavior(Injection)
	if p.Behavior().Behavior != Injection {
		t.Fatalf("expected Injection, got %v", p.Behavior().Behavior)
	}
	p.SetBehavior(Never)
	if p.Behavior().Behavior != Injection {
		t.Fatal("transition into Never should be refused once active")
	}
}

func TestTransitionMOUDCycles(t *testing.T) {
	p := NewPerson(Male, 300, false)
	if p.MOUD().State != MOUDNone {
		t.Fatalf("expected MOUDNone, got %v", p.MOUD().State)
	}
	p.TransitionMOUD()
	if p.MOUD().State != MOUDCurrent {
		t.Fatalf("expected MOUDCurrent, got %v", p.MOUD().State)
	}
	p.TransitionMOUD()
	if p.MOUD().State != MOUDPost {
		t.Fatalf("expected MOUDPost, got %v", p.MOUD().State)
	}
	p.TransitionMOUD()
	if p.MOUD().State != MOUDNone {
		t.Fatalf("expected cycle back to MOUDNone, got %v", p.MOUD().State)
	}
}

func TestInitiateTreatmentEscalatesToSalvage(t *testing.T) {
	p := NewPerson(Male, 300, false)
	p.InitiateTreatment(HCVInfectionType)
	if !p.Treatment(HCVInfectionType).Initiated {
		t.Fatal("expected treatment initiated")
	}
	if p.Treatment(HCVInfectionType).InSalvage {
		t.Fatal("first initiation should not be salvage")
	}
	p.InitiateTreatment(HCVInfectionType)
	if !p.Treatment(HCVInfectionType).InSalvage {
		t.Fatal("second initiation while already initiated should escalate to salvage")
	}
	if p.Treatment(HCVInfectionType).SalvageCount != 1 {
		t.Fatalf("expected SalvageCount=1, got %d", p.Treatment(HCVInfectionType).SalvageCount)
	}

	// once in salvage, a further call is a no-op
	p.InitiateTreatment(HCVInfectionType)
	if p.Treatment(HCVInfectionType).SalvageCount != 1 {
		t.Fatal("re-initiating while in salvage should be a no-op")
	}
}

func TestLinkAndUnlink(t *testing.T) {
	p := NewPerson(Male, 300, false)
	p.Link(HCVInfectionType)
	if p.Linkage(HCVInfectionType).State != Linked {
		t.Fatal("expected Linked state")
	}
	if p.Linkage(HCVInfectionType).LinkCount != 1 {
		t.Fatalf("expected LinkCount=1, got %d", p.Linkage(HCVInfectionType).LinkCount)
	}
	p.Unlink(HCVInfectionType)
	if p.Linkage(HCVInfectionType).State != Unlinked {
		t.Fatal("expected Unlinked state")
	}
}

func TestImpregnateAndBirth(t *testing.T) {
	p := NewPerson(Female, 20*12, false)
	p.Impregnate()
	if p.Pregnancy().State != Pregnant {
		t.Fatalf("expected Pregnant, got %v", p.Pregnancy().State)
	}
	if p.Pregnancy().Pregnancies != 1 {
		t.Fatalf("expected Pregnancies=1, got %d", p.Pregnancy().Pregnancies)
	}

	// cannot become pregnant again while already pregnant
	p.Impregnate()
	if p.Pregnancy().Pregnancies != 1 {
		t.Fatal("impregnate while already pregnant should be a no-op")
	}

	p.Birth(Child{HCVInfected: true, Tested: true})
	if p.Pregnancy().State != RestrictedPostpartum {
		t.Fatalf("expected RestrictedPostpartum after birth, got %v", p.Pregnancy().State)
	}
	if p.Pregnancy().Infants != 1 || p.Pregnancy().HCVInfectedInfants != 1 || p.Pregnancy().HCVTestedInfants != 1 {
		t.Fatalf("unexpected pregnancy counters: %+v", p.Pregnancy())
	}
}

func TestDiagnoseIsIdempotent(t *testing.T) {
	p := NewPerson(Male, 300, false)
	p.Diagnose(HCVInfectionType)
	if !p.Screening(HCVInfectionType).Identified {
		t.Fatal("expected Identified=true")
	}
	if p.Screening(HCVInfectionType).TimesIdentified != 1 {
		t.Fatalf("expected TimesIdentified=1, got %d", p.Screening(HCVInfectionType).TimesIdentified)
	}
	p.Diagnose(HCVInfectionType)
	if p.Screening(HCVInfectionType).TimesIdentified != 1 {
		t.Fatal("repeated Diagnose calls should be idempotent")
	}
}
