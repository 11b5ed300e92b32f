package hepce

import "testing"

func TestLoadFromCohortBuildsPeople(t *testing.T) {
	ds := newFakeDataSource()
	ds.bools["simulation.use_population_table"] = false
	ds.tables["init_cohort"] = []TableRow{
		{Values: map[string]float64{
			"sex": 1, "age_months": 360, "boomer": 1,
			"behavior": float64(Injection), "time_last_active_drug_use": -1,
			"hcv_status": float64(HCVChronic), "fibrosis_state": float64(F2),
			"seropositive": 1, "genotype_three": 0,
			"identified_as_hcv_positive": 1,
			"link_state":                 float64(Linked),
			"pregnancy_state":            float64(PregnancyNoneState),
		}},
	}
	log := &fakeLogger{}

	people, err := LoadPopulation(ds, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(people) != 1 {
		t.Fatalf("expected 1 person, got %d", len(people))
	}
	p := people[0]
	if p.Sex() != Female {
		t.Fatalf("expected Female (ordinal 1), got %v", p.Sex())
	}
	if p.Age() != 360 || !p.Boomer() {
		t.Fatalf("unexpected demographics: age=%d boomer=%v", p.Age(), p.Boomer())
	}
	if p.Behavior().Behavior != Injection {
		t.Fatalf("expected Injection, got %v", p.Behavior().Behavior)
	}
	if p.HCV().Status != HCVChronic || p.HCV().Fibrosis != F2 {
		t.Fatalf("unexpected hcv state: %+v", p.HCV())
	}
	if !p.Screening(HCVInfectionType).Identified {
		t.Fatal("expected person to be pre-identified")
	}
	if p.Linkage(HCVInfectionType).State != Linked {
		t.Fatalf("expected Linked, got %v", p.Linkage(HCVInfectionType).State)
	}
}

func TestLoadFromCohortTruncatesToPopulationSize(t *testing.T) {
	ds := newFakeDataSource()
	ds.ints["simulation.population_size"] = 1
	ds.tables["init_cohort"] = []TableRow{
		{Values: map[string]float64{"sex": 0, "age_months": 300, "boomer": 0}},
		{Values: map[string]float64{"sex": 1, "age_months": 240, "boomer": 0}},
	}
	log := &fakeLogger{}

	people, err := LoadPopulation(ds, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(people) != 1 {
		t.Fatalf("expected truncation to 1 person, got %d", len(people))
	}
}

func TestLoadFromCohortMissingTableErrors(t *testing.T) {
	ds := newFakeDataSource()
	log := &fakeLogger{}
	_, err := LoadPopulation(ds, log)
	if err == nil {
		t.Fatal("expected DataTableMissing error when init_cohort is absent")
	}
}

func TestLoadFromSnapshotRestoresFullState(t *testing.T) {
	ds := newFakeDataSource()
	ds.bools["simulation.use_population_table"] = true
	ds.tables["population"] = []TableRow{
		{Values: map[string]float64{
			"sex": 0, "age": 420, "boomer": 0,
			"alive": 1, "death_reason": float64(NotDead),
			"behavior": float64(NonInjection), "time_last_active_drug_use": 5,
			"hcv_status": float64(HCVAcute), "fibrosis_state": float64(F1),
			"genotype_three": 0, "seropositive": 1,
			"time_hcv_changed": 3, "time_fibrosis_changed": 2,
			"times_infected": 1, "times_acute_cleared": 0, "svrs": 0,
			"measured_fibrosis": float64(MeasuredNone), "second_test_given": 0,
			"time_last_staging":     -1,
			"life_span":             10,
			"discounted_life_span":  9.5,
			"hcv_link_state":        float64(Unlinked),
			"hcv_link_count":        2,
		}},
	}
	log := &fakeLogger{}

	people, err := LoadPopulation(ds, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(people) != 1 {
		t.Fatalf("expected 1 person, got %d", len(people))
	}
	p := people[0]
	if !p.Alive() {
		t.Fatal("expected alive person")
	}
	if p.HCV().Status != HCVAcute || p.HCV().TimesInfected != 1 {
		t.Fatalf("unexpected hcv state: %+v", p.HCV())
	}
	if p.LifeSpan() != 10 || p.DiscountedLifeSpan() != 9.5 {
		t.Fatalf("unexpected life span state: %d %v", p.LifeSpan(), p.DiscountedLifeSpan())
	}
	if p.Linkage(HCVInfectionType).State != Unlinked || p.Linkage(HCVInfectionType).LinkCount != 2 {
		t.Fatalf("unexpected hcv linkage: %+v", p.Linkage(HCVInfectionType))
	}
	// optional sub-event columns absent from this row should leave HIV
	// etc. at NewPerson defaults, not zero-valued garbage.
	if p.HIV().Status != HIVNone {
		t.Fatalf("expected default HIVNone when hiv_status column absent, got %v", p.HIV().Status)
	}
}
