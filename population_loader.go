package hepce

// LoadPopulation constructs the initial population for a run, selecting
// between a fresh cohort and a restartable snapshot per
// simulation.use_population_table (spec §4.7, C8).
//
// Enum-valued table columns (sex, behavior, fibrosis_state, ...) are
// stored as their ordinal value, matching the int-backed enums of §3 --
// the same convention the DataSource's SQL-backed implementation uses to
// keep every tabular column a float64.
func LoadPopulation(ds DataSource, log Logger) ([]*Person, error) {
	if requireBoolConfig(ds, log, "simulation.use_population_table", false) {
		return loadFromSnapshot(ds, log)
	}
	return loadFromCohort(ds, log)
}

func loadFromCohort(ds DataSource, log Logger) ([]*Person, error) {
	size := requireIntConfig(ds, log, "simulation.population_size", 0)
	rows, ok := ds.LoadTable("init_cohort")
	if !ok {
		return nil, DataTableMissing("init_cohort")
	}
	if size > 0 && size < len(rows) {
		rows = rows[:size]
	}

	people := make([]*Person, 0, len(rows))
	for _, r := range rows {
		v := r.Values
		sex := Sex(int(v["sex"]))
		p := NewPerson(sex, int(v["age_months"]), v["boomer"] != 0)

		behavior := Behavior(int(v["behavior"]))
		p.behavior.Behavior = behavior
		p.behavior.TimeLastActive = int(v["time_last_active_drug_use"])

		p.hcv.Status = HCV(int(v["hcv_status"]))
		p.hcv.Fibrosis = FibrosisState(int(v["fibrosis_state"]))
		p.hcv.Seropositive = v["seropositive"] != 0
		p.hcv.GenotypeThree = v["genotype_three"] != 0

		if v["identified_as_hcv_positive"] != 0 {
			p.Diagnose(HCVInfectionType)
		}
		p.linkage[HCVInfectionType].State = LinkageState(int(v["link_state"]))
		p.pregnancy.State = PregnancyState(int(v["pregnancy_state"]))

		people = append(people, p)
	}
	return people, nil
}

func loadFromSnapshot(ds DataSource, log Logger) ([]*Person, error) {
	rows, ok := ds.LoadTable("population")
	if !ok {
		return nil, DataTableMissing("population")
	}

	people := make([]*Person, 0, len(rows))
	for _, r := range rows {
		v := r.Values
		sex := Sex(int(v["sex"]))
		p := NewPerson(sex, int(v["age"]), v["boomer"] != 0)

		p.alive = v["alive"] != 0
		p.deathReason = DeathReason(int(v["death_reason"]))
		p.behavior.Behavior = Behavior(int(v["behavior"]))
		p.behavior.TimeLastActive = int(v["time_last_active_drug_use"])

		p.hcv.Status = HCV(int(v["hcv_status"]))
		p.hcv.Fibrosis = FibrosisState(int(v["fibrosis_state"]))
		p.hcv.GenotypeThree = v["genotype_three"] != 0
		p.hcv.Seropositive = v["seropositive"] != 0
		p.hcv.TimeChanged = int(v["time_hcv_changed"])
		p.hcv.TimeFibrosisChanged = int(v["time_fibrosis_changed"])
		p.hcv.TimesInfected = int(v["times_infected"])
		p.hcv.TimesAcuteCleared = int(v["times_acute_cleared"])
		p.hcv.SVRs = int(v["svrs"])

		if hiv, ok := v["hiv_status"]; ok {
			p.hiv.Status = HIV(int(hiv))
			p.hiv.TimeChanged = int(v["time_hiv_changed"])
			p.hiv.LowCD4Months = int(v["low_cd4_months"])
		}
		if hcc, ok := v["hcc_state"]; ok {
			p.hcc.State = HCCState(int(hcc))
			p.hcc.Diagnosed = v["hcc_diagnosed"] != 0
		}
		if od, ok := v["overdose_active"]; ok {
			p.overdose.Active = od != 0
			p.overdose.Count = int(v["overdose_count"])
		}
		if moud, ok := v["moud_state"]; ok {
			p.moud.State = MOUDState(int(moud))
			p.moud.TimeStarted = int(v["moud_time_started"])
			p.moud.ConcurrentMonths = int(v["moud_concurrent_months"])
			p.moud.TotalMonths = int(v["moud_total_months"])
		}
		if preg, ok := v["pregnancy_state"]; ok {
			p.pregnancy.State = PregnancyState(int(preg))
			p.pregnancy.Pregnancies = int(v["pregnancies"])
			p.pregnancy.Infants = int(v["infants"])
			p.pregnancy.Stillbirths = int(v["stillbirths"])
			p.pregnancy.HCVExposedInfants = int(v["hcv_exposed_infants"])
			p.pregnancy.HCVInfectedInfants = int(v["hcv_infected_infants"])
			p.pregnancy.HCVTestedInfants = int(v["hcv_tested_infants"])
		}

		p.staging.Measured = MeasuredFibrosisState(int(v["measured_fibrosis"]))
		p.staging.SecondTestGiven = v["second_test_given"] != 0
		p.staging.TimeLastStaging = int(v["time_last_staging"])

		restoreLinkage(p.linkage[HCVInfectionType], v, "hcv_link")
		restoreLinkage(p.linkage[HIVInfectionType], v, "hiv_link")

		p.lifeSpan = int(v["life_span"])
		p.discountedLifeSpan = v["discounted_life_span"]

		people = append(people, p)
	}
	return people, nil
}

func restoreLinkage(l *LinkageDetails, v map[string]float64, prefix string) {
	if state, ok := v[prefix+"_state"]; ok {
		l.State = LinkageState(int(state))
		l.LinkCount = int(v[prefix+"_count"])
	}
}
