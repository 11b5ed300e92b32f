package hepce

import (
	"fmt"
	"strconv"
	"strings"
)

// OutputOptions selects which optional sub-event blocks participate in
// the population CSV schema, since several sub-events (pregnancy, hiv,
// hcc, overdose, moud) are configuration-dependent (spec §6).
type OutputOptions struct {
	Pregnancy bool
	HCC       bool
	Overdose  bool
	HIV       bool
	MOUD      bool
}

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func f64(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func i(v int) string {
	return strconv.Itoa(v)
}

// PopulationHeaders returns the fixed CSV header list for the given
// OutputOptions, in the stable order spec §6 names: sex, age, alive
// flag, boomer flag, death reason, behavior, time_last_active_drug_use,
// HCV block, HIV block, HCC block, overdose block, MOUD block,
// pregnancy block, staging block, HCV linkage, HIV linkage, HCV
// screening, HIV screening, HCV treatment, HIV treatment, current
// utilities, lifetime utilities, life span and discounted life span,
// cost totals.
func PopulationHeaders(o OutputOptions) []string {
	h := []string{
		"sex", "age", "alive", "boomer", "death_reason",
		"behavior", "time_last_active_drug_use",
	}
	h = append(h, "hcv_status", "fibrosis_state", "genotype_three", "seropositive",
		"time_hcv_changed", "time_fibrosis_changed",
		"times_infected", "times_acute_cleared", "svrs")

	if o.HIV {
		h = append(h, "hiv_status", "time_hiv_changed", "low_cd4_months")
	}
	if o.HCC {
		h = append(h, "hcc_state", "hcc_diagnosed")
	}
	if o.Overdose {
		h = append(h, "overdose_active", "overdose_count")
	}
	if o.MOUD {
		h = append(h, "moud_state", "moud_time_started",
			"moud_concurrent_months", "moud_total_months")
	}
	if o.Pregnancy {
		h = append(h, "pregnancy_state", "pregnancies", "infants", "stillbirths",
			"hcv_exposed_infants", "hcv_infected_infants", "hcv_tested_infants")
	}

	h = append(h, "measured_fibrosis", "second_test_given", "time_last_staging")

	h = append(h, "hcv_link_state", "hcv_link_count")
	if o.HIV {
		h = append(h, "hiv_link_state", "hiv_link_count")
	}

	h = append(h, "hcv_ab_tests", "hcv_rna_tests", "hcv_ab_positive", "hcv_identified",
		"hcv_times_identified", "hcv_false_negatives", "hcv_identifications_cleared")
	if o.HIV {
		h = append(h, "hiv_ab_tests", "hiv_rna_tests", "hiv_ab_positive", "hiv_identified",
			"hiv_times_identified", "hiv_false_negatives", "hiv_identifications_cleared")
	}

	h = append(h, "hcv_initiated", "hcv_starts", "hcv_withdrawals",
		"hcv_toxic_reactions", "hcv_completions", "hcv_salvage_count", "hcv_in_salvage")
	if o.HIV {
		h = append(h, "hiv_initiated", "hiv_starts", "hiv_withdrawals",
			"hiv_toxic_reactions", "hiv_completions", "hiv_salvage_count", "hiv_in_salvage")
	}

	for _, cat := range AllUtilityCategories() {
		h = append(h, "utility_"+cat.String())
	}
	h = append(h, "min_util", "mult_util", "discount_min_util", "discount_mult_util")

	h = append(h, "life_span", "discounted_life_span")

	for _, cat := range AllCostCategories() {
		h = append(h, "cost_"+cat.String()+"_nominal", "cost_"+cat.String()+"_discounted")
	}
	h = append(h, "cost_total_nominal", "cost_total_discounted")

	return h
}

// MakePopulationRow serializes the Person to a comma-separated record
// matching PopulationHeaders(o) (spec §4.4, §6).
func (p *Person) MakePopulationRow(o OutputOptions) string {
	var f []string
	f = append(f, p.sex.String(), i(p.age), boolStr(p.alive), boolStr(p.boomer),
		p.deathReason.String(), p.behavior.Behavior.String(), i(p.behavior.TimeLastActive))

	f = append(f, p.hcv.Status.String(), p.hcv.Fibrosis.String(),
		boolStr(p.hcv.GenotypeThree), boolStr(p.hcv.Seropositive),
		i(p.hcv.TimeChanged), i(p.hcv.TimeFibrosisChanged),
		i(p.hcv.TimesInfected), i(p.hcv.TimesAcuteCleared), i(p.hcv.SVRs))

	if o.HIV {
		f = append(f, p.hiv.Status.String(), i(p.hiv.TimeChanged), i(p.hiv.LowCD4Months))
	}
	if o.HCC {
		f = append(f, p.hcc.State.String(), boolStr(p.hcc.Diagnosed))
	}
	if o.Overdose {
		f = append(f, boolStr(p.overdose.Active), i(p.overdose.Count))
	}
	if o.MOUD {
		f = append(f, p.moud.State.String(), i(p.moud.TimeStarted),
			i(p.moud.ConcurrentMonths), i(p.moud.TotalMonths))
	}
	if o.Pregnancy {
		f = append(f, p.pregnancy.State.String(), i(p.pregnancy.Pregnancies),
			i(p.pregnancy.Infants), i(p.pregnancy.Stillbirths),
			i(p.pregnancy.HCVExposedInfants), i(p.pregnancy.HCVInfectedInfants),
			i(p.pregnancy.HCVTestedInfants))
	}

	f = append(f, p.staging.Measured.String(), boolStr(p.staging.SecondTestGiven),
		i(p.staging.TimeLastStaging))

	hcvLink := p.linkage[HCVInfectionType]
	f = append(f, hcvLink.State.String(), i(hcvLink.LinkCount))
	if o.HIV {
		hivLink := p.linkage[HIVInfectionType]
		f = append(f, hivLink.State.String(), i(hivLink.LinkCount))
	}

	hcvScreen := p.screening[HCVInfectionType]
	f = append(f, i(hcvScreen.AbTests), i(hcvScreen.RNATests),
		boolStr(hcvScreen.AbPositive), boolStr(hcvScreen.Identified),
		i(hcvScreen.TimesIdentified), i(hcvScreen.FalseNegatives),
		i(hcvScreen.IdentificationsCleared))
	if o.HIV {
		hivScreen := p.screening[HIVInfectionType]
		f = append(f, i(hivScreen.AbTests), i(hivScreen.RNATests),
			boolStr(hivScreen.AbPositive), boolStr(hivScreen.Identified),
			i(hivScreen.TimesIdentified), i(hivScreen.FalseNegatives),
			i(hivScreen.IdentificationsCleared))
	}

	hcvTx := p.treatment[HCVInfectionType]
	f = append(f, boolStr(hcvTx.Initiated), i(hcvTx.Starts), i(hcvTx.Withdrawals),
		i(hcvTx.ToxicReactions), i(hcvTx.Completions), i(hcvTx.SalvageCount),
		boolStr(hcvTx.InSalvage))
	if o.HIV {
		hivTx := p.treatment[HIVInfectionType]
		f = append(f, boolStr(hivTx.Initiated), i(hivTx.Starts), i(hivTx.Withdrawals),
			i(hivTx.ToxicReactions), i(hivTx.Completions), i(hivTx.SalvageCount),
			boolStr(hivTx.InSalvage))
	}

	for _, cat := range AllUtilityCategories() {
		f = append(f, f64(p.utilities.current[cat]))
	}
	total := p.utilities.GetTotalUtility()
	f = append(f, f64(total.MinUtil), f64(total.MultUtil),
		f64(total.DiscountMinUtil), f64(total.DiscountMultUtil))

	f = append(f, i(p.lifeSpan), f64(p.discountedLifeSpan))

	costs := p.costs.GetCosts()
	var totalNominal, totalDiscounted float64
	for _, cat := range AllCostCategories() {
		pair := costs[cat]
		f = append(f, f64(pair.Nominal), f64(pair.Discounted))
		totalNominal += pair.Nominal
		totalDiscounted += pair.Discounted
	}
	f = append(f, f64(totalNominal), f64(totalDiscounted))

	return strings.Join(f, ",")
}

// CSVEscape is a defensive helper for any free-text field that might
// need quoting; population rows here are all enum/numeric so it is
// unused by MakePopulationRow but kept available for callers emitting
// additional free-text columns (e.g. a run label).
func CSVEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
