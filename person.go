package hepce

import "github.com/segmentio/ksuid"

// MaxAgeMonths is the age (in months) at which Grow causes a Person to
// age out of the simulation via the Death event (spec §4.5.4).
const MaxAgeMonths = 1200

// NoTimestamp is the sentinel used for "has never happened" timestamp
// fields (e.g. BehaviorDetails.TimeLastActive before any active use).
const NoTimestamp = -1

// BehaviorDetails tracks a Person's drug-use behavior compartment.
type BehaviorDetails struct {
	Behavior       Behavior
	TimeLastActive int
}

// HCVDetails tracks a Person's hepatitis C infection and fibrosis state.
type HCVDetails struct {
	Status              HCV
	Fibrosis            FibrosisState
	GenotypeThree        bool
	Seropositive         bool
	TimeChanged          int
	TimeFibrosisChanged  int
	TimesInfected        int
	TimesAcuteCleared    int
	SVRs                 int
}

// HIVDetails tracks a Person's HIV infection and suppression state.
type HIVDetails struct {
	Status       HIV
	TimeChanged  int
	LowCD4Months int
}

// HCCDetails tracks hepatocellular carcinoma progression, separate from
// fibrosis.
type HCCDetails struct {
	State      HCCState
	Diagnosed  bool
}

// OverdoseDetails tracks the overdose state machine.
type OverdoseDetails struct {
	Active bool
	Count  int
}

// MOUDDetails tracks medication-for-opioid-use-disorder state.
type MOUDDetails struct {
	State            MOUDState
	TimeStarted      int
	ConcurrentMonths int
	TotalMonths      int
}

// StagingDetails tracks the most recent fibrosis-staging test result.
type StagingDetails struct {
	Measured        MeasuredFibrosisState
	SecondTestGiven bool
	TimeLastStaging int
}

// LinkageDetails tracks per-infection linkage-to-care state.
type LinkageDetails struct {
	State       LinkageState
	TimeChanged int
	LinkCount   int
}

// ScreeningDetails tracks per-infection screening cascade state.
type ScreeningDetails struct {
	TimeLastScreen          int
	AbTests                 int
	RNATests                int
	AbPositive              bool
	Identified              bool
	TimeIdentified          int
	TimesIdentified         int
	IdentifiedBy            ScreeningType
	FalseNegatives          int
	IdentificationsCleared  int
}

// TreatmentDetails tracks per-infection treatment course state.
type TreatmentDetails struct {
	Initiated      bool
	TimeInitiated  int
	Starts         int
	Withdrawals    int
	ToxicReactions int
	Completions    int
	SalvageCount   int
	InSalvage      bool
}

// Child is a record of one infant born to a Person during the pregnancy
// event.
type Child struct {
	HCVInfected bool
	Tested      bool
}

// PregnancyDetails tracks pregnancy/postpartum progression and the
// cumulative outcome counters of spec §3.
type PregnancyDetails struct {
	State              PregnancyState
	TimeChanged        int
	Pregnancies        int
	Infants            int
	Stillbirths        int
	HCVExposedInfants  int
	HCVInfectedInfants int
	HCVTestedInfants   int
	Children           []Child
}

// Person is the simulated entity: every clinical, behavioral, screening,
// linkage, treatment, and pregnancy substate named in spec §3, plus its
// own cost/utility accumulators. Person only exposes semantically
// meaningful mutators -- invariants (§3) are enforced here, not by
// callers poking at fields directly.
type Person struct {
	id ksuid.KSUID

	currentTimestep    int
	age                int
	lifeSpan           int
	discountedLifeSpan float64
	alive              bool
	deathReason        DeathReason

	sex    Sex
	boomer bool

	behavior  BehaviorDetails
	hcv       HCVDetails
	hiv       HIVDetails
	hcc       HCCDetails
	overdose  OverdoseDetails
	moud      MOUDDetails
	pregnancy PregnancyDetails
	staging   StagingDetails

	linkage   map[InfectionType]*LinkageDetails
	screening map[InfectionType]*ScreeningDetails
	treatment map[InfectionType]*TreatmentDetails

	costs     *CostAccumulator
	utilities *UtilityAccumulator
}

// NewPerson creates a Person at timestep 0 with the given fixed
// demographics and every other substate at its zero/default value
// (behavior=Never, hcv=none, alive=true, ...).
func NewPerson(sex Sex, ageMonths int, boomer bool) *Person {
	p := &Person{
		id:       ksuid.New(),
		age:      ageMonths,
		alive:    true,
		sex:      sex,
		boomer:   boomer,
		behavior: BehaviorDetails{Behavior: Never, TimeLastActive: NoTimestamp},
		hcv: HCVDetails{
			Status:              HCVNone,
			Fibrosis:            FibrosisNone,
			TimeChanged:         NoTimestamp,
			TimeFibrosisChanged: NoTimestamp,
		},
		hiv:      HIVDetails{Status: HIVNone, TimeChanged: NoTimestamp},
		hcc:      HCCDetails{State: HCCNone},
		moud:     MOUDDetails{State: MOUDNone, TimeStarted: NoTimestamp},
		pregnancy: PregnancyDetails{
			State:       pregnancyDefaultState(sex, ageMonths),
			TimeChanged: NoTimestamp,
		},
		staging: StagingDetails{Measured: MeasuredNone, TimeLastStaging: NoTimestamp},
		linkage: map[InfectionType]*LinkageDetails{
			HCVInfectionType: {State: LinkageNeverLinked, TimeChanged: NoTimestamp},
			HIVInfectionType: {State: LinkageNeverLinked, TimeChanged: NoTimestamp},
		},
		screening: map[InfectionType]*ScreeningDetails{
			HCVInfectionType: {TimeLastScreen: NoTimestamp},
			HIVInfectionType: {TimeLastScreen: NoTimestamp},
		},
		treatment: map[InfectionType]*TreatmentDetails{
			HCVInfectionType: {},
			HIVInfectionType: {},
		},
		costs:     NewCostAccumulator(),
		utilities: NewUtilityAccumulator(),
	}
	return p
}

// pregnancyDefaultState reports NotApplicable for males and Eligible-age
// bounds are handled by the Pregnancy event itself; at birth every
// female of reproductive age simply starts at "none".
func pregnancyDefaultState(sex Sex, ageMonths int) PregnancyState {
	if sex != Female {
		return PregnancyNotApplicable
	}
	return PregnancyNoneState
}

// ID returns the Person's identity, a fresh KSUID minted by NewPerson;
// the Engine derives the Person's sampler stream from it. It is not
// logged and not part of the CSV population row, so a Person restored
// from a snapshot gets a new ID.
func (p *Person) ID() ksuid.KSUID { return p.id }

// Alive reports whether the Person is still being executed by the
// Engine (spec invariant 7).
func (p *Person) Alive() bool { return p.alive }

// DeathReason returns the recorded reason of death, or NotDead.
func (p *Person) DeathReason() DeathReason { return p.deathReason }

// Age returns the Person's current age in months.
func (p *Person) Age() int { return p.age }

// AgeYears returns the Person's current age in whole years, the grain
// most tabular inputs key on.
func (p *Person) AgeYears() int { return p.age / 12 }

// LifeSpan returns the Person's life span in months.
func (p *Person) LifeSpan() int { return p.lifeSpan }

// DiscountedLifeSpan returns the Person's accumulated discounted life
// span in months.
func (p *Person) DiscountedLifeSpan() float64 { return p.discountedLifeSpan }

// CurrentTimestep returns the Person's local timestep counter.
func (p *Person) CurrentTimestep() int { return p.currentTimestep }

// Sex returns the Person's fixed sex.
func (p *Person) Sex() Sex { return p.sex }

// Boomer reports the Person's birth-cohort screening classification.
func (p *Person) Boomer() bool { return p.boomer }

// Behavior returns a copy of the current behavior substate.
func (p *Person) Behavior() BehaviorDetails { return p.behavior }

// HCV returns a copy of the current HCV substate.
func (p *Person) HCV() HCVDetails { return p.hcv }

// HIV returns a copy of the current HIV substate.
func (p *Person) HIV() HIVDetails { return p.hiv }

// HCC returns a copy of the current HCC substate.
func (p *Person) HCC() HCCDetails { return p.hcc }

// Overdose returns a copy of the current overdose substate.
func (p *Person) Overdose() OverdoseDetails { return p.overdose }

// MOUD returns a copy of the current MOUD substate.
func (p *Person) MOUD() MOUDDetails { return p.moud }

// Pregnancy returns a copy of the current pregnancy substate.
func (p *Person) Pregnancy() PregnancyDetails { return p.pregnancy }

// Staging returns a copy of the current fibrosis-staging substate.
func (p *Person) Staging() StagingDetails { return p.staging }

// Linkage returns a copy of the LinkageDetails for the given infection.
func (p *Person) Linkage(it InfectionType) LinkageDetails { return *p.linkage[it] }

// Screening returns a copy of the ScreeningDetails for the given
// infection.
func (p *Person) Screening(it InfectionType) ScreeningDetails { return *p.screening[it] }

// Treatment returns a copy of the TreatmentDetails for the given
// infection.
func (p *Person) Treatment(it InfectionType) TreatmentDetails { return *p.treatment[it] }

// Costs returns the Person's CostAccumulator.
func (p *Person) Costs() *CostAccumulator { return p.costs }

// Utilities returns the Person's UtilityAccumulator.
func (p *Person) Utilities() *UtilityAccumulator { return p.utilities }

// AddCost delegates to the CostAccumulator (spec §4.4).
func (p *Person) AddCost(base, discounted float64, category CostCategory) {
	p.costs.AddCost(base, discounted, category)
}

// SetUtility delegates to the UtilityAccumulator (spec §4.4).
func (p *Person) SetUtility(value float64, category UtilityCategory) error {
	return p.utilities.SetUtility(value, category)
}

// AccumulateTotalUtility delegates to the UtilityAccumulator, using the
// Person's own current timestep.
func (p *Person) AccumulateTotalUtility(discountRate float64) {
	p.utilities.AccumulateTotalUtility(discountRate, p.currentTimestep)
}

// Grow advances the Person by one timestep (spec §4.4, invariant 6):
// current_timestep, age, and life_span all increment; behavior recency,
// MOUD totals, and low-CD4 month counts update as applicable.
func (p *Person) Grow() {
	p.currentTimestep++
	p.age++
	p.lifeSpan++
	if p.behavior.Behavior.IsActive() {
		p.behavior.TimeLastActive = p.currentTimestep
	}
	if p.moud.State == MOUDCurrent {
		p.moud.TotalMonths++
	}
	if p.hiv.Status.IsLowCD4() {
		p.hiv.LowCD4Months++
	}
	p.moud.ConcurrentMonths++
}

// AddDiscountedLifeMonth adds one Discount-weighted life month to the
// Person's lifetime discounted life span. Called by the Engine after all
// events run for a timestep (spec §4.6).
func (p *Person) AddDiscountedLifeMonth(discountRate float64) {
	p.discountedLifeSpan += Discount(1, discountRate, p.currentTimestep)
}

// Die marks the Person dead with the given reason (spec invariant 7:
// once alive==false, no event body runs against them again).
func (p *Person) Die(reason DeathReason) {
	p.alive = false
	p.deathReason = reason
}
