package hepce

// Sex is the biological sex of a simulated Person. Only two values are
// modeled; the tabular inputs in spec §6 are keyed on this closed set.
type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// Behavior is the drug-use behavior compartment. Never is absorbing from
// above: SetBehavior refuses any transition back into it.
type Behavior int

const (
	Never Behavior = iota
	FormerNonInjection
	FormerInjection
	NonInjection
	Injection
)

func (b Behavior) String() string {
	switch b {
	case Never:
		return "never"
	case FormerNonInjection:
		return "former_noninjection"
	case FormerInjection:
		return "former_injection"
	case NonInjection:
		return "noninjection"
	case Injection:
		return "injection"
	default:
		return "unknown"
	}
}

// IsActive reports whether the behavior is one of the active-use states.
func (b Behavior) IsActive() bool {
	return b == NonInjection || b == Injection
}

// HCV is the hepatitis C infection status.
type HCV int

const (
	HCVNone HCV = iota
	HCVAcute
	HCVChronic
)

func (h HCV) String() string {
	switch h {
	case HCVNone:
		return "none"
	case HCVAcute:
		return "acute"
	case HCVChronic:
		return "chronic"
	default:
		return "unknown"
	}
}

// FibrosisState is the true liver fibrosis stage. Strictly non-decreasing
// over a Person's lifetime; Decomp is absorbing.
type FibrosisState int

const (
	FibrosisNone FibrosisState = iota
	F0
	F1
	F2
	F3
	F4
	Decomp
)

func (f FibrosisState) String() string {
	switch f {
	case FibrosisNone:
		return "none"
	case F0:
		return "f0"
	case F1:
		return "f1"
	case F2:
		return "f2"
	case F3:
		return "f3"
	case F4:
		return "f4"
	case Decomp:
		return "decomp"
	default:
		return "unknown"
	}
}

// MeasuredFibrosisState is the staging-test result space, coarser than
// the true FibrosisState.
type MeasuredFibrosisState int

const (
	MeasuredNone MeasuredFibrosisState = iota
	MeasuredF01
	MeasuredF23
	MeasuredF4
	MeasuredDecomp
)

func (m MeasuredFibrosisState) String() string {
	switch m {
	case MeasuredNone:
		return "none"
	case MeasuredF01:
		return "f01"
	case MeasuredF23:
		return "f23"
	case MeasuredF4:
		return "f4"
	case MeasuredDecomp:
		return "decomp"
	default:
		return "unknown"
	}
}

// HCCState is the hepatocellular carcinoma progression stage. Monotone:
// none -> early -> late.
type HCCState int

const (
	HCCNone HCCState = iota
	HCCEarly
	HCCLate
)

func (h HCCState) String() string {
	switch h {
	case HCCNone:
		return "none"
	case HCCEarly:
		return "early"
	case HCCLate:
		return "late"
	default:
		return "unknown"
	}
}

// HIV is the HIV infection/suppression status.
type HIV int

const (
	HIVNone HIV = iota
	HighCD4Unsuppressed
	HighCD4Suppressed
	LowCD4Unsuppressed
	LowCD4Suppressed
)

func (h HIV) String() string {
	switch h {
	case HIVNone:
		return "none"
	case HighCD4Unsuppressed:
		return "high_cd4_unsuppressed"
	case HighCD4Suppressed:
		return "high_cd4_suppressed"
	case LowCD4Unsuppressed:
		return "low_cd4_unsuppressed"
	case LowCD4Suppressed:
		return "low_cd4_suppressed"
	default:
		return "unknown"
	}
}

// IsSuppressed reports whether the HIV state is a suppressed one.
func (h HIV) IsSuppressed() bool {
	return h == HighCD4Suppressed || h == LowCD4Suppressed
}

// IsLowCD4 reports whether the HIV state is a low-CD4 compartment.
func (h HIV) IsLowCD4() bool {
	return h == LowCD4Unsuppressed || h == LowCD4Suppressed
}

// MOUDState is the medication-for-opioid-use-disorder state machine:
// none -> current -> post -> none, cyclic.
type MOUDState int

const (
	MOUDNone MOUDState = iota
	MOUDCurrent
	MOUDPost
)

func (m MOUDState) String() string {
	switch m {
	case MOUDNone:
		return "none"
	case MOUDCurrent:
		return "current"
	case MOUDPost:
		return "post"
	default:
		return "unknown"
	}
}

// LinkageState is a per-infection linkage-to-care status.
type LinkageState int

const (
	LinkageNeverLinked LinkageState = iota
	Linked
	Unlinked
)

func (l LinkageState) String() string {
	switch l {
	case LinkageNeverLinked:
		return "never"
	case Linked:
		return "linked"
	case Unlinked:
		return "unlinked"
	default:
		return "unknown"
	}
}

// ScreeningType identifies which screening policy produced an event.
type ScreeningType int

const (
	ScreeningNone ScreeningType = iota
	ScreeningBackground
	ScreeningIntervention
)

func (s ScreeningType) String() string {
	switch s {
	case ScreeningNone:
		return "none"
	case ScreeningBackground:
		return "background"
	case ScreeningIntervention:
		return "intervention"
	default:
		return "unknown"
	}
}

// ScreeningTest identifies the test modality within a screening cascade.
type ScreeningTest int

const (
	AntibodyTest ScreeningTest = iota
	RNATest
)

func (s ScreeningTest) String() string {
	switch s {
	case AntibodyTest:
		return "antibody"
	case RNATest:
		return "rna"
	default:
		return "unknown"
	}
}

// PregnancyState is the pregnancy/postpartum status.
type PregnancyState int

const (
	PregnancyNotApplicable PregnancyState = iota
	PregnancyNoneState
	Pregnant
	RestrictedPostpartum
	YearOnePostpartum
	YearTwoPostpartum
)

func (p PregnancyState) String() string {
	switch p {
	case PregnancyNotApplicable:
		return "not_applicable"
	case PregnancyNoneState:
		return "none"
	case Pregnant:
		return "pregnant"
	case RestrictedPostpartum:
		return "restricted_postpartum"
	case YearOnePostpartum:
		return "year_one_postpartum"
	case YearTwoPostpartum:
		return "year_two_postpartum"
	default:
		return "unknown"
	}
}

// DeathReason records why a Person died, or NotDead while alive.
type DeathReason int

const (
	NotDead DeathReason = iota
	DeathBackground
	DeathLiver
	DeathInfection
	DeathAge
	DeathOverdose
	DeathHIV
)

func (d DeathReason) String() string {
	switch d {
	case NotDead:
		return "not_dead"
	case DeathBackground:
		return "background"
	case DeathLiver:
		return "liver"
	case DeathInfection:
		return "infection"
	case DeathAge:
		return "age"
	case DeathOverdose:
		return "overdose"
	case DeathHIV:
		return "hiv"
	default:
		return "unknown"
	}
}

// InfectionType indexes the per-infection sub-records (LinkageDetails,
// ScreeningDetails, TreatmentDetails) that HCV and HIV share a shape for.
type InfectionType int

const (
	HCVInfectionType InfectionType = iota
	HIVInfectionType
)

func (i InfectionType) String() string {
	switch i {
	case HCVInfectionType:
		return "hcv"
	case HIVInfectionType:
		return "hiv"
	default:
		return "unknown"
	}
}

// CostCategory buckets a charged cost for the CostAccumulator.
type CostCategory int

const (
	CostMisc CostCategory = iota
	CostBehavior
	CostScreening
	CostLinking
	CostStaging
	CostLiver
	CostTreatment
	CostBackground
	CostHIV
)

func (c CostCategory) String() string {
	switch c {
	case CostMisc:
		return "misc"
	case CostBehavior:
		return "behavior"
	case CostScreening:
		return "screening"
	case CostLinking:
		return "linking"
	case CostStaging:
		return "staging"
	case CostLiver:
		return "liver"
	case CostTreatment:
		return "treatment"
	case CostBackground:
		return "background"
	case CostHIV:
		return "hiv"
	default:
		return "unknown"
	}
}

// AllCostCategories lists every CostCategory in a stable order, used to
// initialize the CostAccumulator and to emit CSV columns.
func AllCostCategories() []CostCategory {
	return []CostCategory{
		CostMisc, CostBehavior, CostScreening, CostLinking, CostStaging,
		CostLiver, CostTreatment, CostBackground, CostHIV,
	}
}

// UtilityCategory buckets the current per-category utility for the
// UtilityAccumulator.
type UtilityCategory int

const (
	UtilityBehavior UtilityCategory = iota
	UtilityLiver
	UtilityTreatment
	UtilityBackground
	UtilityHIV
	UtilityMOUD
	UtilityOverdose
)

func (u UtilityCategory) String() string {
	switch u {
	case UtilityBehavior:
		return "behavior"
	case UtilityLiver:
		return "liver"
	case UtilityTreatment:
		return "treatment"
	case UtilityBackground:
		return "background"
	case UtilityHIV:
		return "hiv"
	case UtilityMOUD:
		return "moud"
	case UtilityOverdose:
		return "overdose"
	default:
		return "unknown"
	}
}

// AllUtilityCategories lists every UtilityCategory in a stable order.
func AllUtilityCategories() []UtilityCategory {
	return []UtilityCategory{
		UtilityBehavior, UtilityLiver, UtilityTreatment, UtilityBackground,
		UtilityHIV, UtilityMOUD, UtilityOverdose,
	}
}
