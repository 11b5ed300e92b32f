package hepce

import "strings"

// LoggerFactory produces a named Logger for an event to hold for its
// lifetime (spec §4.5: "every event is constructed with ... a logger
// name"). The logging package's zerolog-backed implementation is the
// reference; NopLoggerFactory is used by tests.
type LoggerFactory func(name string) Logger

// NopLoggerFactory returns a LoggerFactory whose Loggers discard every
// message.
func NopLoggerFactory() LoggerFactory {
	return func(string) Logger { return NopLogger() }
}

// These names are the recognized vocabulary for simulation.events (spec
// §4.6 CreateEvents, §7 UnknownEvent).
const (
	eventAging               = "aging"
	eventBehaviorChanges     = "behavior_changes"
	eventClearance           = "clearance"
	eventDeath               = "death"
	eventFibrosisProgression = "fibrosis_progression"
	eventFibrosisStaging     = "fibrosis_staging"
	eventHCCProgression      = "hcc_progression"
	eventHCVInfection        = "hcv_infection"
	eventHCVScreening        = "hcv_screening"
	eventHIVScreening        = "hiv_screening"
	eventHCVLinking          = "hcv_linking"
	eventHIVLinking          = "hiv_linking"
	eventHCVTreatment        = "hcv_treatment"
	eventHIVTreatment        = "hiv_treatment"
	eventOverdose            = "overdose"
	eventMOUD                = "moud"
	eventPregnancy           = "pregnancy"
	eventVoluntaryRelinking  = "voluntary_relinking"
	eventHIVVoluntaryRelink  = "hiv_voluntary_relinking"
)

// CreateEvents builds the ordered Event slice named by simulation.events
// (spec §4.6). Unknown names are a fatal configuration error
// (UnknownEvent); CreateEvents returns that error immediately, since
// event construction itself never fails once the name is recognized
// (missing tables/config degrade to recoverable per-event warnings).
func CreateEvents(ds DataSource, loggers LoggerFactory) ([]Event, error) {
	names := splitCSVConfig(requireStringConfig(ds, loggers("event_factory"), "simulation.events", ""))
	pregnancyAware := containsName(names, eventPregnancy)
	moudEventPresent := containsName(names, eventMOUD)

	events := make([]Event, 0, len(names))
	for _, name := range names {
		log := loggers(name)
		switch name {
		case eventAging:
			events = append(events, NewAgingEvent(ds, log))
		case eventBehaviorChanges:
			events = append(events, NewBehaviorChangesEvent(ds, log, moudEventPresent))
		case eventClearance:
			events = append(events, NewClearanceEvent(ds, log))
		case eventDeath:
			events = append(events, NewDeathEvent(ds, log))
		case eventFibrosisProgression:
			events = append(events, NewFibrosisProgressionEvent(ds, log))
		case eventFibrosisStaging:
			events = append(events, NewFibrosisStagingEvent(ds, log))
		case eventHCCProgression:
			events = append(events, NewHCCProgressionEvent(ds, log))
		case eventHCVInfection:
			events = append(events, NewHCVInfectionEvent(ds, log))
		case eventHCVScreening:
			events = append(events, NewHCVScreeningEvent(ds, log))
		case eventHIVScreening:
			events = append(events, NewHIVScreeningEvent(ds, log))
		case eventHCVLinking:
			events = append(events, NewHCVLinkingEvent(ds, log, pregnancyAware))
		case eventHIVLinking:
			events = append(events, NewHIVLinkingEvent(ds, log, pregnancyAware))
		case eventHCVTreatment:
			events = append(events, NewHCVTreatmentEvent(ds, log, pregnancyAware))
		case eventHIVTreatment:
			events = append(events, NewHIVTreatmentEvent(ds, log))
		case eventOverdose:
			events = append(events, NewOverdoseEvent(ds, log))
		case eventMOUD:
			events = append(events, NewMOUDEvent(ds, log))
		case eventPregnancy:
			events = append(events, NewPregnancyEvent(ds, log))
		case eventVoluntaryRelinking:
			events = append(events, NewHCVVoluntaryRelinkingEvent(ds, log))
		case eventHIVVoluntaryRelink:
			events = append(events, NewHIVVoluntaryRelinkingEvent(ds, log))
		default:
			return nil, UnknownEvent(name)
		}
	}
	return events, nil
}

func containsName(names []string, target string) bool {
	for _, n := range names {
		if strings.EqualFold(n, target) {
			return true
		}
	}
	return false
}
