package hepce

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error message templates, named the way the teacher names its
// errors.go format-string constants.
const (
	configMissingError  = "missing required configuration key %q"
	configInvalidError  = "invalid configuration value for key %q: %s"
	dataTableMissingMsg = "data table %q not found"
	dataTableRowMissing = "no row found for key %q"
	invalidWeightsError = "sampler weights sum to %f, exceeds 1+%g"
	invalidUtilityError = "utility value %f outside [0,1] for category %s"
	unknownEventError   = "unknown event %q in simulation.events"
)

// fatalKind distinguishes errors that must terminate the run (per spec
// §7) from ones an event recovers from by logging and no-op'ing.
type fatalKind int

const (
	kindConfigMissing fatalKind = iota
	kindConfigInvalid
	kindDataTableMissing
	kindDataTableRowMissing
	kindInvalidWeights
	kindInvalidUtility
	kindUnknownEvent
)

// SimError is the single result type every HEP-CE core error collapses
// into, per spec §9's "mixed return codes / error out-parameters /
// silent defaults should collapse to a single result type" directive.
type SimError struct {
	kind fatalKind
	msg  string
}

func (e *SimError) Error() string { return e.msg }

// Fatal reports whether this error must terminate the entire run (spec
// §7: ConfigMissing, ConfigInvalid, and UnknownEvent are fatal at
// construction time; the rest are recoverable).
func (e *SimError) Fatal() bool {
	switch e.kind {
	case kindConfigMissing, kindConfigInvalid, kindUnknownEvent:
		return true
	default:
		return false
	}
}

// ConfigMissing builds a fatal error for an absent required config key.
func ConfigMissing(key string) error {
	return errors.WithStack(&SimError{kindConfigMissing, fmt.Sprintf(configMissingError, key)})
}

// ConfigInvalid builds a fatal error for a config value that failed
// validation (e.g. non-numeric where a probability is required).
func ConfigInvalid(key, reason string) error {
	return errors.WithStack(&SimError{kindConfigInvalid, fmt.Sprintf(configInvalidError, key, reason)})
}

// DataTableMissing builds a recoverable error for an absent input table.
// Event constructors log it and fall back to an empty table (zero
// probability, neutral utility); there is no mode that escalates it to a
// fatal error. The population loader returns it to its caller instead.
func DataTableMissing(name string) error {
	return errors.WithStack(&SimError{kindDataTableMissing, fmt.Sprintf(dataTableMissingMsg, name)})
}

// DataTableRowMissing builds a recoverable error for a table lookup that
// found no matching row for the given key.
func DataTableRowMissing(key string) error {
	return errors.WithStack(&SimError{kindDataTableRowMissing, fmt.Sprintf(dataTableRowMissing, key)})
}

// InvalidWeights builds a recoverable error for a Sampler.GetDecision
// call whose weights overshoot 1+epsilon.
func InvalidWeights(sum float64, epsilon float64) error {
	return errors.WithStack(&SimError{kindInvalidWeights, fmt.Sprintf(invalidWeightsError, sum, epsilon)})
}

// InvalidUtility builds a recoverable error for a SetUtility call whose
// value falls outside [0,1].
func InvalidUtility(value float64, category UtilityCategory) error {
	return errors.WithStack(&SimError{kindInvalidUtility, fmt.Sprintf(invalidUtilityError, value, category)})
}

// UnknownEvent builds a fatal error for an unrecognized name in
// simulation.events.
func UnknownEvent(name string) error {
	return errors.WithStack(&SimError{kindUnknownEvent, fmt.Sprintf(unknownEventError, name)})
}

// IsFatal reports whether err is a fatal SimError. Non-SimError errors
// (I/O, driver errors) are always treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	cause := errors.Cause(err)
	if se, ok := cause.(*SimError); ok {
		return se.Fatal()
	}
	return true
}
