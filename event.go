package hepce

import "strings"

// Logger is the minimal logging contract every Event holds (spec §4.5,
// §9: "the core only holds a name"). The logging package's zerolog
// adapter is the reference implementation; tests use a no-op stub.
type Logger interface {
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// nopLogger discards everything; used where callers do not care to wire
// a real Logger (e.g. unit tests of a single event in isolation).
type nopLogger struct{}

func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// NopLogger returns a Logger that discards every message.
func NopLogger() Logger { return nopLogger{} }

// TableRow is one row of a preloaded tabular input: Key holds the
// stringified key columns in the table's declared order, Values holds
// every other column by name.
type TableRow struct {
	Key    []string
	Values map[string]float64
}

// tableIndex is an event-local, construction-time index over a
// TableRow slice, keyed by the joined Key tuple. Built once per event at
// construction so that Execute performs no I/O (spec §4.5).
type tableIndex struct {
	rows map[string]map[string]float64
}

func newTableIndex(rows []TableRow) *tableIndex {
	idx := &tableIndex{rows: make(map[string]map[string]float64, len(rows))}
	for _, r := range rows {
		idx.rows[tableKey(r.Key)] = r.Values
	}
	return idx
}

func tableKey(parts []string) string {
	return strings.Join(parts, "\x1f")
}

// get looks up the row for the given key parts (already stringified by
// the caller, e.g. strconv.Itoa(ageYears), sex.String(), behavior.String()).
func (t *tableIndex) get(parts ...string) (map[string]float64, bool) {
	if t == nil {
		return nil, false
	}
	row, ok := t.rows[tableKey(parts)]
	return row, ok
}

// DataSource is the external collaborator (spec C5) that resolves keyed
// lookups into tabular inputs and the flat configuration store. Events
// call LoadTable/Config* exactly once, at construction, and cache the
// result in a tableIndex so Execute never performs I/O.
type DataSource interface {
	ConfigString(key string) (string, bool)
	ConfigFloat(key string) (float64, bool)
	ConfigInt(key string) (int, bool)
	ConfigBool(key string) (bool, bool)

	// LoadTable returns every row of the named tabular input. Returns
	// (nil, false) if the table does not exist (DataTableMissing).
	LoadTable(name string) ([]TableRow, bool)
}

// Event is the contract shared by all 14 concrete HEP-CE events (spec
// §4.5). Execute's precondition is person.Alive(); the Engine never
// calls Execute on a dead Person, so implementations may assume it.
type Event interface {
	Name() string
	Execute(person *Person, sampler *Sampler)
}

// requireFloatConfig resolves a required float config key, logging and
// falling back to def if absent -- used by event constructors for
// values spec §7 treats as ConfigMissing-fatal only when there truly is
// no sane default (most numeric knobs have one).
func requireFloatConfig(ds DataSource, log Logger, key string, def float64) float64 {
	v, ok := ds.ConfigFloat(key)
	if !ok {
		log.Warnf("config key %q missing, using default %v", key, def)
		return def
	}
	return v
}

func requireIntConfig(ds DataSource, log Logger, key string, def int) int {
	v, ok := ds.ConfigInt(key)
	if !ok {
		log.Warnf("config key %q missing, using default %v", key, def)
		return def
	}
	return v
}

func requireBoolConfig(ds DataSource, log Logger, key string, def bool) bool {
	v, ok := ds.ConfigBool(key)
	if !ok {
		log.Warnf("config key %q missing, using default %v", key, def)
		return def
	}
	return v
}

func requireStringConfig(ds DataSource, log Logger, key string, def string) string {
	v, ok := ds.ConfigString(key)
	if !ok {
		log.Warnf("config key %q missing, using default %q", key, def)
		return def
	}
	return v
}

// splitCSVConfig splits a comma-separated configuration value into its
// trimmed tokens, dropping empties. Shared by every event that accepts a
// list-valued config key (eligible stages, ineligible behaviors, ...).
func splitCSVConfig(v string) []string {
	var out []string
	for _, tok := range strings.Split(v, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func loadTableIndex(ds DataSource, log Logger, name string) *tableIndex {
	rows, ok := ds.LoadTable(name)
	if !ok {
		log.Errorf("%s", DataTableMissing(name))
		return newTableIndex(nil)
	}
	return newTableIndex(rows)
}
