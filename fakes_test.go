package hepce

// fakeDataSource is an in-memory DataSource test double, mirroring the
// teacher's mocks.go pattern of hand-built fakes over real I/O.
type fakeDataSource struct {
	strings map[string]string
	floats  map[string]float64
	ints    map[string]int
	bools   map[string]bool
	tables  map[string][]TableRow
}

func newFakeDataSource() *fakeDataSource {
	return &fakeDataSource{
		strings: map[string]string{},
		floats:  map[string]float64{},
		ints:    map[string]int{},
		bools:   map[string]bool{},
		tables:  map[string][]TableRow{},
	}
}

func (f *fakeDataSource) ConfigString(key string) (string, bool) { v, ok := f.strings[key]; return v, ok }
func (f *fakeDataSource) ConfigFloat(key string) (float64, bool)  { v, ok := f.floats[key]; return v, ok }
func (f *fakeDataSource) ConfigInt(key string) (int, bool)        { v, ok := f.ints[key]; return v, ok }
func (f *fakeDataSource) ConfigBool(key string) (bool, bool)      { v, ok := f.bools[key]; return v, ok }
func (f *fakeDataSource) LoadTable(name string) ([]TableRow, bool) {
	rows, ok := f.tables[name]
	return rows, ok
}

// fakeLogger records messages instead of writing them anywhere, so tests
// can assert on warn/error counts without parsing log output.
type fakeLogger struct {
	warnings []string
	errors   []string
}

func (l *fakeLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, format)
}
func (l *fakeLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, format)
}
