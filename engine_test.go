package hepce

import (
	"sync/atomic"
	"testing"
)

// countingEvent records how many times it ran and optionally kills the
// Person once its own run count reaches a threshold, to exercise the
// Engine's mid-timestep death short-circuit. runs is accessed with
// atomics since the Engine executes one goroutine per Person.
type countingEvent struct {
	name   string
	runs   *int64
	killAt int64
}

func (e *countingEvent) Name() string { return e.name }
func (e *countingEvent) Execute(p *Person, s *Sampler) {
	n := atomic.AddInt64(e.runs, 1)
	if e.killAt >= 0 && n == e.killAt {
		p.Die(DeathAge)
	}
}

func TestEngineRunExecutesEveryPersonEveryTimestep(t *testing.T) {
	ds := newFakeDataSource()
	ds.ints["simulation.seed"] = 42
	ds.ints["simulation.duration"] = 3
	log := &fakeLogger{}

	ev := &countingEvent{name: "counter", runs: new(int64), killAt: -1}
	en := NewEngine(ds, log, []Event{ev})

	people := []*Person{NewPerson(Male, 300, false), NewPerson(Female, 240, false)}
	if err := en.Run(people); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt64(ev.runs); got != 6 {
		t.Fatalf("expected 2 people * 3 timesteps = 6 executions, got %d", got)
	}
	for _, p := range people {
		if !p.Alive() {
			t.Fatal("person should still be alive")
		}
	}
}

func TestEngineStopsExecutingDeadPeople(t *testing.T) {
	ds := newFakeDataSource()
	ds.ints["simulation.seed"] = 7
	ds.ints["simulation.duration"] = 5
	log := &fakeLogger{}

	ev := &countingEvent{name: "killer", runs: new(int64), killAt: 1}
	en := NewEngine(ds, log, []Event{ev})

	p := NewPerson(Male, 300, false)
	if err := en.Run([]*Person{p}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt64(ev.runs); got != 1 {
		t.Fatalf("expected event to stop running once dead after a single execution, got %d", got)
	}
	if p.Alive() {
		t.Fatal("person should be dead")
	}
}

func TestPersonStreamIDIsStablePerPerson(t *testing.T) {
	p := NewPerson(Male, 300, false)
	a := personStreamID(p)
	b := personStreamID(p)
	if a != b {
		t.Fatalf("personStreamID should be stable across calls, got %v and %v", a, b)
	}
}

func TestOutputOptionsForDerivesFromEventNames(t *testing.T) {
	events := []Event{
		&countingEvent{name: eventPregnancy, runs: new(int64), killAt: -1},
		&countingEvent{name: eventHIVScreening, runs: new(int64), killAt: -1},
	}
	opts := OutputOptionsFor(events)
	if !opts.Pregnancy {
		t.Fatal("expected Pregnancy=true")
	}
	if !opts.HIV {
		t.Fatal("expected HIV=true")
	}
	if opts.HCC || opts.Overdose || opts.MOUD {
		t.Fatalf("unexpected toggles set: %+v", opts)
	}
}
