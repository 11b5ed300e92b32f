package hepce

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Engine drives a population through its full simulated lifetime: each
// Person, each month, each configured event in order (spec §4.6, C7).
type Engine struct {
	duration     int
	seed         int64
	discountRate float64
	events       []Event
}

// NewEngine constructs an Engine from configuration and a pre-built
// event order. If the configured seed is <= 0, the current millisecond
// clock substitutes (spec §4.6) -- callers that need bit-identical reruns
// must pin a positive seed.
func NewEngine(ds DataSource, log Logger, events []Event) *Engine {
	seed := int64(requireIntConfig(ds, log, "simulation.seed", 0))
	if seed <= 0 {
		seed = time.Now().UnixMilli()
	}
	return &Engine{
		duration:     requireIntConfig(ds, log, "simulation.duration", 0),
		seed:         seed,
		discountRate: requireFloatConfig(ds, log, "cost.discounting_rate", 0),
		events:       events,
	}
}

// Run executes the full simulation against people and waits for every
// Person to finish. Events report problems only through their Logger and
// never return an error, so runOne always returns nil and Run returns
// nil; the errgroup.Group joins the workers and does not cancel them.
//
// Each Person is executed start-to-finish by exactly one goroutine, with
// its own Sampler stream derived from the Engine's seed and the Person's
// stable id -- never from thread count or scheduling order -- so output
// stays reproducible across worker-pool sizes (spec §5).
func (en *Engine) Run(people []*Person) error {
	g := new(errgroup.Group)
	for _, person := range people {
		p := person
		g.Go(func() error {
			return en.runOne(p)
		})
	}
	return g.Wait()
}

func (en *Engine) runOne(p *Person) error {
	streamID := personStreamID(p)
	sampler := DeriveSampler(en.seed, streamID)

	for t := 0; t < en.duration; t++ {
		if !p.Alive() {
			break
		}
		for _, ev := range en.events {
			if !p.Alive() {
				break
			}
			ev.Execute(p, sampler)
		}
		if !p.Alive() {
			break
		}
		p.AccumulateTotalUtility(en.discountRate)
		p.AddDiscountedLifeMonth(en.discountRate)
	}
	return nil
}

// personStreamID derives a stable per-Person sub-stream identity from
// the Person's KSUID, by folding its bytes into an int64 (spec §5:
// "keyed by Person id" is the canonical independent-of-thread-count
// derivation).
func personStreamID(p *Person) int64 {
	b := p.ID().Bytes()
	var h int64 = 0
	for _, c := range b {
		h = h*31 + int64(c)
	}
	return h
}

// CreatePopulation delegates to the PopulationLoader (spec §4.6, §4.7).
func (en *Engine) CreatePopulation(ds DataSource, log Logger) ([]*Person, error) {
	return LoadPopulation(ds, log)
}

// outputOptionsFor derives the OutputOptions schema toggle set from the
// event order actually configured (spec §6: the population CSV schema
// is "parameterized by which optional sub-events are active").
func outputOptionsFor(events []Event) OutputOptions {
	var o OutputOptions
	for _, ev := range events {
		switch ev.Name() {
		case eventPregnancy:
			o.Pregnancy = true
		case eventHCCProgression:
			o.HCC = true
		case eventOverdose:
			o.Overdose = true
		case eventMOUD:
			o.MOUD = true
		case eventHIVScreening, eventHIVLinking, eventHIVTreatment, eventHIVVoluntaryRelink:
			o.HIV = true
		}
	}
	return o
}

// OutputOptionsFor is the exported form of outputOptionsFor, used by the
// population-snapshot writer to compute PopulationHeaders for a run.
func OutputOptionsFor(events []Event) OutputOptions { return outputOptionsFor(events) }
