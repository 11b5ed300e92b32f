package hepce

import (
	"math/rand"
	"sync"

	rv "github.com/kentwait/randomvariate"
)

// weightEpsilon is the tolerance above 1.0 that Sampler.GetDecision
// tolerates before rejecting a weight vector as invalid (spec §4.1).
const weightEpsilon = 1e-5

// rvMu serializes every randomvariate draw across all Samplers.
// randomvariate, like the teacher's own usage of it (intrahost_process.go's
// rv.Multinomial, spreader.go/interhost_process.go's rv.Binomial), draws
// from math/rand's package-level default source rather than taking a
// *rand.Rand of its own -- the teacher's tests make this explicit by
// calling rand.Seed(...) immediately before sampling. Sampler reproduces
// that same "reseed the global source, then draw" idiom per call so each
// Sampler's own rng stream -- not goroutine scheduling -- determines the
// sequence.
var rvMu sync.Mutex

// Sampler draws weighted-categorical decisions from a seeded
// pseudo-random stream. Each Sampler wraps exactly one *rand.Rand, so
// distinct Samplers (e.g. one per worker, derived from the master seed
// plus a worker or Person index) have independent streams; their
// randomvariate draws are still serialized through the package-level
// rvMu. The mutex below only protects a single Sampler against concurrent callers
// within the same Person's execution, which the Engine never does, but
// which keeps the type safe to share if a caller chooses to.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a Sampler seeded deterministically from seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// DeriveSampler creates a new, independent Sampler whose stream depends
// only on the master seed and streamID -- never on thread count or
// scheduling order -- so per-Person output stays reproducible across
// different worker-pool sizes (spec §5).
func DeriveSampler(masterSeed int64, streamID int64) *Sampler {
	// Stafford's 64-bit mix, used here purely to decorrelate adjacent
	// streamIDs -- the point is not cryptographic strength but avoiding
	// visibly-correlated output between Person N and Person N+1 whose
	// seeds would otherwise differ by exactly 1.
	z := uint64(masterSeed) + uint64(streamID)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return NewSampler(int64(z))
}

// GetDecision draws a single weighted-categorical decision over weights,
// returning the selected index, or len(weights) for the implicit "none
// of the above" outcome when the weights don't sum to 1. Fails with
// InvalidWeights if the weights sum to more than 1+epsilon. Grounded on
// intrahost_process.go's MutateSite: build a one-trial multinomial over
// the candidate probabilities and return whichever index came back hot.
func (s *Sampler) GetDecision(weights []float64) (int, error) {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum > 1+weightEpsilon {
		return 0, InvalidWeights(sum, weightEpsilon)
	}
	remainder := 1 - sum
	if remainder < 0 {
		remainder = 0
	}
	probs := make([]float64, len(weights)+1)
	copy(probs, weights)
	probs[len(weights)] = remainder

	draw := s.drawMultinomial(probs)
	for i, v := range draw {
		if v == 1 {
			return i, nil
		}
	}
	return len(weights), nil
}

// drawMultinomial reseeds the shared global source from this Sampler's
// own stream and delegates to randomvariate for the actual draw.
func (s *Sampler) drawMultinomial(probs []float64) []int {
	s.mu.Lock()
	seed := s.rng.Int63()
	s.mu.Unlock()

	rvMu.Lock()
	defer rvMu.Unlock()
	rand.Seed(seed)
	return rv.Multinomial(1, probs)
}

// Float64 draws a single uniform value in [0,1). Exposed for events that
// need a raw draw rather than a categorical decision (e.g. DeriveSampler
// decorrelation checks).
func (s *Sampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// DrawBernoulli is a convenience wrapper for the extremely common
// single-probability draw: succeeds with probability p. Grounded on
// spreader.go/interhost_process.go's rv.Binomial(1, p) == 1.0 idiom.
func (s *Sampler) DrawBernoulli(p float64) bool {
	s.mu.Lock()
	seed := s.rng.Int63()
	s.mu.Unlock()

	rvMu.Lock()
	defer rvMu.Unlock()
	rand.Seed(seed)
	return rv.Binomial(1, p) == 1.0
}
