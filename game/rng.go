package game

import (
	"math"
	"math/rand"
	"time"
)

// Rand wraps the standard generator so the whole simulation draws from a
// single seeded stream. A seed of 0 picks the current time, anything else
// makes a run fully reproducible.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a new seeded random service.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Angle returns a random angle in [0, 2π).
func (r *Rand) Angle() float64 {
	return r.rng.Float64() * 2 * math.Pi
}

// ChooseWeighted picks an index in [0, len(weights)) with probability
// proportional to its weight. Non-positive total weight falls back to 0.
func (r *Rand) ChooseWeighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	pick := r.Intn(total)
	upto := 0
	for i, w := range weights {
		upto += w
		if pick < upto {
			return i
		}
	}
	return len(weights) - 1
}
