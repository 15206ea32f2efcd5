// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so the arena layout is reproducible.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Jitter returns a random offset in [-amount, amount).
func (s *PRNGService) Jitter(amount float64) float64 {
	return (s.rng.Float64()*2 - 1) * amount
}
