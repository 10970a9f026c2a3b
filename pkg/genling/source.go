package genling

import (
	"math/rand"
	"sync"
	"time"
)

// Source supplies uniform random reals in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// lockedSource serialises access to a shared *rand.Rand, which is not safe
// for concurrent use on its own.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

var defaultSource = &lockedSource{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}

// DefaultSource returns the process-wide source used whenever a nil Source is passed.
// It is time-seeded and safe for concurrent use.
func DefaultSource() Source {
	return defaultSource
}

// NewSource returns a deterministic source for the given seed.
// The returned source must not be shared between goroutines.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewLockedSource returns a deterministic source for the given seed that may be
// shared between goroutines. Interleaving still makes the sequence per goroutine
// nondeterministic.
func NewLockedSource(seed int64) Source {
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func sourceOrDefault(src Source) Source {
	if src == nil {
		return defaultSource
	}
	return src
}

// chance reports whether a single draw from src falls under probability.
// Probability 1 always passes, probability 0 never does.
func chance(src Source, probability float64) bool {
	return sourceOrDefault(src).Float64() < probability
}
