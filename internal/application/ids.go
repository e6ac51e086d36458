package application

import (
	"math/rand"
	"sync"

	"github.com/bnema/actionitems/internal/ports"
	"github.com/oklog/ulid/v2"
)

type idSource struct {
	mu      sync.Mutex
	clock   ports.Clock
	entropy *ulid.MonotonicEntropy
}

func newIDSource(clock ports.Clock) *idSource {
	return &idSource{
		clock:   clock,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(clock.Now().UnixNano())), 0),
	}
}

func (s *idSource) next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(s.clock.Now()), s.entropy).String()
}
