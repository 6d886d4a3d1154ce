package keywords

import (
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"
)

// idSource hands out sortable extraction IDs for log correlation.
type idSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func newIDSource() *idSource {
	return &idSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a new ID. Monotonic entropy is not safe for concurrent use.
func (s *idSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Now(), s.entropy).String()
}
