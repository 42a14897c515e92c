package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator mints opaque, URL-safe identifiers. The core uses it only for
// invoice line items; every other identifier is caller-supplied.
type Generator interface {
	NewID() string
}

type ulidGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewGenerator returns a ULID generator backed by crypto/rand entropy.
// Identifiers are 26 Crockford base32 characters.
func NewGenerator() Generator {
	return &ulidGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (g *ulidGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}
