package common

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"raidcrew/raidtracker/internal/constants"
)

// Entropy supplies every clock reading, identifier and coin flip the login flows need,
// so tests can replace it with a fixed sequence.
type Entropy interface {
	Now() time.Time
	NewID() string
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// SystemEntropy is the production source: wall clock, UUIDs and math/rand.
type SystemEntropy struct{}

var _ Entropy = SystemEntropy{}

func (SystemEntropy) Now() time.Time   { return time.Now().UTC() }
func (SystemEntropy) NewID() string    { return uuid.NewString() }
func (SystemEntropy) Float64() float64 { return rand.Float64() }
func (SystemEntropy) IntN(n int) int   { return rand.Intn(n) }

// Today formats the entropy clock's current UTC date as stored on records.
func Today(e Entropy) string {
	return e.Now().UTC().Format(constants.DateLayout)
}
