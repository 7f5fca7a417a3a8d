// Package id generates handles for stored measurements and API requests.
//
// Handles are prefixed ULIDs (msr_01J..., req_01J...):
//   - Lexicographic order is creation order (monotonic entropy)
//   - Prefixes keep logs readable
//   - Typed wrappers keep measurement and request handles apart
//
// Handles are not tag ordinals: the identity of an independent variable is a
// plain counter owned by measure.Allocator.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// MeasurementID identifies a measurement stored in a workspace
type MeasurementID string

// RequestID identifies an API request
type RequestID string

const (
	MeasurementPrefix = "msr"
	RequestPrefix     = "req"
	SpanPrefix        = "spn"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator whose IDs increase within a millisecond
func NewGenerator() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewMeasurementID generates a new measurement handle
func NewMeasurementID() MeasurementID {
	return MeasurementID(Default().GenerateWithPrefix(MeasurementPrefix))
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// NewSpanID generates an ID for one traced operation within a request
func NewSpanID() string {
	return Default().GenerateWithPrefix(SpanPrefix)
}

func (id MeasurementID) String() string { return string(id) }
func (id RequestID) String() string     { return string(id) }

// IsMeasurementID reports whether s looks like a measurement handle
func IsMeasurementID(s string) bool {
	prefix, rest, ok := strings.Cut(s, "_")
	return ok && prefix == MeasurementPrefix && IsValid(rest)
}

// IsRequestID reports whether s looks like a request ID
func IsRequestID(s string) bool {
	prefix, rest, ok := strings.Cut(s, "_")
	return ok && prefix == RequestPrefix && IsValid(rest)
}

// IsValid checks if an ID string is a valid ULID
func IsValid(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}

// Timestamp extracts the timestamp from a bare or prefixed ULID
func Timestamp(id string) (time.Time, error) {
	if _, rest, ok := strings.Cut(id, "_"); ok {
		id = rest
	}
	parsed, err := ulid.Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
