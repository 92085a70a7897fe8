package pcm

import (
	"fmt"
	"strings"
)

// Narrowing selects how out-of-range values are stored as int16.
type Narrowing int

const (
	// NarrowWrap truncates toward zero and keeps the low 16 bits, the
	// two's-complement wraparound of a plain integer cast. It reproduces
	// existing reference output bit for bit.
	NarrowWrap Narrowing = iota

	// NarrowSaturate truncates toward zero and clamps to [-32768, 32767].
	NarrowSaturate
)

// String returns the policy name.
func (n Narrowing) String() string {
	switch n {
	case NarrowWrap:
		return "wrap"
	case NarrowSaturate:
		return "saturate"
	default:
		return fmt.Sprintf("Narrowing(%d)", int(n))
	}
}

// Valid reports whether n is a known policy.
func (n Narrowing) Valid() bool {
	return n == NarrowWrap || n == NarrowSaturate
}

// ParseNarrowing parses "wrap" or "saturate" (also "clamp").
func ParseNarrowing(s string) (Narrowing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap":
		return NarrowWrap, nil
	case "saturate", "clamp":
		return NarrowSaturate, nil
	default:
		return NarrowWrap, fmt.Errorf("unknown narrowing policy %q", s)
	}
}

// Narrow converts v to int16 under the policy. The second result reports
// whether v was outside the int16 range after truncation.
func (n Narrowing) Narrow(v float64) (int16, bool) {
	t := int64(v)
	if t >= minSample && t <= maxSample {
		return int16(t), false
	}
	if n == NarrowSaturate {
		if t > maxSample {
			return maxSample, true
		}
		return minSample, true
	}
	return int16(t), true
}

// NarrowingReport counts out-of-range values met while narrowing.
type NarrowingReport struct {
	Overflows int
}

// Add merges another report into r.
func (r *NarrowingReport) Add(other NarrowingReport) {
	r.Overflows += other.Overflows
}
