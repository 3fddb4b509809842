// SPDX-License-Identifier: EPL-2.0

package doppler

import "fmt"

// DefaultSpeed is the propagation speed used by DefaultOptions, in m/s.
const DefaultSpeed = 300.0

// MinSamples is the smallest number of distinct arrival times a cubic fit
// accepts.
const MinSamples = 4

// Ordering selects how non-monotonic arrival times are handled.
type Ordering int

const (
	// SortArrivals stably sorts (arrival, sample) pairs by arrival time and
	// keeps the lowest input index among exact duplicates.
	SortArrivals Ordering = iota
	// RequireMonotonic rejects arrival times that are not strictly
	// increasing.
	RequireMonotonic
)

func (o Ordering) String() string {
	switch o {
	case SortArrivals:
		return "sort"
	case RequireMonotonic:
		return "strict"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// ParseOrdering accepts the names produced by Ordering.String.
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "sort", "":
		return SortArrivals, nil
	case "strict":
		return RequireMonotonic, nil
	}
	return 0, fmt.Errorf("%w: unknown ordering %q", ErrInvalidParameter, s)
}

// Options configures one transform invocation.
type Options struct {
	Listener  Point
	Speed     float64 // propagation speed, m/s
	Attenuate bool
	Ordering  Ordering
}

// DefaultOptions places the listener at the origin, uses DefaultSpeed and
// enables attenuation.
func DefaultOptions() Options {
	return Options{
		Speed:     DefaultSpeed,
		Attenuate: true,
		Ordering:  SortArrivals,
	}
}

// WithListener returns a copy of o with the listener moved to p.
func (o Options) WithListener(p Point) Options {
	o.Listener = p
	return o
}
