// SPDX-License-Identifier: EPL-2.0

package doppler

import "errors"

var (
	// ErrInvalidParameter reports a non-positive sample rate or propagation
	// speed, a nil trajectory or mismatched series lengths.
	ErrInvalidParameter = errors.New("doppler: invalid parameter")

	// ErrInsufficientSamples reports fewer than MinSamples usable points or a
	// uniform grid shorter than two points.
	ErrInsufficientSamples = errors.New("doppler: insufficient samples")

	// ErrUnsortedArrivals is returned by RequireMonotonic ordering when the
	// arrival times are not strictly increasing.
	ErrUnsortedArrivals = errors.New("doppler: arrival times not strictly increasing")

	// ErrDegenerateGeometry reports a trajectory that produced a non-finite
	// position.
	ErrDegenerateGeometry = errors.New("doppler: degenerate geometry")
)
