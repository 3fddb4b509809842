// SPDX-License-Identifier: EPL-2.0

// Package doppler turns a recorded sound into what a stationary listener hears
// while the sound's emitter moves along a trajectory.
//
// The transform runs in three steps over a whole buffer:
//   - every input sample i is emitted at t_i = i/R from Trajectory.Position(t_i)
//     and reaches the listener at a_i = t_i + d_i/c
//   - optionally, each sample is scaled by min(d)/d_i so the closest approach
//     keeps unit gain
//   - the pairs (a_i, s_i) are fitted with a not-a-knot cubic spline and the
//     spline is sampled on a uniform grid at R starting at min(a)
//
// # Quick Start
//
//	traj := doppler.Linear{
//	    Start:    doppler.Point{X: 100, Y: 10},
//	    Velocity: doppler.Point{X: -30},
//	}
//	times, out, err := doppler.Transform(samples, 44100, traj, doppler.DefaultOptions())
//
// # Trajectories
//
// Any type with a Position(t float64) Point method is a Trajectory. Circular,
// Linear and Stationary cover the common cases; TrajectoryFunc adapts a plain
// function.
//
// # Arrival ordering
//
// A source approaching faster than the propagation speed makes later samples
// arrive before earlier ones. With SortArrivals (the default) the pairs are
// stably sorted by arrival time and exact duplicates are collapsed onto the
// lowest input index. RequireMonotonic refuses such input with
// ErrUnsortedArrivals instead.
//
// # Concurrency
//
// Transform and Simulate keep no state between calls and allocate their own
// buffers, so they may be called from any number of goroutines.
package doppler
