// SPDX-License-Identifier: EPL-2.0

package doppler

import (
	"fmt"
	"slices"
)

// Result holds the output of Simulate together with the per-input-sample
// series it was computed from.
type Result struct {
	SampleRate int

	// Per input sample.
	Emission []float64 // emission times, i/SampleRate
	Distance []float64 // source to listener distance at emission
	Arrival  []float64 // emission + distance/speed
	Scale    []float64 // attenuation factor applied to each sample (all 1 when disabled)

	// Uniform output grid.
	Times   []float64
	Samples []float64

	// Reordered is true when arrival times had to be sorted or deduplicated.
	Reordered bool
}

// Delay returns the arrival time of the first output sample.
func (r *Result) Delay() float64 {
	if len(r.Times) == 0 {
		return 0
	}
	return r.Times[0]
}

// Duration returns the length of the output grid in seconds.
func (r *Result) Duration() float64 {
	return float64(len(r.Samples)) / float64(r.SampleRate)
}

// Transform applies the Doppler effect to samples recorded at sampleRate and
// emitted along traj, as heard at opts.Listener. It returns the uniform output
// time axis and the output samples.
func Transform(samples []float64, sampleRate int, traj Trajectory, opts Options) (times, out []float64, err error) {
	res, err := Simulate(samples, sampleRate, traj, opts)
	if err != nil {
		return nil, nil, err
	}
	return res.Times, res.Samples, nil
}

// Simulate is Transform returning every intermediate series.
func Simulate(samples []float64, sampleRate int, traj Trajectory, opts Options) (*Result, error) {
	if err := validate(sampleRate, traj, opts.Speed); err != nil {
		return nil, err
	}
	if len(samples) < MinSamples {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrInsufficientSamples, len(samples), MinSamples)
	}

	emission, distance, arrival, err := ArrivalTimes(len(samples), sampleRate, traj, opts.Listener, opts.Speed)
	if err != nil {
		return nil, err
	}

	var (
		scale  []float64
		values []float64
	)
	if opts.Attenuate {
		scale = AttenuationScale(distance)
		values = applyScale(samples, scale)
	} else {
		scale = make([]float64, len(samples))
		for i := range scale {
			scale[i] = 1
		}
		values = slices.Clone(samples)
	}

	times, out, reordered, err := Resample(arrival, values, sampleRate, opts.Ordering)
	if err != nil {
		return nil, err
	}

	return &Result{
		SampleRate: sampleRate,
		Emission:   emission,
		Distance:   distance,
		Arrival:    arrival,
		Scale:      scale,
		Times:      times,
		Samples:    out,
		Reordered:  reordered,
	}, nil
}
