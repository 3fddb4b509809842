// SPDX-License-Identifier: EPL-2.0

package doppler

import (
	"fmt"
	"math"
)

// ArrivalTimes evaluates traj at the emission time of each of n samples taken
// at sampleRate and returns, per sample, the emission time, the distance to
// listener and the time the sample reaches the listener.
func ArrivalTimes(n, sampleRate int, traj Trajectory, listener Point, speed float64) (emission, distance, arrival []float64, err error) {
	if err := validate(sampleRate, traj, speed); err != nil {
		return nil, nil, nil, err
	}
	if n < 0 {
		return nil, nil, nil, fmt.Errorf("%w: negative sample count %d", ErrInvalidParameter, n)
	}

	emission = make([]float64, n)
	distance = make([]float64, n)
	arrival = make([]float64, n)

	rate := float64(sampleRate)
	for i := range n {
		t := float64(i) / rate
		p := traj.Position(t)
		if !p.finite() {
			return nil, nil, nil, fmt.Errorf("%w: position at t=%g is %v", ErrDegenerateGeometry, t, p)
		}

		d := p.Distance(listener)
		a := t + d/speed
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, nil, nil, fmt.Errorf("%w: arrival time not finite at t=%g (distance %g)", ErrDegenerateGeometry, t, d)
		}
		emission[i] = t
		distance[i] = d
		arrival[i] = a
	}

	return emission, distance, arrival, nil
}

func validate(sampleRate int, traj Trajectory, speed float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, sampleRate)
	}
	if !(speed > 0) || math.IsInf(speed, 0) {
		return fmt.Errorf("%w: propagation speed %g", ErrInvalidParameter, speed)
	}
	if traj == nil {
		return fmt.Errorf("%w: nil trajectory", ErrInvalidParameter)
	}
	return nil
}
