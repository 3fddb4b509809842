// SPDX-License-Identifier: EPL-2.0

package doppler

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/interp"
)

// gridEpsilon absorbs rounding in span*rate so that a span of exactly k
// sample periods yields k intervals.
const gridEpsilon = 1e-9

// UniformGrid returns t0 + k/sampleRate for k = 0..n-1, where n-1 is the
// number of whole sample periods in [t0, t1].
func UniformGrid(t0, t1 float64, sampleRate int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, sampleRate)
	}
	if math.IsNaN(t0) || math.IsNaN(t1) || math.IsInf(t0, 0) || math.IsInf(t1, 0) {
		return nil, fmt.Errorf("%w: grid bounds [%g, %g]", ErrDegenerateGeometry, t0, t1)
	}

	rate := float64(sampleRate)
	span := t1 - t0
	if span < 0 {
		return nil, fmt.Errorf("%w: grid bounds [%g, %g]", ErrInvalidParameter, t0, t1)
	}

	n := int(math.Floor(span*rate+gridEpsilon)) + 1
	if n < 2 {
		return nil, fmt.Errorf("%w: span %gs gives %d grid point(s) at %d Hz", ErrInsufficientSamples, span, n, sampleRate)
	}

	grid := make([]float64, n)
	for k := range n {
		grid[k] = t0 + float64(k)/rate
	}
	return grid, nil
}

// Resample treats (arrival[i], values[i]) as samples of a continuous signal,
// fits a not-a-knot cubic spline through them and evaluates it on
// UniformGrid(min(arrival), max(arrival), sampleRate).
//
// reordered reports whether the pairs had to be sorted or deduplicated.
func Resample(arrival, values []float64, sampleRate int, ordering Ordering) (times, out []float64, reordered bool, err error) {
	if sampleRate <= 0 {
		return nil, nil, false, fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, sampleRate)
	}
	if len(arrival) != len(values) {
		return nil, nil, false, fmt.Errorf("%w: %d arrival times for %d values", ErrInvalidParameter, len(arrival), len(values))
	}
	if len(arrival) < MinSamples {
		return nil, nil, false, fmt.Errorf("%w: got %d, need %d", ErrInsufficientSamples, len(arrival), MinSamples)
	}

	xs, ys := arrival, values
	if i := firstNonIncreasing(arrival); i >= 0 {
		if ordering == RequireMonotonic {
			return nil, nil, false, fmt.Errorf("%w: a[%d]=%g after a[%d]=%g", ErrUnsortedArrivals, i, arrival[i], i-1, arrival[i-1])
		}
		xs, ys = sortArrivals(arrival, values)
		reordered = true
	}
	if len(xs) < MinSamples {
		return nil, nil, reordered, fmt.Errorf("%w: %d distinct arrival times, need %d", ErrInsufficientSamples, len(xs), MinSamples)
	}

	times, err = UniformGrid(xs[0], xs[len(xs)-1], sampleRate)
	if err != nil {
		return nil, nil, reordered, err
	}

	var spline interp.PiecewiseCubic
	spline.FitWithDerivatives(xs, ys, notAKnotSlopes(xs, ys))

	out = make([]float64, len(times))
	for k, t := range times {
		out[k] = spline.Predict(t)
	}

	return times, out, reordered, nil
}

// firstNonIncreasing returns the first index i with a[i] <= a[i-1], or -1.
func firstNonIncreasing(a []float64) int {
	for i := 1; i < len(a); i++ {
		if !(a[i] > a[i-1]) {
			return i
		}
	}
	return -1
}

// sortArrivals stably orders the pairs by arrival time and drops later
// duplicates of an abscissa, so ties keep the lowest input index.
func sortArrivals(arrival, values []float64) ([]float64, []float64) {
	idx := make([]int, len(arrival))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(arrival[a], arrival[b])
	})

	xs := make([]float64, 0, len(idx))
	ys := make([]float64, 0, len(idx))
	for _, i := range idx {
		if n := len(xs); n > 0 && arrival[i] == xs[n-1] {
			continue
		}
		xs = append(xs, arrival[i])
		ys = append(ys, values[i])
	}
	return xs, ys
}

// notAKnotSlopes returns the first derivative at every knot of the cubic
// spline through (xs, ys) whose third derivative is continuous at xs[1] and
// xs[n-2]. xs must be strictly increasing with len(xs) >= 4.
//
// The system is tridiagonal: the boundary rows already have the interior
// equation next to them folded in.
func notAKnotSlopes(xs, ys []float64) []float64 {
	n := len(xs)
	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	for i := range n - 1 {
		h[i] = xs[i+1] - xs[i]
		delta[i] = (ys[i+1] - ys[i]) / h[i]
	}

	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)

	x31 := h[0] + h[1]
	diag[0] = h[1]
	sup[0] = x31
	rhs[0] = ((h[0]+2*x31)*h[1]*delta[0] + h[0]*h[0]*delta[1]) / x31

	for i := 1; i < n-1; i++ {
		sub[i] = h[i]
		diag[i] = 2 * (h[i-1] + h[i])
		sup[i] = h[i-1]
		rhs[i] = 3 * (h[i]*delta[i-1] + h[i-1]*delta[i])
	}

	xn := h[n-2] + h[n-3]
	sub[n-1] = xn
	diag[n-1] = h[n-3]
	rhs[n-1] = (h[n-2]*h[n-2]*delta[n-3] + (2*xn+h[n-2])*h[n-3]*delta[n-2]) / xn

	return solveTridiagonal(sub, diag, sup, rhs)
}

// solveTridiagonal runs the Thomas algorithm. sub[0] and sup[n-1] are
// ignored; diag and rhs are overwritten.
func solveTridiagonal(sub, diag, sup, rhs []float64) []float64 {
	n := len(diag)
	for i := 1; i < n; i++ {
		m := sub[i] / diag[i-1]
		diag[i] -= m * sup[i-1]
		rhs[i] -= m * rhs[i-1]
	}

	x := make([]float64, n)
	x[n-1] = rhs[n-1] / diag[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = (rhs[i] - sup[i]*x[i+1]) / diag[i]
	}
	return x
}
