// SPDX-License-Identifier: EPL-2.0

package doppler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubicPoly(x float64) float64 {
	return 2*x*x*x - x*x + 3*x + 1
}

func TestResample_ReproducesCubicOnIrregularKnots(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 0.013, 0.031, 0.04, 0.058, 0.07, 0.1}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = cubicPoly(x)
	}

	times, out, reordered, err := Resample(xs, ys, 100, SortArrivals)
	require.NoError(t, err)
	assert.False(t, reordered)
	require.Len(t, times, 11)

	for k, tk := range times {
		assert.InDelta(t, float64(k)/100, tk, 1e-12)
		assert.InDelta(t, cubicPoly(tk), out[k], 1e-9, "t=%g", tk)
	}
}

func TestNotAKnotSlopes_Cubic(t *testing.T) {
	t.Parallel()

	xs := []float64{-1, 0.5, 0.7, 2, 2.2, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x * x * x
	}

	for i, s := range notAKnotSlopes(xs, ys) {
		assert.InDelta(t, 3*xs[i]*xs[i], s, 1e-9, "slope at x=%g", xs[i])
	}
}

func TestNotAKnotSlopes_FourPointsIsSingleCubic(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 3, 4}
	ys := []float64{1, 3, 2, 7}
	s := notAKnotSlopes(xs, ys)

	// With four knots both not-a-knot conditions leave one cubic; its third
	// derivative must match on every interval.
	third := func(i int) float64 {
		h := xs[i+1] - xs[i]
		d := (ys[i+1] - ys[i]) / h
		return 6 * (s[i] + s[i+1] - 2*d) / (h * h)
	}
	assert.InDelta(t, third(0), third(1), 1e-9)
	assert.InDelta(t, third(1), third(2), 1e-9)
}

func TestResample_SortsAndDeduplicates(t *testing.T) {
	t.Parallel()

	arrival := []float64{0.3, 0.1, 0.2, 0.1, 0.0, 0.4}
	values := []float64{3, 1, 2, 99, 0, 4}

	xs, ys := sortArrivals(arrival, values)
	assert.Equal(t, []float64{0.0, 0.1, 0.2, 0.3, 0.4}, xs)
	// 0.1 appears at index 1 and 3; index 1 wins.
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, ys)

	times, out, reordered, err := Resample(arrival, values, 10, SortArrivals)
	require.NoError(t, err)
	assert.True(t, reordered)
	require.Len(t, times, 5)
	for k := range out {
		assert.InDelta(t, float64(k), out[k], 1e-9)
	}
}

func TestResample_DuplicatesBelowMinimum(t *testing.T) {
	t.Parallel()

	_, _, _, err := Resample([]float64{0, 0, 1, 1, 2}, []float64{1, 2, 3, 4, 5}, 10, SortArrivals)
	require.ErrorIs(t, err, ErrInsufficientSamples)
}

func TestResample_RequireMonotonic(t *testing.T) {
	t.Parallel()

	_, _, _, err := Resample([]float64{0, 0.1, 0.1, 0.3}, []float64{1, 2, 3, 4}, 10, RequireMonotonic)
	require.ErrorIs(t, err, ErrUnsortedArrivals)

	_, out, reordered, err := Resample([]float64{0, 0.1, 0.2, 0.3}, []float64{1, 2, 3, 4}, 10, RequireMonotonic)
	require.NoError(t, err)
	assert.False(t, reordered)
	assert.Len(t, out, 4)
}

func TestResample_InvalidInput(t *testing.T) {
	t.Parallel()

	_, _, _, err := Resample([]float64{0, 1, 2, 3}, []float64{0, 1, 2}, 10, SortArrivals)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, _, _, err = Resample([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, 0, SortArrivals)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, _, _, err = Resample([]float64{0, 1, 2}, []float64{0, 1, 2}, 10, SortArrivals)
	require.ErrorIs(t, err, ErrInsufficientSamples)
}

func TestUniformGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		t0, t1 float64
		rate   int
		want   int
		err    error
	}{
		{"exact periods", 0, 1, 10, 11, nil},
		{"partial period dropped", 0.5, 0.75, 10, 3, nil},
		{"rounding below integer", 1.0 / 3.0, 1.0/3.0 + 0.999, 1000, 1000, nil},
		{"single point", 0, 0.05, 10, 0, ErrInsufficientSamples},
		{"zero rate", 0, 1, 0, 0, ErrInvalidParameter},
		{"reversed bounds", 1, 0, 10, 0, ErrInvalidParameter},
		{"NaN bound", math.NaN(), 1, 10, 0, ErrDegenerateGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			grid, err := UniformGrid(tt.t0, tt.t1, tt.rate)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Len(t, grid, tt.want)
			assert.Equal(t, tt.t0, grid[0])
			assert.LessOrEqual(t, grid[len(grid)-1], tt.t1+1e-12)
		})
	}
}

func TestAttenuationScale(t *testing.T) {
	t.Parallel()

	assert.Empty(t, AttenuationScale(nil))
	assert.Equal(t, []float64{0.5, 1, 0.25, 1}, AttenuationScale([]float64{4, 2, 8, 2}))
	assert.Equal(t, []float64{1, 0, 0}, AttenuationScale([]float64{0, 1, 5}))

	out := Attenuate([]float64{1, -1, 1, -1}, []float64{4, 2, 8, 2})
	assert.Equal(t, []float64{0.5, -1, 0.25, -1}, out)
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	for _, o := range []Ordering{SortArrivals, RequireMonotonic} {
		got, err := ParseOrdering(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	_, err := ParseOrdering("shuffle")
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, "Ordering(7)", Ordering(7).String())
}

func TestTrajectories(t *testing.T) {
	t.Parallel()

	c := Circular{Center: Point{X: 1, Y: 1}, Radius: 2, AngularSpeed: math.Pi}
	p := c.Position(0.5)
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 3, p.Y, 1e-12)
	assert.InDelta(t, 2, c.Period(), 1e-12)
	assert.Equal(t, 0.0, Circular{Radius: 1}.Period())

	l := Linear{Start: Point{X: 100, Y: 10}, Velocity: Point{X: -30}}
	assert.Equal(t, Point{X: 70, Y: 10}, l.Position(1))

	f := TrajectoryFunc(func(t float64) Point { return Point{X: t, Y: -t} })
	assert.Equal(t, Point{X: 2, Y: -2}, f.Position(2))

	assert.Equal(t, 5.0, Point{X: 3, Y: 4}.Distance(Point{}))
}
