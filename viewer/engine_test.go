package viewer

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentenherz/Doppler-Effect-Simulator/doppler"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/audiotest"
)

const testRate = 8000

func newTestEngine(t *testing.T, debounce time.Duration) *Engine {
	t.Helper()

	traj := doppler.Circular{Radius: 50, AngularSpeed: 1}
	e := NewEngine(audiotest.Sine(800, testRate, 440, 0.5), testRate, traj, doppler.DefaultOptions(), debounce)
	t.Cleanup(e.Close)
	return e
}

type frameLog struct {
	mu     sync.Mutex
	frames []Frame
}

func (l *frameLog) add(f Frame) {
	l.mu.Lock()
	l.frames = append(l.frames, f)
	l.mu.Unlock()
}

func (l *frameLog) snapshot() []Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Frame(nil), l.frames...)
}

func TestEngine_Compute(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 0)
	_, err := e.Snapshot()
	require.ErrorIs(t, err, ErrNoFrame)

	listener := doppler.Point{X: 0, Y: 60}
	f, err := e.Compute(listener)
	require.NoError(t, err)
	assert.NotEmpty(t, f.Job)
	assert.Equal(t, listener, f.Listener)
	assert.Equal(t, testRate, f.Result.SampleRate)
	assert.Greater(t, f.Result.Delay(), 0.0)

	got, err := e.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, f.Job, got.Job)
	assert.NoError(t, e.LastError())
}

func TestEngine_SubmitDebounces(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 30*time.Millisecond)
	var frames frameLog
	e.OnFrame(frames.add)

	var last string
	for i := range 5 {
		job, err := e.Submit(doppler.Point{X: float64(i), Y: 60})
		require.NoError(t, err)
		last = job
	}

	require.Eventually(t, func() bool { return len(frames.snapshot()) == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)

	got := frames.snapshot()
	require.Len(t, got, 1, "superseded submissions must not publish")
	assert.Equal(t, last, got[0].Job)
	assert.Equal(t, doppler.Point{X: 4, Y: 60}, got[0].Listener)
}

func TestEngine_JobIDsUnique(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, time.Hour)
	seen := map[string]bool{}
	for range 50 {
		job, err := e.Submit(doppler.Point{Y: 60})
		require.NoError(t, err)
		require.False(t, seen[job])
		seen[job] = true
	}
}

func TestEngine_InvalidListener(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 0)
	for _, p := range []doppler.Point{
		{X: math.NaN()},
		{Y: math.Inf(-1)},
	} {
		_, err := e.Submit(p)
		assert.ErrorIs(t, err, ErrInvalidListener)
		_, err = e.Compute(p)
		assert.ErrorIs(t, err, ErrInvalidListener)
	}
}

func TestEngine_StaleResultDiscarded(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, time.Hour)
	_, err := e.Submit(doppler.Point{Y: 60})
	require.NoError(t, err)

	// A computation for an older generation finishes after the newer
	// submission.
	_, err = e.compute(0, "old", doppler.Point{Y: 10})
	require.NoError(t, err)

	_, err = e.Snapshot()
	assert.ErrorIs(t, err, ErrNoFrame)
}

func TestEngine_Close(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 20*time.Millisecond)
	var frames frameLog
	e.OnFrame(frames.add)

	_, err := e.Submit(doppler.Point{Y: 60})
	require.NoError(t, err)
	e.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, frames.snapshot())

	_, err = e.Submit(doppler.Point{Y: 60})
	assert.ErrorIs(t, err, ErrEngineClosed)
	_, err = e.Compute(doppler.Point{Y: 60})
	assert.ErrorIs(t, err, ErrEngineClosed)
}

func TestEngine_ComputeError(t *testing.T) {
	t.Parallel()

	e := NewEngine([]float64{0, 1}, testRate, doppler.Stationary{}, doppler.DefaultOptions(), 0)
	defer e.Close()

	_, err := e.Compute(doppler.Point{Y: 1})
	require.ErrorIs(t, err, doppler.ErrInsufficientSamples)
	assert.ErrorIs(t, e.LastError(), doppler.ErrInsufficientSamples)

	_, err = e.Snapshot()
	assert.ErrorIs(t, err, ErrNoFrame)
}

func TestDecimate(t *testing.T) {
	t.Parallel()

	t10 := make([]float64, 10)
	for i := range t10 {
		t10[i] = float64(i)
	}

	s := decimate(t10, t10, 20)
	assert.Len(t, s.T, 10)

	s = decimate(t10, t10, 4)
	assert.Equal(t, []float64{0, 3, 6, 9}, s.T)
	assert.Equal(t, s.T, s.V)

	s = decimate(t10, t10, 3)
	assert.LessOrEqual(t, len(s.T), 3)
	assert.Equal(t, 0.0, s.T[0])
	assert.Equal(t, 9.0, s.T[len(s.T)-1])
}
