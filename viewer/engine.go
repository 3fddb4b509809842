// SPDX-License-Identifier: EPL-2.0

package viewer

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studentenherz/Doppler-Effect-Simulator/doppler"
	"github.com/studentenherz/Doppler-Effect-Simulator/internal/log"
)

// DefaultDebounce is how long Submit waits for further listener moves before
// recomputing.
const DefaultDebounce = 50 * time.Millisecond

// Frame is one completed recomputation.
type Frame struct {
	Job      string
	Listener doppler.Point
	Result   *doppler.Result
	Elapsed  time.Duration
}

// Engine recomputes the Doppler transform of a fixed recording whenever the
// listener moves. Only the most recent submission is ever published.
type Engine struct {
	samples  []float64
	rate     int
	traj     doppler.Trajectory
	base     doppler.Options
	debounce time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	latest  *Frame
	lastErr error
	closed  bool
	onFrame func(Frame)
}

// NewEngine keeps samples without copying them. debounce <= 0 uses
// DefaultDebounce.
func NewEngine(samples []float64, sampleRate int, traj doppler.Trajectory, base doppler.Options, debounce time.Duration) *Engine {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Engine{
		samples:  samples,
		rate:     sampleRate,
		traj:     traj,
		base:     base,
		debounce: debounce,
		log:      log.With("component", "engine"),
	}
}

func (e *Engine) SampleRate() int                { return e.rate }
func (e *Engine) Trajectory() doppler.Trajectory { return e.traj }

// InputDuration is the length of the recording in seconds.
func (e *Engine) InputDuration() float64 {
	return float64(len(e.samples)) / float64(e.rate)
}

// OnFrame sets a callback run after each published frame, on the computing
// goroutine.
func (e *Engine) OnFrame(fn func(Frame)) {
	e.mu.Lock()
	e.onFrame = fn
	e.mu.Unlock()
}

// Submit schedules a recomputation for listener and returns its job id. A
// later Submit within the debounce window replaces it.
func (e *Engine) Submit(listener doppler.Point) (string, error) {
	if !finite(listener) {
		return "", ErrInvalidListener
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return "", ErrEngineClosed
	}

	e.gen++
	gen := e.gen
	job := uuid.NewString()

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.run(gen, job, listener)
	})

	e.log.Debug("listener moved", "job", job, "x", listener.X, "y", listener.Y)
	return job, nil
}

// Compute runs the transform for listener synchronously and publishes the
// result unless a newer job was submitted meanwhile.
func (e *Engine) Compute(listener doppler.Point) (Frame, error) {
	if !finite(listener) {
		return Frame{}, ErrInvalidListener
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return Frame{}, ErrEngineClosed
	}
	e.gen++
	gen := e.gen
	e.mu.Unlock()

	return e.compute(gen, uuid.NewString(), listener)
}

func (e *Engine) run(gen uint64, job string, listener doppler.Point) {
	if !e.current(gen) {
		return
	}
	if _, err := e.compute(gen, job, listener); err != nil {
		e.log.Warn("recompute failed", "job", job, "error", err)
	}
}

func (e *Engine) compute(gen uint64, job string, listener doppler.Point) (Frame, error) {
	start := time.Now()
	res, err := doppler.Simulate(e.samples, e.rate, e.traj, e.base.WithListener(listener))
	frame := Frame{Job: job, Listener: listener, Result: res, Elapsed: time.Since(start)}

	e.mu.Lock()
	if e.closed || e.gen != gen {
		e.mu.Unlock()
		e.log.Debug("discarded stale frame", "job", job)
		return frame, err
	}
	if err != nil {
		e.lastErr = err
		e.mu.Unlock()
		return frame, err
	}
	e.latest = &frame
	e.lastErr = nil
	fn := e.onFrame
	e.mu.Unlock()

	e.log.Info("frame ready", "job", job, "samples", len(res.Samples), "elapsed", frame.Elapsed)
	if fn != nil {
		fn(frame)
	}
	return frame, nil
}

func (e *Engine) current(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && e.gen == gen
}

// Snapshot returns the latest published frame.
func (e *Engine) Snapshot() (Frame, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.latest == nil {
		return Frame{}, ErrNoFrame
	}
	return *e.latest, nil
}

// LastError is the error of the most recent current job, if it failed.
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Close cancels any pending job. In-flight computations finish but are not
// published.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.timer != nil {
		e.timer.Stop()
	}
}

func finite(p doppler.Point) bool {
	return finiteFloat(p.X) && finiteFloat(p.Y)
}

func finiteFloat(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
