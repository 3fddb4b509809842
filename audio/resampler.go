// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/studentenherz/Doppler-Effect-Simulator/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation over a sliding window of four frames. Channel layout is kept.
// When downsampling, frames pass through a one-pole low-pass first.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// win[0..3] hold frames t-1, t0, t+1, t+2; output lies between win[1]
	// and win[2] at fraction pos. Slots past either end of the stream repeat
	// the nearest real frame and have live[i] == false.
	win  [4][]float32
	live [4]bool
	pos  float64

	readBuf []float32
	primed  bool
	eof     bool // src exhausted
	done    bool // window drained

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		readBuf:  make([]float32, channels),
		lowpass:  step > 1,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampled source: %w", err)
	}
	return nil
}

// readFrame reads one frame into dst, reporting whether a frame arrived.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.readBuf)
	got := n == r.channels
	if got {
		copy(dst, r.readBuf)
		if r.lowpass {
			for c := range r.channels {
				dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
				r.state[c] = dst[c]
			}
		}
	}
	if errors.Is(err, io.EOF) {
		r.eof = true
		return got, nil
	}
	if err != nil {
		return got, fmt.Errorf("reading frame: %w", err)
	}
	return got, nil
}

// prime loads the first frames. The frame before the start repeats the
// first one.
func (r *Resampler) prime() error {
	r.primed = true

	// Seed the filter with the first frame to avoid a fade-in.
	lowpass := r.lowpass
	r.lowpass = false
	ok, err := r.readFrame(r.win[1])
	r.lowpass = lowpass
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.state, r.win[1])
	copy(r.win[0], r.win[1])
	r.live[1] = true

	for i := 2; i < len(r.win); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	return nil
}

// fill reads into slot i, padding with slot i-1 once the source is dry.
func (r *Resampler) fill(i int) error {
	ok, err := r.readFrame(r.win[i])
	if err != nil {
		return err
	}
	r.live[i] = ok
	if !ok {
		copy(r.win[i], r.win[i-1])
	}
	return nil
}

// advance shifts the window by one frame.
func (r *Resampler) advance() error {
	last := r.win[0]
	copy(r.win[:], r.win[1:])
	r.win[3] = last
	copy(r.live[:], r.live[1:])

	return r.fill(3)
}

// ReadSamples produces output at the target rate. len(dst) must be a multiple
// of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			if errors.Is(err, io.EOF) {
				r.done = true
			}
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.live[1] {
			r.done = true
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written*r.channels+c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
