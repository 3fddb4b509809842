// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// BufferSource serves interleaved samples held in memory.
type BufferSource struct {
	data       []float32
	sampleRate int
	channels   int
	off        int
}

// NewBufferSource wraps data, which must hold whole frames of channels
// samples each.
func NewBufferSource(data []float32, sampleRate, channels int) (*BufferSource, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrInvalidDstSize, len(data), channels)
	}
	return &BufferSource{data: data, sampleRate: sampleRate, channels: channels}, nil
}

// NewMonoBufferSource converts float64 samples, such as a Doppler render,
// into a mono source.
func NewMonoBufferSource(samples []float64, sampleRate int) *BufferSource {
	data := make([]float32, len(samples))
	for i, v := range samples {
		data[i] = float32(v)
	}
	return &BufferSource{data: data, sampleRate: sampleRate, channels: 1}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Len returns the number of samples not yet read.
func (b *BufferSource) Len() int { return len(b.data) - b.off }

// Rewind restarts the stream from the first sample.
func (b *BufferSource) Rewind() { b.off = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.off >= len(b.data) {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%b.channels
	n := copy(dst[:want], b.data[b.off:])
	b.off += n

	if b.off >= len(b.data) {
		return n, io.EOF
	}
	return n, nil
}
