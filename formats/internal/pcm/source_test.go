package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentenherz/Doppler-Effect-Simulator/audio"
)

// sliceReader hands out data in chunks of at most step samples.
type sliceReader struct {
	data []int
	step int
	err  error
}

func (r *sliceReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n := copy(buf.Data[:min(len(buf.Data), r.step)], r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestSource_Normalises(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		in       []int
		want     []float32
	}{
		{"16-bit", 16, []int{0, 16384, -32768, -16384}, []float32{0, 0.5, -1, -0.5}},
		{"24-bit", 24, []int{4194304, -8388608}, []float32{0.5, -1}},
		{"8-bit unsigned", 8, []int{128, 0, 192, 64}, []float32{0, -1, 0.5, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := New(&sliceReader{data: tt.in, step: 1024}, &goaudio.Format{NumChannels: 1, SampleRate: 8000}, tt.bitDepth)
			got, err := audio.ReadAll(src, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSource_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	src := New(&sliceReader{data: []int{1, 2, 3, 4, 5}, step: 4}, &goaudio.Format{NumChannels: 2, SampleRate: 8000}, 16)
	assert.Equal(t, 2, src.Channels())
	assert.Equal(t, 4096, src.BufSize())

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// One sample left: not a whole frame.
	for range 2 {
		n, err = src.ReadSamples(buf)
		assert.Zero(t, n)
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("truncated chunk")
	src := New(&sliceReader{err: boom}, &goaudio.Format{NumChannels: 2, SampleRate: 8000}, 16)

	_, err := src.ReadSamples(make([]float32, 1))
	assert.ErrorIs(t, err, audio.ErrInvalidDstSize)

	_, err = src.ReadSamples(make([]float32, 8))
	assert.ErrorIs(t, err, boom)
}
