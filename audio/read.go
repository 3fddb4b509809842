// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src and returns every interleaved sample it produced.
// bufSize <= 0 uses src.BufSize().
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if ch := src.Channels(); ch > 0 {
		// Keep reads frame aligned.
		bufSize = max(bufSize-bufSize%ch, ch)
	}

	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return out, nil
}

// ReadMono64 mixes src down to mono, drains it and widens the samples to
// float64. It returns the samples and the sample rate.
func ReadMono64(src Source, bufSize int) ([]float64, int, error) {
	mono := NewMonoMixer(src)

	data, err := ReadAll(mono, bufSize)
	if err != nil {
		return nil, 0, err
	}
	if len(data) == 0 {
		return nil, 0, ErrEmptySource
	}

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out, src.SampleRate(), nil
}
