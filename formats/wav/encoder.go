// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/studentenherz/Doppler-Effect-Simulator/utils"
)

// Encoder writes mono float samples as integer PCM through go-audio's
// encoder, which patches the chunk sizes on Close and so needs a seekable
// destination.
type Encoder struct {
	// BitDepth is 16 or 24. Zero means 16.
	BitDepth int
	// Software is stored in the INFO chunk when set.
	Software string
	// Comments is stored in the INFO chunk when set.
	Comments string
}

const encodeChunk = 4096

func (e Encoder) bitDepth() (int, error) {
	switch e.BitDepth {
	case 0:
		return 16, nil
	case 16, 24:
		return e.BitDepth, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, e.BitDepth)
}

// Encode writes samples, clamped to [-1, 1], as a complete WAV file.
func (e Encoder) Encode(w io.WriteSeeker, samples []float64, sampleRate int) error {
	depth, err := e.bitDepth()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}

	enc := wav.NewEncoder(w, sampleRate, depth, 1, formatPCM)
	if e.Software != "" || e.Comments != "" {
		enc.Metadata = &wav.Metadata{Software: e.Software, Comments: e.Comments}
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, min(len(samples), encodeChunk)),
		SourceBitDepth: depth,
	}

	for i := 0; i < len(samples); i += encodeChunk {
		part := samples[i:min(i+encodeChunk, len(samples))]
		buf.Data = buf.Data[:len(part)]
		for j, v := range part {
			buf.Data[j] = utils.FloatToPCM(v, depth)
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("encoding wav: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising wav: %w", err)
	}
	return nil
}
