// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio integer decoders to audio.Source.
package pcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/studentenherz/Doppler-Effect-Simulator/audio"
	"github.com/studentenherz/Doppler-Effect-Simulator/utils"
)

// Reader is the part of the go-audio wav and aiff decoders the source needs.
// PCMBuffer returns 0 samples once the data chunk is exhausted.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams normalised samples out of a Reader.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	bufSize    int

	intBuf *goaudio.IntBuffer
	eof    bool
}

var _ audio.Source = (*Source)(nil)

// New wraps dec. bitDepth selects the integer scale; 8-bit data is taken as
// unsigned.
func New(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   bitDepth,
		bufSize:    4096 - 4096%format.NumChannels,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return s.bufSize }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, want),
			Format: &goaudio.Format{
				NumChannels: s.channels,
				SampleRate:  s.sampleRate,
			},
		}
	}
	s.intBuf.Data = s.intBuf.Data[:want]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("decoding pcm: %w", err)
	}

	// Drop a trailing partial frame.
	n -= n % s.channels
	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}
	return n, nil
}
