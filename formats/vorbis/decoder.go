// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
	"github.com/studentenherz/Doppler-Effect-Simulator/audio"
)

// oggReader is the part of oggvorbis.Reader the source needs. Read returns a
// count of values, always a multiple of Channels.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      oggReader
	channels int
	eof      bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 - 4096%s.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:want])
	if errors.Is(err, io.EOF) {
		s.eof = true
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	return n, nil
}

// Decoder reads Ogg Vorbis streams through jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVorbis, err)
	}

	return &source{dec: dec, channels: dec.Channels()}, nil
}
