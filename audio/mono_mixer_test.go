package audio

import (
	"errors"
	"io"
	"testing"
)

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(48000, 2, 10)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}
	if mixer.SampleRate() != 48000 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 48000", mixer.SampleRate())
	}
	if mixer.BufSize() != src.BufSize() {
		t.Errorf("MonoMixer.BufSize() = %d, want %d", mixer.BufSize(), src.BufSize())
	}
}

func TestMonoMixer_Mix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		value    func(ch int) float32
		want     float32
	}{
		{"mono passthrough", 1, func(int) float32 { return 0.3 }, 0.3},
		{"stereo", 2, func(ch int) float32 { return []float32{1, 0}[ch] }, 0.5},
		{"stereo cancels", 2, func(ch int) float32 { return []float32{0.8, -0.8}[ch] }, 0},
		{"quad", 4, func(ch int) float32 { return float32(ch) }, 1.5},
		{"5.1", 6, func(int) float32 { return -0.25 }, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newMockSource(8000, tt.channels, 1000, func(_, ch int) float32 { return tt.value(ch) })
			got, err := ReadAll(NewMonoMixer(src), 256)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != 1000 {
				t.Fatalf("len = %d, want 1000", len(got))
			}
			for i, v := range got {
				if diff := v - tt.want; diff > 1e-6 || diff < -1e-6 {
					t.Fatalf("sample %d = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 2, 5, 1))
	buf := make([]float32, 10)

	n, err := mixer.ReadSamples(buf)
	if n != 5 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v, want 5, EOF", n, err)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, EOF", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 2, 5, 1))
	if n, err := mixer.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestMonoMixer_LargeBuffer(t *testing.T) {
	t.Parallel()

	// Larger than the preallocated scratch space.
	mixer := NewMonoMixer(newConstantSource(8000, 2, 20000, 0.5))
	buf := make([]float32, 16384)

	n, err := mixer.ReadSamples(buf)
	if n != len(buf) || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want %d, nil", n, err, len(buf))
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 1)
	if err := NewMonoMixer(src).Close(); err != nil || !src.closed {
		t.Errorf("Close() = %v, closed = %v", err, src.closed)
	}

	if err := NewMonoMixer(brokenSource{channels: 2}).Close(); !errors.Is(err, errBroken) {
		t.Errorf("Close() error = %v, want %v", err, errBroken)
	}
}

func TestMonoMixer_SourceError(t *testing.T) {
	t.Parallel()

	_, err := NewMonoMixer(brokenSource{channels: 2}).ReadSamples(make([]float32, 8))
	if !errors.Is(err, errBroken) {
		t.Errorf("ReadSamples() error = %v, want %v", err, errBroken)
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		mixer := NewMonoMixer(newSineSource(44100, 2, 44100, 440))
		for {
			if _, err := mixer.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
