package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/studentenherz/Doppler-Effect-Simulator/audio"
)

// mockMP3Reader serves int16 samples as little-endian bytes, step bytes at a
// time.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	step       int
	err        error
}

func newMockReader(rate, step int, samples ...int16) *mockMP3Reader {
	var data []byte
	for _, s := range samples {
		data = binary.LittleEndian.AppendUint16(data, uint16(s))
	}
	return &mockMP3Reader{sampleRate: rate, data: data, step: step}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.data) == 0 {
		return 0, io.EOF
	}
	n := copy(buf[:min(len(buf), m.step)], m.data)
	m.data = m.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"empty":   nil,
		"garbage": []byte("This is not MP3 data"),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, ErrInvalidMP3) {
				t.Errorf("Decode() error = %v, want %v", err, ErrInvalidMP3)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(44100, 4), sampleRate: 44100, buf: make([]byte, 8192)}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	// Short reads from the decoder are stitched into whole buffers.
	in := []int16{0, 16384, -16384, -32768, 8192, -8192}
	src := &source{dec: newMockReader(22050, 3, in...), sampleRate: 22050}

	got, err := audio.ReadAll(src, 4)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, -1, 0.25, -0.25}
	if len(got) != len(want) {
		t.Fatalf("decoded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(8000, 64, 1, 2, 3), sampleRate: 8000}
	buf := make([]float32, 8)

	n, err := src.ReadSamples(buf)
	if n != 2 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v, want 2, EOF", n, err)
	}
	if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := &source{dec: newMockReader(8000, 4, 1, 2), sampleRate: 8000}
	if _, err := src.ReadSamples(make([]float32, 1)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples(1) error = %v, want %v", err, audio.ErrInvalidDstSize)
	}

	boom := errors.New("corrupt frame")
	src = &source{dec: &mockMP3Reader{err: boom}, sampleRate: 8000}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 2*44100)
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := &source{dec: newMockReader(44100, 4608, samples...), sampleRate: 44100, buf: make([]byte, 8192)}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
