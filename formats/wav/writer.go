// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const headerSize = 44

// header16 builds the canonical 44-byte header of a mono 16-bit PCM file.
func header16(sampleRate, samples int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)
	dataSize := uint32(samples * blockAlign)

	h := make([]byte, headerSize)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], channels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)
	return h
}

// WriteWAV16 writes samples as a mono 16-bit PCM WAV. w need not seek, so it
// can be a network stream.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if _, err := w.Write(header16(sampleRate, len(samples))); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	const chunk = 8192
	buf := make([]byte, 2*min(len(samples), chunk))

	for i := 0; i < len(samples); i += chunk {
		part := samples[i:min(i+chunk, len(samples))]
		out := buf[:2*len(part)]
		for j, s := range part {
			binary.LittleEndian.PutUint16(out[2*j:], uint16(s))
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}
