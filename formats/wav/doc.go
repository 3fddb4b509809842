// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count and
// any sample rate. Parsing is done by github.com/go-audio/wav, which needs an
// io.ReadSeeker; other readers are buffered in memory first.
//
//	file, _ := os.Open("horn.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// Samples are scaled to [-1, 1] by the full scale of their bit depth.
//
// # Encoding
//
// WriteWAV16 streams a mono 16-bit file to any io.Writer, which is what the
// viewer uses for HTTP responses. Encoder goes through go-audio and writes
// 16- or 24-bit files to an io.WriteSeeker such as *os.File:
//
//	out, _ := os.Create("shifted.wav")
//	err := wav.Encoder{BitDepth: 24}.Encode(out, samples, 44100)
//
// # Errors
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header or no fmt chunk
//   - ErrUnsupportedEncoding: floating point or compressed data
//   - ErrUnsupportedBitDepth: a depth other than the ones listed above
//   - ErrNoSamples: Encode was given nothing to write
package wav
