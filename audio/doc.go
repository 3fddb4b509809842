// SPDX-License-Identifier: EPL-2.0

// Package audio is the sample-stream boundary between decoded files and the
// Doppler transform.
//
// It contains:
//   - Source and Decoder, implemented by the formats/* packages
//   - Registry, mapping file extensions to decoders
//   - MonoMixer, which averages channels into one
//   - Resampler, a streaming Catmull-Rom rate converter
//   - BufferSource, an in-memory Source
//   - ReadAll and ReadMono64, which drain a Source into a slice
//
// # Sample Format
//
// Samples are float32 in [-1, 1], interleaved by channel. ReadMono64 widens
// them to float64, the representation the doppler package works in.
//
// # Loading a file for the transform
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.ForPath("horn.wav")
//	src, err := dec.Decode(file)
//	samples, rate, err := audio.ReadMono64(src, 0)
//
// # Changing the output rate
//
// The transform keeps the input rate. To deliver another rate, wrap the
// result in a BufferSource and stream it through a Resampler:
//
//	res := audio.NewResampler(audio.NewMonoBufferSource(out, rate), 8000)
//	pcm, err := audio.ReadAll(res, 4096)
//
// # Error Handling
//
// ReadSamples returns io.EOF when the stream ends; n may be non-zero on the
// same call.
package audio
