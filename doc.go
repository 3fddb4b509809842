// SPDX-License-Identifier: EPL-2.0

// Package dopplersim simulates how a recording sounds to a listener standing
// still while its source moves along a path.
//
// The physics lives in the doppler subpackage. This package joins it to the
// audio pipeline: decode a file, mix it to mono, simulate, and optionally
// resample and quantise the result.
//
// # Quick Start
//
//	f, _ := os.Open("horn.wav")
//	src, _ := wav.Decoder{}.Decode(f)
//
//	traj := doppler.Circular{Radius: 50, AngularSpeed: 1}
//	opts := doppler.DefaultOptions().WithListener(doppler.Point{X: 0, Y: 60})
//
//	res, err := dopplersim.Render(src, traj, opts)
//	// res.Samples is the shifted signal at the input rate.
//
// For 16-bit output at another rate:
//
//	pcm, rate, err := dopplersim.RenderToMono16(src, traj, opts, 8000, 4096)
//
// # Supported Formats
//
//   - WAV, 8/16/24/32-bit PCM, via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF, 16/24/32-bit PCM, via formats/aiff
//
// cmd/doppler wires these into an audio.Registry keyed by file extension.
//
// # Viewer
//
// The viewer package serves the render over HTTP and recomputes it whenever
// the listener is moved; `doppler serve` starts it.
package dopplersim
