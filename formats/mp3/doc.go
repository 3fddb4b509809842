// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields 16-bit stereo, so the Source reports two channels even
// for mono files; audio.ReadMono64 folds them back together.
//
//	f, _ := os.Open("siren.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	samples, rate, err := audio.ReadMono64(src, 0)
//
// Streams that do not start with a valid frame fail with ErrInvalidMP3.
package mp3
