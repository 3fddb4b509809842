// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// 16, 24 and 32-bit PCM are accepted at any sample rate and channel count;
// samples come out as float32 in [-1, 1]. go-audio needs to seek, so readers
// that cannot are buffered in memory first.
//
//	f, _ := os.Open("horn.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//		// 8-bit and compressed AIFF-C files land here
//	}
package aiff
