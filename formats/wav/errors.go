// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedEncoding is returned for compressed or floating point data.
	ErrUnsupportedEncoding = errors.New("only integer PCM WAV is supported")

	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	ErrNoSamples = errors.New("no samples to write")
)
