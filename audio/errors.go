// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat is returned by Registry.ForPath when no decoder is
	// registered for the file extension.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrEmptySource reports a source that ended before producing a sample.
	ErrEmptySource = errors.New("audio source is empty")

	ErrInvalidChannels = errors.New("channel count must be positive")
)
