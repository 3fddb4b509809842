// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth covers everything but 16, 24 and 32-bit PCM.
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
