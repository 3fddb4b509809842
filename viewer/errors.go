// SPDX-License-Identifier: EPL-2.0

package viewer

import "errors"

var (
	ErrInvalidListener = errors.New("listener position must be finite")
	ErrNoFrame         = errors.New("no frame computed yet")
	ErrEngineClosed    = errors.New("engine closed")
)
