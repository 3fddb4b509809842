// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrUnknownTrajectory = errors.New("unknown trajectory kind")
	ErrInvalidValue      = errors.New("invalid configuration value")
)
