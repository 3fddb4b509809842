// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var ErrInvalidVorbis = errors.New("invalid Ogg Vorbis stream")
