// SPDX-License-Identifier: EPL-2.0

package dopplersim

import "errors"

var ErrInvalidRate = errors.New("output sample rate must be positive")
