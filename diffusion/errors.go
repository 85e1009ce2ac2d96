// SPDX-License-Identifier: MIT

package diffusion

import (
	"errors"
	"fmt"
)

// ErrBadParameter indicates an out-of-range knob (iterations, rate, radius, decay, clamp).
var ErrBadParameter = errors.New("diffusion: bad parameter")

// ErrNilMatrix indicates a nil heat matrix.
var ErrNilMatrix = errors.New("diffusion: nil matrix")

func paramErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrBadParameter}, args...)...)
}
