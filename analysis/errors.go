// SPDX-License-Identifier: MIT

package analysis

import "errors"

// ErrBadParameter indicates an invalid threshold or block count.
var ErrBadParameter = errors.New("analysis: bad parameter")
