// SPDX-License-Identifier: MIT

package cluster

import "fmt"

// Tier is the intensity class of a row.
type Tier int

const (
	// TierLow rows have no cell above the medium threshold.
	TierLow Tier = iota
	// TierMedium rows have a cell above the medium threshold but none above high.
	TierMedium
	// TierHigh rows have at least one cell above the high threshold.
	TierHigh
)

// String returns "LOW", "MEDIUM" or "HIGH".
func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "HIGH"
	case TierMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "HIGH":
		*t = TierHigh
	case "MEDIUM":
		*t = TierMedium
	case "LOW":
		*t = TierLow
	default:
		return fmt.Errorf("cluster: unknown tier %q", b)
	}

	return nil
}
