// SPDX-License-Identifier: MIT

package heat

import (
	"encoding/json"
	"fmt"
	"io"
)

// ChangeRecord is one cell-level change reported by the diff tool.
// The column is addressed by Column when set, otherwise by ColumnName.
type ChangeRecord struct {
	Table      int    `json:"table_index"`
	Column     *int   `json:"column_index,omitempty"`
	ColumnName string `json:"column_name,omitempty"`
	Count      int    `json:"change_count"`
}

// Col is a convenience constructor for ChangeRecord.Column.
func Col(i int) *int { return &i }

// DecodeRecords reads a JSON array of change records.
func DecodeRecords(r io.Reader) ([]ChangeRecord, error) {
	var out []ChangeRecord
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("heat: decode records: %w", err)
	}

	return out, nil
}
