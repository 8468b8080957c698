// Package models defines data structures shared by the loader and the renamer.
package models

// Row represents a single spreadsheet entry keyed by header name.
type Row struct {
	// Number is the sheet row number (1-based).
	Number int `json:"row"`
	// Cells maps column name to the raw cell text.
	Cells map[string]string `json:"cells"`
}

// Value returns the cell text under column, or "" when the cell is missing.
func (r Row) Value(column string) string {
	if r.Cells == nil {
		return ""
	}
	return r.Cells[column]
}
