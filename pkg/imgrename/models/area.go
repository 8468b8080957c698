package models

// Area represents cell coordinate bounds restricting what is read.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// ContainsRow reports whether row lies between R1 and R2.
func (a Area) ContainsRow(row int) bool {
	return row >= a.R1 && row <= a.R2
}

// ContainsCol reports whether col lies between C1 and C2.
func (a Area) ContainsCol(col int) bool {
	return col >= a.C1 && col <= a.C2
}
