package models

// Table represents the rows read from one sheet, with its header.
type Table struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the rows were read from. Empty for CSV input.
	SheetName string `json:"sheet_name,omitempty"`
	// HeaderRow is the sheet row number holding the column names (1-based).
	HeaderRow int `json:"header_row"`
	// Columns lists the header names in sheet order.
	Columns []string `json:"columns"`
	// Rows contains the non-empty data rows below the header.
	Rows []Row `json:"rows,omitempty"`
}

