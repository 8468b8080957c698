package imgrename

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnNotFound indicates a required column could not be resolved.
var ErrColumnNotFound = errors.New("column not found")

// ErrInvalidID indicates an id that cannot be used as a file name.
var ErrInvalidID = errors.New("invalid id for file name")

// LoadError represents an error while reading the workbook.
type LoadError struct {
	BookName  string
	SheetName string
	Err       error
}

func (e *LoadError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("load %q: %v", e.BookName, e.Err)
	}
	return fmt.Sprintf("load %q (sheet %q): %v", e.BookName, e.SheetName, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ColumnError reports which field could not be mapped to a column.
type ColumnError struct {
	Field   string // "image" or "id"
	Wanted  string // explicit column name, empty when resolved heuristically
	Columns []string
	Err     error
}

func (e *ColumnError) Error() string {
	if e.Wanted != "" {
		return fmt.Sprintf("%s column %q: %v (available: %s)", e.Field, e.Wanted, e.Err, strings.Join(e.Columns, ", "))
	}
	return fmt.Sprintf("%s column: %v (available: %s)", e.Field, e.Err, strings.Join(e.Columns, ", "))
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}
