package imgrename

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	imageField = "image"
	idField    = "id"
)

// ColumnSelection names the two columns used for the whole run.
type ColumnSelection struct {
	Image string
	ID    string
	// ImageExact and IDExact are true when the column was named exactly
	// "image" / "id" or given explicitly, false when found by substring.
	ImageExact bool
	IDExact    bool
}

// ResolveColumns picks the image-name and id columns from the header.
// Explicit names in opts win. Otherwise a column named exactly "image"
// ("id") is preferred, falling back to the first column whose name contains
// it case-insensitively.
func ResolveColumns(columns []string, opts Options) (ColumnSelection, error) {
	var sel ColumnSelection
	var err error

	sel.Image, sel.ImageExact, err = resolveColumn(columns, imageField, opts.ImageColumn)
	if err != nil {
		return ColumnSelection{}, err
	}
	sel.ID, sel.IDExact, err = resolveColumn(columns, idField, opts.IDColumn)
	if err != nil {
		return ColumnSelection{}, err
	}
	return sel, nil
}

func resolveColumn(columns []string, field, explicit string) (string, bool, error) {
	if explicit != "" {
		for _, c := range columns {
			if c == explicit {
				return c, true, nil
			}
		}
		return "", false, &ColumnError{Field: field, Wanted: explicit, Columns: columns, Err: ErrColumnNotFound}
	}

	for _, c := range columns {
		if c == field {
			return c, true, nil
		}
	}

	fold := cases.Fold()
	needle := fold.String(field)
	for _, c := range columns {
		if strings.Contains(fold.String(c), needle) {
			return c, false, nil
		}
	}
	return "", false, &ColumnError{Field: field, Columns: columns, Err: ErrColumnNotFound}
}
