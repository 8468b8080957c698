// Package parser turns spreadsheet grids into header-keyed rows.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet returns the cell grid of a sheet. Index i of the result holds
// sheet row i+1. Numeric cells are returned unformatted so an id typed as 42
// never comes back as "42.00" because of a number format.
func ReadSheet(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// ExtractRows splits grid into header columns and data rows.
// headerRow is the 1-based sheet row holding the column names. When area is
// non-nil only the cells inside it are read. Rows with no data are dropped.
func ExtractRows(grid [][]string, headerRow int, area *models.Area) ([]string, []models.Row) {
	if headerRow < 1 || headerRow > len(grid) {
		return nil, nil
	}

	firstCol, lastCol := columnSpan(grid, headerRow, area)
	if lastCol < firstCol {
		return nil, nil
	}

	header := grid[headerRow-1]
	names := make([]string, 0, lastCol-firstCol+1)
	for colIdx := firstCol; colIdx <= lastCol; colIdx++ {
		names = append(names, cellAt(header, colIdx))
	}
	columns := uniqueColumnNames(names, firstCol)

	var result []models.Row
	for rowIdx := headerRow; rowIdx < len(grid); rowIdx++ {
		rowNum := rowIdx + 1 // 1-based row index
		if area != nil && !area.ContainsRow(rowNum) {
			continue
		}

		row := grid[rowIdx]
		cells := make(map[string]string, len(columns))
		hasData := false
		for i, name := range columns {
			value := cellAt(row, firstCol+i)
			if strings.TrimSpace(value) != "" {
				hasData = true
			}
			cells[name] = value
		}

		if hasData {
			result = append(result, models.Row{
				Number: rowNum,
				Cells:  cells,
			})
		}
	}

	return columns, result
}

// columnSpan returns the 0-based inclusive column range to read.
func columnSpan(grid [][]string, headerRow int, area *models.Area) (int, int) {
	if area != nil {
		return area.C1 - 1, area.C2 - 1
	}
	width := 0
	for rowIdx := headerRow - 1; rowIdx < len(grid); rowIdx++ {
		if n := len(grid[rowIdx]); n > width {
			width = n
		}
	}
	return 0, width - 1
}

func cellAt(row []string, colIdx int) string {
	if colIdx < 0 || colIdx >= len(row) {
		return ""
	}
	return row[colIdx]
}

// uniqueColumnNames names blank headers "Unnamed: <index>" and suffixes
// repeated names with ".1", ".2", ... so every column is addressable.
func uniqueColumnNames(names []string, firstCol int) []string {
	out := make([]string, len(names))
	taken := make(map[string]struct{}, len(names))
	suffix := make(map[string]int)
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			name = "Unnamed: " + strconv.Itoa(firstCol+i)
		}
		candidate := name
		if _, dup := taken[candidate]; dup {
			for n := suffix[name] + 1; ; n++ {
				candidate = name + "." + strconv.Itoa(n)
				if _, used := taken[candidate]; !used {
					suffix[name] = n
					break
				}
			}
		}
		taken[candidate] = struct{}{}
		out[i] = candidate
	}
	return out
}
