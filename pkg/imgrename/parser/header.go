package parser

import (
	"strings"

	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
)

// HeaderDetectionParams holds parameters for header row detection.
type HeaderDetectionParams struct {
	// MinNonemptyCells is the number of filled cells a row needs to be taken
	// as the header. Title rows above the table usually fill a single cell.
	MinNonemptyCells int
}

// DefaultHeaderParams returns default header detection parameters.
func DefaultHeaderParams() HeaderDetectionParams {
	return HeaderDetectionParams{
		MinNonemptyCells: 2,
	}
}

// DetectHeaderRow returns the 1-based row number of the first row inside
// area with at least params.MinNonemptyCells filled cells. If no row is
// dense enough, the first non-empty row is used. It returns 0 for an empty grid.
func DetectHeaderRow(grid [][]string, area *models.Area, params HeaderDetectionParams) int {
	minRow, maxRow, minCol, maxCol := findDataBounds(grid, area)
	if minRow < 0 {
		return 0
	}

	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		if countNonEmptyCells(grid, rowIdx, rowIdx, minCol, maxCol) >= params.MinNonemptyCells {
			return rowIdx + 1
		}
	}
	return minRow + 1
}

// findDataBounds finds the bounding box of non-empty cells, 0-based.
// minRow is -1 when there is no data.
func findDataBounds(rows [][]string, area *models.Area) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		if area != nil && !area.ContainsRow(rowIdx+1) {
			continue
		}
		for colIdx, cell := range row {
			if area != nil && !area.ContainsCol(colIdx+1) {
				continue
			}
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if strings.TrimSpace(row[colIdx]) != "" {
				count++
			}
		}
	}
	return count
}
