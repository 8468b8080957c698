package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
	"github.com/xuri/excelize/v2"
)

// ParseReference parses a range reference such as A2:D200, $A$2:$D$200 or
// 'Sheet 1'!A2:D200. The sheet name is empty when the reference has none.
func ParseReference(ref string) (string, *models.Area, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil, fmt.Errorf("empty range reference")
	}

	var sheetName string
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, err := parseRangeToArea(rangeStr)
	if err != nil {
		return "", nil, fmt.Errorf("range %q: %w", ref, err)
	}
	return sheetName, area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to an Area.
func parseRangeToArea(rangeStr string) (*models.Area, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected <start>:<end>")
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, err
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, err
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Area{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
