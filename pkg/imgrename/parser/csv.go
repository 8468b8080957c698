package parser

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadCSV reads comma-separated records into a grid laid out like
// ReadSheet: index i holds file line i+1. Blank lines stay as nil rows so
// reported row numbers match what an editor shows.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var grid [][]string
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		for len(grid) < line-1 {
			grid = append(grid, nil)
		}
		if first && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], utf8BOM)
		}
		first = false
		grid = append(grid, record)
	}
	return grid, nil
}
