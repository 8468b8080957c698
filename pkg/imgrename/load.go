package imgrename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
	"github.com/ukaji3/imgrename-go/pkg/imgrename/parser"
	"github.com/xuri/excelize/v2"
)

var workbookExts = []string{".xlsx", ".xlsm", ".xltx", ".xltm"}

// Load reads the table described by opts from a workbook or CSV file.
func Load(path string, opts Options) (*models.Table, error) {
	bookName := filepath.Base(path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{BookName: bookName, Err: ErrFileNotFound}
		}
		return nil, &LoadError{BookName: bookName, Err: err}
	}

	sheetName := opts.Sheet
	var area *models.Area
	if opts.Range != "" {
		refSheet, a, err := parser.ParseReference(opts.Range)
		if err != nil {
			return nil, err
		}
		if sheetName == "" {
			sheetName = refSheet
		}
		area = a
	}

	ext := strings.ToLower(filepath.Ext(path))
	var (
		grid [][]string
		err  error
	)
	switch {
	case ext == ".csv":
		grid, err = readCSVFile(path)
		sheetName = ""
	case slices.Contains(workbookExts, ext):
		grid, sheetName, err = readWorkbook(path, sheetName)
	default:
		return nil, &LoadError{BookName: bookName, Err: fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)}
	}
	if err != nil {
		return nil, &LoadError{BookName: bookName, SheetName: sheetName, Err: err}
	}

	headerRow := opts.HeaderRow
	if headerRow == 0 {
		headerRow = parser.DetectHeaderRow(grid, area, parser.DefaultHeaderParams())
	}

	table := &models.Table{
		BookName:  bookName,
		SheetName: sheetName,
		HeaderRow: headerRow,
	}
	if headerRow == 0 {
		// Nothing to read: the resolver reports the missing columns.
		return table, nil
	}
	table.Columns, table.Rows = parser.ExtractRows(grid, headerRow, area)
	return table, nil
}

func readWorkbook(path, sheetName string) ([][]string, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, sheetName, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if sheetName == "" {
		if len(sheetList) == 0 {
			return nil, "", fmt.Errorf("%w: workbook has no sheets", ErrInvalidFormat)
		}
		sheetName = sheetList[0]
	} else if !slices.Contains(sheetList, sheetName) {
		return nil, sheetName, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	grid, err := parser.ReadSheet(f, sheetName)
	if err != nil {
		return nil, sheetName, err
	}
	return grid, sheetName, nil
}

func readCSVFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	grid, err := parser.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return grid, nil
}
