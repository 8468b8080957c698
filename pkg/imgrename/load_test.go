package imgrename

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadWorkbookWithTitleRow(t *testing.T) {
	book := filepath.Join(t.TempDir(), "Danh sach.xlsx")
	writeWorkbook(t, book, "Sheet1", [][]any{
		{"Danh sach tham du hoi nghi"},
		{},
		{"STT", "Ho ten", "image", "id"},
		{1, "Nguyen Van A", "a01", 1001},
		{2, "Tran Thi B", "b02", 1002},
	})

	tbl, err := Load(book, DefaultOptions())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tbl.BookName != "Danh sach.xlsx" || tbl.SheetName != "Sheet1" {
		t.Errorf("Unexpected book/sheet: %q / %q", tbl.BookName, tbl.SheetName)
	}
	if tbl.HeaderRow != 3 {
		t.Errorf("Expected header row 3, got %d", tbl.HeaderRow)
	}
	if !reflect.DeepEqual(tbl.Columns, []string{"STT", "Ho ten", "image", "id"}) {
		t.Errorf("Unexpected columns: %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[1].Number != 5 || tbl.Rows[1].Value("id") != "1002" {
		t.Errorf("Unexpected rows: %+v", tbl.Rows)
	}
}

func TestLoadNamedSheetAndRange(t *testing.T) {
	book := filepath.Join(t.TempDir(), "book.xlsx")
	writeWorkbook(t, book, "Guests", [][]any{
		{"image", "id"},
		{"alice", 1},
		{"bob", 2},
		{"carol", 3},
	})

	opts := DefaultOptions()
	opts.Range = "'Guests'!A1:B3"
	tbl, err := Load(book, opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tbl.SheetName != "Guests" {
		t.Errorf("Expected sheet from range reference, got %q", tbl.SheetName)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("Expected 2 rows inside range, got %d", len(tbl.Rows))
	}

	opts = DefaultOptions()
	opts.Sheet = "Missing"
	if _, err := Load(book, opts); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestLoadForcedHeaderRow(t *testing.T) {
	book := filepath.Join(t.TempDir(), "book.xlsx")
	writeWorkbook(t, book, "Sheet1", [][]any{
		{"list", "2024"},
		{"image", "id"},
		{"alice", 1},
	})

	opts := DefaultOptions()
	opts.HeaderRow = 2
	tbl, err := Load(book, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tbl.Columns, []string{"image", "id"}) {
		t.Errorf("Unexpected columns: %v", tbl.Columns)
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	if err := os.WriteFile(path, []byte("image,id\nalice,42\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	opts.Sheet = "ignored"
	tbl, err := Load(path, opts)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tbl.SheetName != "" {
		t.Errorf("Expected no sheet for CSV, got %q", tbl.SheetName)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0].Value("id") != "42" {
		t.Errorf("Unexpected rows: %+v", tbl.Rows)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.xlsx"), DefaultOptions()); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}

	txt := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(txt, []byte("image,id"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(txt, DefaultOptions()); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for .txt, got %v", err)
	}

	broken := filepath.Join(dir, "broken.xlsx")
	if err := os.WriteFile(broken, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(broken, DefaultOptions())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for corrupt workbook, got %v", err)
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.BookName != "broken.xlsx" {
		t.Errorf("Expected *LoadError naming the book, got %v", err)
	}
}

func TestLoadEmptySheet(t *testing.T) {
	book := filepath.Join(t.TempDir(), "empty.xlsx")
	writeWorkbook(t, book, "Sheet1", nil)

	tbl, err := Load(book, DefaultOptions())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tbl.HeaderRow != 0 || len(tbl.Columns) != 0 {
		t.Errorf("Expected empty table, got %+v", tbl)
	}
	if _, err := ResolveColumns(tbl.Columns, DefaultOptions()); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"empty dir", func(o *Options) { o.ImagesDir = " " }, true},
		{"negative header", func(o *Options) { o.HeaderRow = -1 }, true},
		{"bad extension", func(o *Options) { o.Extensions = []string{"png"} }, true},
		{"bad target", func(o *Options) { o.TargetExt = "jpg" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			if err := opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
