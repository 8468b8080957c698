package imgrename

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
)

// Process loads the table at path, resolves its columns and renames every
// matching image. Column and load errors abort; per-row problems are
// reported in the returned Report.
func Process(ctx context.Context, path string, opts Options, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	table, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("table loaded",
		"book", table.BookName,
		"sheet", table.SheetName,
		"header_row", table.HeaderRow,
		"rows", len(table.Rows),
	)
	logger.Debug("columns found", "columns", strings.Join(table.Columns, ", "))

	sel, err := ResolveColumns(table.Columns, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("columns resolved",
		"image_column", sel.Image,
		"image_exact", sel.ImageExact,
		"id_column", sel.ID,
		"id_exact", sel.IDExact,
	)

	return Run(ctx, table, sel, opts, logger)
}

// Run processes table rows in order. Each row ends in exactly one outcome.
// Cancellation is checked between rows; the partial report is returned
// together with the context error.
func Run(ctx context.Context, table *models.Table, sel ColumnSelection, opts Options, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	renamer := NewRenamer(opts.ImagesDir, opts.DestinationExt(), opts.DryRun)
	locator := NewLocator(opts.ImagesDir, opts.SearchExtensions())
	locator.Gone = renamer.Gone
	locator.Planned = renamer.Planned

	report := &Report{
		BookName:  table.BookName,
		SheetName: table.SheetName,
		ImagesDir: opts.ImagesDir,
		Columns:   sel,
		DryRun:    opts.DryRun,
	}

	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := processRow(row, sel, locator, renamer)
		logResult(logger, res, opts.DryRun)
		report.Add(res)
	}
	return report, nil
}

func processRow(row models.Row, sel ColumnSelection, locator *Locator, renamer *Renamer) models.Result {
	res := models.Result{
		Row:   row.Number,
		Image: cellText(row.Value(sel.Image)),
		ID:    cellText(row.Value(sel.ID)),
	}

	if res.Image == "" {
		res.Outcome, res.Reason = models.OutcomeSkipped, models.SkipMissingImage
		return res
	}
	if res.ID == "" {
		res.Outcome, res.Reason = models.OutcomeSkipped, models.SkipMissingID
		return res
	}

	source, ok := locator.Locate(res.Image)
	if !ok {
		res.Outcome = models.OutcomeNotFound
		return res
	}
	res.Source = source

	dest, reason, err := renamer.Rename(source, res.ID)
	res.Destination = dest
	if reason != models.SkipNone {
		res.Outcome, res.Reason, res.Err = models.OutcomeSkipped, reason, err
		return res
	}
	res.Outcome = models.OutcomeRenamed
	return res
}

// cellText trims a cell and treats the literal "nan" left behind by
// spreadsheet exports as empty.
func cellText(value string) string {
	value = strings.TrimSpace(value)
	if value == "nan" {
		return ""
	}
	return value
}

func logResult(logger *slog.Logger, res models.Result, dryRun bool) {
	switch res.Outcome {
	case models.OutcomeRenamed:
		msg := "renamed"
		if dryRun {
			msg = "would rename"
		}
		logger.Info(msg,
			"row", res.Row,
			"from", filepath.Base(res.Source),
			"to", filepath.Base(res.Destination),
		)
	case models.OutcomeNotFound:
		logger.Warn("image not found", "row", res.Row, "image", res.Image)
	case models.OutcomeSkipped:
		switch res.Reason {
		case models.SkipCollision:
			logger.Warn("destination exists, skipping",
				"row", res.Row,
				"destination", filepath.Base(res.Destination),
				"source", filepath.Base(res.Source),
			)
		case models.SkipRenameFailed:
			logger.Error("rename failed",
				"row", res.Row,
				"source", filepath.Base(res.Source),
				"error", res.Err,
			)
		default:
			logger.Debug("row skipped", "row", res.Row, "reason", string(res.Reason), "image", res.Image)
		}
	}
}
