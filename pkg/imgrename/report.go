package imgrename

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
)

// Report aggregates row outcomes for a run.
type Report struct {
	BookName  string
	SheetName string
	ImagesDir string
	Columns   ColumnSelection
	DryRun    bool

	Renamed  int
	NotFound int
	Skipped  int

	// NotFoundRows and SkippedRows keep table order.
	NotFoundRows []models.Result
	SkippedRows  []models.Result
	// Results holds every processed row in table order.
	Results []models.Result
}

// Add records one row result.
func (r *Report) Add(res models.Result) {
	r.Results = append(r.Results, res)
	switch res.Outcome {
	case models.OutcomeRenamed:
		r.Renamed++
	case models.OutcomeNotFound:
		r.NotFound++
		r.NotFoundRows = append(r.NotFoundRows, res)
	case models.OutcomeSkipped:
		r.Skipped++
		r.SkippedRows = append(r.SkippedRows, res)
	}
}

// Total returns the number of processed rows.
func (r *Report) Total() int {
	return r.Renamed + r.NotFound + r.Skipped
}

// Truncate returns at most limit results and how many were left out.
// A limit of zero or less keeps everything.
func Truncate(results []models.Result, limit int) ([]models.Result, int) {
	if limit <= 0 || len(results) <= limit {
		return results, 0
	}
	return results[:limit], len(results) - limit
}

// Describe renders a result as a single report line.
func Describe(res models.Result) string {
	switch res.Outcome {
	case models.OutcomeNotFound:
		return fmt.Sprintf("Row %d: %s", res.Row, res.Image)
	case models.OutcomeRenamed:
		return fmt.Sprintf("Row %d: %s → %s", res.Row, filepath.Base(res.Source), filepath.Base(res.Destination))
	}

	switch res.Reason {
	case models.SkipMissingImage:
		return fmt.Sprintf("Row %d: missing image name", res.Row)
	case models.SkipMissingID:
		return fmt.Sprintf("Row %d: missing id for '%s'", res.Row, res.Image)
	case models.SkipCollision:
		return fmt.Sprintf("Row %d: %s already exists, kept %s", res.Row, filepath.Base(res.Destination), filepath.Base(res.Source))
	case models.SkipRenameFailed:
		return fmt.Sprintf("Row %d: rename %s failed: %v", res.Row, filepath.Base(res.Source), res.Err)
	default:
		return fmt.Sprintf("Row %d: skipped", res.Row)
	}
}
