package models

// Outcome is the terminal state of one processed row.
type Outcome string

const (
	OutcomeRenamed  Outcome = "renamed"
	OutcomeNotFound Outcome = "not_found"
	OutcomeSkipped  Outcome = "skipped"
)

// SkipReason explains why a row ended as OutcomeSkipped.
type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipMissingImage SkipReason = "missing_image"
	SkipMissingID    SkipReason = "missing_id"
	SkipCollision    SkipReason = "collision"
	SkipRenameFailed SkipReason = "rename_failed"
)

// Result records what happened to one row.
type Result struct {
	// Row is the sheet row number (1-based).
	Row int `json:"row"`
	// Image is the trimmed image-name cell.
	Image string `json:"image,omitempty"`
	// ID is the trimmed id cell.
	ID string `json:"id,omitempty"`
	// Outcome is the terminal state of the row.
	Outcome Outcome `json:"outcome"`
	// Reason is set when Outcome is OutcomeSkipped.
	Reason SkipReason `json:"reason,omitempty"`
	// Source is the located file, when one was found.
	Source string `json:"source,omitempty"`
	// Destination is the computed target path, when one was computed.
	Destination string `json:"destination,omitempty"`
	// Err holds the OS error for SkipRenameFailed.
	Err error `json:"-"`
}
