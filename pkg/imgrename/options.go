// Package imgrename renames image files to the ids listed in a spreadsheet.
package imgrename

import (
	"fmt"
	"strings"
)

// DefaultExtensions is the probing order used to find an image by base name.
var DefaultExtensions = []string{".jpeg", ".jpg", ".png", ".gif", ".bmp"}

const (
	// DefaultImagesDir is the folder searched when none is given.
	DefaultImagesDir = "images"
	// DefaultTargetExt is appended to the id to build the destination name.
	DefaultTargetExt = ".jpeg"
)

// Options configures loading and renaming.
type Options struct {
	// ImagesDir is the folder holding the images. Renames happen in place.
	ImagesDir string
	// Sheet selects the worksheet. Empty means the first sheet.
	Sheet string
	// HeaderRow is the 1-based row holding column names. Zero auto-detects.
	HeaderRow int
	// Range restricts reading to an A1-style range such as A3:F500.
	Range string
	// ImageColumn forces the image-name column instead of resolving it.
	ImageColumn string
	// IDColumn forces the id column instead of resolving it.
	IDColumn string
	// DryRun plans every rename without touching the filesystem.
	DryRun bool
	// Extensions overrides DefaultExtensions when non-empty.
	Extensions []string
	// TargetExt overrides DefaultTargetExt when non-empty.
	TargetExt string
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		ImagesDir: DefaultImagesDir,
		TargetExt: DefaultTargetExt,
	}
}

// Validate reports option values that can never work.
func (o Options) Validate() error {
	if strings.TrimSpace(o.ImagesDir) == "" {
		return fmt.Errorf("images directory must not be empty")
	}
	if o.HeaderRow < 0 {
		return fmt.Errorf("header row must be positive, got %d", o.HeaderRow)
	}
	for _, ext := range o.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	if o.TargetExt != "" && !strings.HasPrefix(o.TargetExt, ".") {
		return fmt.Errorf("target extension %q must start with a dot", o.TargetExt)
	}
	return nil
}

// SearchExtensions returns the extension probing order.
func (o Options) SearchExtensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	return DefaultExtensions
}

// DestinationExt returns the extension given to renamed files.
func (o Options) DestinationExt() string {
	if o.TargetExt != "" {
		return o.TargetExt
	}
	return DefaultTargetExt
}
