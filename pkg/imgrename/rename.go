package imgrename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
)

// Renamer moves located images to <id><ext> inside the same folder.
// It records every destination it claims and every source it moves, so a
// dry run reports the same outcomes a real run would produce.
type Renamer struct {
	dir    string
	ext    string
	dryRun bool

	claimed map[string]string   // destination path → source path
	moved   map[string]struct{} // source paths no longer at their old name
}

// NewRenamer creates a renamer writing into dir.
func NewRenamer(dir, ext string, dryRun bool) *Renamer {
	return &Renamer{
		dir:     dir,
		ext:     ext,
		dryRun:  dryRun,
		claimed: make(map[string]string),
		moved:   make(map[string]struct{}),
	}
}

// Destination returns the target path for id.
func (r *Renamer) Destination(id string) string {
	return filepath.Join(r.dir, id+r.ext)
}

// Gone reports whether path was renamed away earlier in this run.
func (r *Renamer) Gone(path string) bool {
	_, ok := r.moved[filepath.Clean(path)]
	return ok
}

// Planned reports whether path is a destination claimed in this run.
func (r *Renamer) Planned(path string) bool {
	_, ok := r.claimed[filepath.Clean(path)]
	return ok
}

// Rename moves source to the destination for id. A destination that exists
// and is not the source itself is a collision and is never overwritten.
// It returns the destination, the skip reason (SkipNone on success) and
// the OS error for SkipRenameFailed.
func (r *Renamer) Rename(source, id string) (string, models.SkipReason, error) {
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", models.SkipRenameFailed, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	source = filepath.Clean(source)
	dest := filepath.Clean(r.Destination(id))

	if dest != source && r.occupied(dest) {
		return dest, models.SkipCollision, nil
	}

	if !r.dryRun && dest != source {
		if err := os.Rename(source, dest); err != nil {
			return dest, models.SkipRenameFailed, err
		}
	}

	if dest != source {
		delete(r.claimed, source)
		r.moved[source] = struct{}{}
		delete(r.moved, dest)
	}
	r.claimed[dest] = source
	return dest, models.SkipNone, nil
}

// occupied reports whether dest holds a file, on disk or as planned.
func (r *Renamer) occupied(dest string) bool {
	if _, ok := r.claimed[dest]; ok {
		return true
	}
	if _, gone := r.moved[dest]; gone {
		return false
	}
	_, err := os.Lstat(dest)
	return err == nil
}
