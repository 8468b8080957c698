package imgrename

import (
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Locator finds an image file in Dir from a base name.
type Locator struct {
	Dir        string
	Extensions []string
	// Gone, when set, hides paths that are known to have been moved away
	// earlier in the run but may still exist on disk (dry runs).
	Gone func(path string) bool
	// Planned, when set, reports destinations claimed earlier in the run
	// that a dry run never created on disk.
	Planned func(path string) bool
}

// NewLocator returns a locator over dir probing exts in order.
func NewLocator(dir string, exts []string) *Locator {
	return &Locator{Dir: dir, Extensions: exts}
}

// Locate returns the first existing file among base+ext for each extension,
// then base itself. Names with non-ASCII text are retried in NFC and NFD
// form, because file systems disagree on how accented names are stored.
func (l *Locator) Locate(base string) (string, bool) {
	if base == "" {
		return "", false
	}
	for _, name := range nameVariants(base) {
		for _, ext := range l.Extensions {
			if path, ok := l.probe(name + ext); ok {
				return path, true
			}
		}
		if path, ok := l.probe(name); ok {
			return path, true
		}
	}
	return "", false
}

func (l *Locator) probe(name string) (string, bool) {
	path := filepath.Join(l.Dir, name)
	if l.Gone != nil && l.Gone(path) {
		return "", false
	}
	if l.Planned != nil && l.Planned(path) {
		return path, true
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}

func nameVariants(base string) []string {
	variants := []string{base}
	if isASCII(base) {
		return variants
	}
	for _, form := range []norm.Form{norm.NFC, norm.NFD} {
		v := form.String(base)
		if !slices.Contains(variants, v) {
			variants = append(variants, v)
		}
	}
	return variants
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
