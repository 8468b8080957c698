package imgrename

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/imgrename-go/pkg/imgrename/models"
)

func TestRenameMovesToIDJpeg(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "alice.png")

	r := NewRenamer(dir, DefaultTargetExt, false)
	dest, reason, err := r.Rename(filepath.Join(dir, "alice.png"), "42")
	if err != nil || reason != models.SkipNone {
		t.Fatalf("Rename() = %q, %q, %v", dest, reason, err)
	}
	if filepath.Base(dest) != "42.jpeg" {
		t.Errorf("Expected 42.jpeg, got %q", filepath.Base(dest))
	}
	if exists(filepath.Join(dir, "alice.png")) {
		t.Error("Expected source to be gone")
	}
	if !exists(filepath.Join(dir, "42.jpeg")) {
		t.Error("Expected destination to exist")
	}
}

func TestRenameCollisionKeepsBothFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "alice.png", "42.jpeg")

	r := NewRenamer(dir, DefaultTargetExt, false)
	_, reason, err := r.Rename(filepath.Join(dir, "alice.png"), "42")
	if err != nil {
		t.Fatal(err)
	}
	if reason != models.SkipCollision {
		t.Fatalf("Expected collision, got %q", reason)
	}

	data, err := os.ReadFile(filepath.Join(dir, "42.jpeg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "42.jpeg" {
		t.Errorf("Destination was overwritten: %q", data)
	}
	if !exists(filepath.Join(dir, "alice.png")) {
		t.Error("Expected source to stay in place")
	}
}

func TestRenameSourceIsDestination(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "42.jpeg")

	r := NewRenamer(dir, DefaultTargetExt, false)
	_, reason, err := r.Rename(filepath.Join(dir, "42.jpeg"), "42")
	if err != nil || reason != models.SkipNone {
		t.Fatalf("Expected rename onto itself to succeed, got %q, %v", reason, err)
	}
	if !exists(filepath.Join(dir, "42.jpeg")) {
		t.Error("Expected file to remain")
	}
}

func TestRenameInvalidID(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "alice.png")

	r := NewRenamer(dir, DefaultTargetExt, false)
	for _, id := range []string{"../42", `a\b`, "..", "."} {
		_, reason, err := r.Rename(filepath.Join(dir, "alice.png"), id)
		if reason != models.SkipRenameFailed || !errors.Is(err, ErrInvalidID) {
			t.Errorf("Rename(id=%q) = %q, %v; expected invalid id failure", id, reason, err)
		}
	}
	if !exists(filepath.Join(dir, "alice.png")) {
		t.Error("Expected source to stay in place")
	}
}

func TestRenameOSFailure(t *testing.T) {
	dir := t.TempDir()

	r := NewRenamer(dir, DefaultTargetExt, false)
	_, reason, err := r.Rename(filepath.Join(dir, "vanished.png"), "42")
	if reason != models.SkipRenameFailed || err == nil {
		t.Errorf("Expected rename failure, got %q, %v", reason, err)
	}
}

func TestRenameDryRunLedger(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "alice.png", "bob.png", "7.jpeg", "carol.png")

	r := NewRenamer(dir, DefaultTargetExt, true)

	// alice → 42 is planned; nothing moves.
	if _, reason, _ := r.Rename(filepath.Join(dir, "alice.png"), "42"); reason != models.SkipNone {
		t.Fatalf("Expected planned rename, got %q", reason)
	}
	if !exists(filepath.Join(dir, "alice.png")) || exists(filepath.Join(dir, "42.jpeg")) {
		t.Fatal("Dry run touched the filesystem")
	}
	if !r.Gone(filepath.Join(dir, "alice.png")) {
		t.Error("Expected alice.png to be marked gone")
	}
	if !r.Planned(filepath.Join(dir, "42.jpeg")) {
		t.Error("Expected 42.jpeg to be marked planned")
	}

	// A second claim on 42.jpeg collides as it would on disk.
	if _, reason, _ := r.Rename(filepath.Join(dir, "bob.png"), "42"); reason != models.SkipCollision {
		t.Errorf("Expected collision with planned destination, got %q", reason)
	}

	// 7.jpeg is moved away first, which frees its name.
	if _, reason, _ := r.Rename(filepath.Join(dir, "7.jpeg"), "8"); reason != models.SkipNone {
		t.Fatalf("Expected planned rename, got %q", reason)
	}
	if _, reason, _ := r.Rename(filepath.Join(dir, "carol.png"), "7"); reason != models.SkipNone {
		t.Errorf("Expected freed destination to be usable, got %q", reason)
	}
}
