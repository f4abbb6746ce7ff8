package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"weave/internal/adapter/fs"
)

func writeFixture(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	// Canonical file: inline comments always reproduce their source.
	writeFixture(t, tmpDir, "app.py", "# Comment\nprint(1)\n")
	// Non-canonical block comment: the continuation line is not aligned
	// under the comment text, so the canonical rendering differs.
	cssPath := writeFixture(t, tmpDir, "style.css", "/* Test 1\nTest 2 */\n")
	// Unknown language, skipped under the "skip" fallback.
	writeFixture(t, tmpDir, "data.unknown", "raw bytes\n")

	table := newTable(t)
	walker := fs.NewWalker(nil, nil)
	loadUC := NewLoadUseCase(table, "auto", "skip")
	saveUC := NewSaveUseCase(table)
	checkUC := NewCheckUseCase(walker, loadUC, saveUC)

	result, err := checkUC.Check(tmpDir, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FilesChecked != 2 {
		t.Errorf("expected 2 files checked, got %d", result.FilesChecked)
	}
	if result.FilesSkipped != 1 {
		t.Errorf("expected 1 file skipped, got %d", result.FilesSkipped)
	}
	if len(result.Rewrites) != 1 || result.Rewrites[0] != cssPath {
		t.Errorf("expected %s as the only rewrite, got %v", cssPath, result.Rewrites)
	}

	// Dry run leaves the file untouched.
	data, err := os.ReadFile(cssPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/* Test 1\nTest 2 */\n" {
		t.Errorf("dry run modified the file: %q", string(data))
	}
}

func TestCheck_Write(t *testing.T) {
	tmpDir := t.TempDir()
	cssPath := writeFixture(t, tmpDir, "style.css", "/* Test 1\nTest 2 */\n")

	table := newTable(t)
	walker := fs.NewWalker(nil, nil)
	loadUC := NewLoadUseCase(table, "auto", "skip")
	saveUC := NewSaveUseCase(table)
	checkUC := NewCheckUseCase(walker, loadUC, saveUC)

	result, err := checkUC.Check(tmpDir, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rewrites) != 1 {
		t.Fatalf("expected 1 rewrite, got %v", result.Rewrites)
	}

	data, err := os.ReadFile(cssPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/* Test 1\n   Test 2 */\n" {
		t.Errorf("unexpected canonical rendering: %q", string(data))
	}

	// A second pass finds nothing left to rewrite.
	result, err = checkUC.Check(tmpDir, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Rewrites) != 0 {
		t.Errorf("expected canonical form to be stable, got rewrites %v", result.Rewrites)
	}
}
