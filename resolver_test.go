package dcv

// Notes:
// - Resolve: single file, recursive directory walk, extension filter,
//   output collision detection, missing input
// - Uses t.TempDir() fixtures; output order must be deterministic

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeFixture creates a file with parent directories under root.
func writeFixture(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("fixture"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestResolve - Single File
// ---------------------------------------------------------------------------

func TestResolveSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFixture(t, dir, "report.md")

	files, err := Resolve(input, []string{".md", ".markdown"}, "out", ".pdf")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	want := filepath.Join("out", "report.pdf")
	if files[0].OutputPath != want {
		t.Errorf("output = %q, want %q", files[0].OutputPath, want)
	}
}

func TestResolveSingleFileWrongExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFixture(t, dir, "report.txt")

	_, err := Resolve(input, []string{".md"}, "out", ".pdf")
	if !errors.Is(err, ErrUnsupportedExtension) {
		t.Errorf("error = %v, want ErrUnsupportedExtension", err)
	}
}

func TestResolveSingleFileCaseInsensitiveExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFixture(t, dir, "REPORT.MD")

	files, err := Resolve(input, []string{".md"}, "out", ".pdf")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
}

// ---------------------------------------------------------------------------
// TestResolve - Directory Walk
// ---------------------------------------------------------------------------

func TestResolveDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "b.md")
	writeFixture(t, dir, "a.md")
	writeFixture(t, dir, "notes.txt")
	writeFixture(t, dir, "sub/deep.md")

	files, err := Resolve(dir, []string{".md"}, "out", ".pdf")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	wantOutputs := []string{
		filepath.Join("out", "a.pdf"),
		filepath.Join("out", "b.pdf"),
		filepath.Join("out", "sub", "deep.pdf"),
	}
	if len(files) != len(wantOutputs) {
		t.Fatalf("got %d files, want %d", len(files), len(wantOutputs))
	}
	for i, want := range wantOutputs {
		if files[i].OutputPath != want {
			t.Errorf("files[%d].OutputPath = %q, want %q", i, files[i].OutputPath, want)
		}
	}
}

func TestResolveDirectoryNoMatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "notes.txt")

	files, err := Resolve(dir, []string{".pdf"}, "out", ".md")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestResolveDirectoryCollision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "notes.md")
	writeFixture(t, dir, "notes.markdown")

	_, err := Resolve(dir, []string{".md", ".markdown"}, "out", ".pdf")
	if !errors.Is(err, ErrOutputCollision) {
		t.Errorf("error = %v, want ErrOutputCollision", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolve - Errors
// ---------------------------------------------------------------------------

func TestResolveInputNotFound(t *testing.T) {
	t.Parallel()

	_, err := Resolve(filepath.Join(t.TempDir(), "missing.md"), []string{".md"}, "out", ".pdf")
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("error = %v, want ErrInputNotFound", err)
	}
}

func TestResolveEmptyOutputDir(t *testing.T) {
	t.Parallel()

	_, err := Resolve("anything.md", []string{".md"}, "", ".pdf")
	if !errors.Is(err, ErrEmptyOutputDir) {
		t.Errorf("error = %v, want ErrEmptyOutputDir", err)
	}
}
