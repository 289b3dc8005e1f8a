package fileset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "plain.txt"))
	writeFile(t, filepath.Join(dir, "assets", "a.zip"))
	writeFile(t, filepath.Join(dir, "assets", "b.zip"))

	s := Resolve([]string{
		filepath.Join(dir, "plain.txt"),
		filepath.Join(dir, "assets"),
	})

	files := s.Files()
	if len(files) != 3 {
		t.Fatalf("resolved %d entries; want 3: %+v", len(files), files)
	}
	if files[0].Name != "plain.txt" {
		t.Fatalf("first entry %q; want plain.txt", files[0].Name)
	}
	if files[1].Name != "a.zip" || files[2].Name != "b.zip" {
		t.Fatalf("directory entries %q, %q; want a.zip, b.zip", files[1].Name, files[2].Name)
	}
}

func TestResolveNeverRecurses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.txt"))
	writeFile(t, filepath.Join(dir, "sub", "nested.txt"))
	writeFile(t, filepath.Join(dir, "sub", "deeper", "deep.txt"))

	s := Resolve([]string{dir})

	if s.Len() != 1 {
		t.Fatalf("resolved %d entries; want only top.txt: %+v", s.Len(), s.Files())
	}
	if got := s.Files()[0].Name; got != "top.txt" {
		t.Fatalf("resolved %q; want top.txt", got)
	}
}

func TestResolveLastWriteWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "one", "a.zip")
	second := filepath.Join(dir, "two", "a.zip")
	writeFile(t, first)
	writeFile(t, second)

	s := Resolve([]string{first, second})

	files := s.Files()
	if len(files) != 1 {
		t.Fatalf("resolved %d entries; want 1", len(files))
	}
	if files[0].Path != second {
		t.Fatalf("path %q; want the later source %q", files[0].Path, second)
	}
}

func TestResolveCollisionKeepsFirstPosition(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one", "a.zip"))
	writeFile(t, filepath.Join(dir, "two", "b.zip"))
	writeFile(t, filepath.Join(dir, "three", "a.zip"))

	s := Resolve([]string{
		filepath.Join(dir, "one", "a.zip"),
		filepath.Join(dir, "two", "b.zip"),
		filepath.Join(dir, "three", "a.zip"),
	})

	files := s.Files()
	if len(files) != 2 {
		t.Fatalf("resolved %d entries; want 2", len(files))
	}
	if files[0].Name != "a.zip" || files[1].Name != "b.zip" {
		t.Fatalf("order %q, %q; want a.zip first", files[0].Name, files[1].Name)
	}
	if files[0].Path != filepath.Join(dir, "three", "a.zip") {
		t.Fatalf("a.zip path %q; want the later source", files[0].Path)
	}
}

func TestResolveSkipsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real.txt")
	writeFile(t, real)

	s := Resolve([]string{
		filepath.Join(dir, "no-such-path"),
		real,
	})

	if s.Len() != 1 {
		t.Fatalf("resolved %d entries; want missing path skipped", s.Len())
	}
	if got := s.Files()[0].Name; got != "real.txt" {
		t.Fatalf("resolved %q; want real.txt", got)
	}
}
