package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.TTF"))
	touch(t, filepath.Join(dir, "Mono.otf"))
	touch(t, filepath.Join(dir, "README.md"))

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	want := []string{"Inter/Inter-Regular.TTF", "Mono.otf"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("ScanDir = %q; want %q", got, want)
	}
}

func TestFirst(t *testing.T) {
	empty, full := t.TempDir(), t.TempDir()
	touch(t, filepath.Join(full, Dir, "b.ttf"))
	touch(t, filepath.Join(full, Dir, "a.ttf"))

	if got, want := First([]string{empty, full}), filepath.Join(full, Dir, "a.ttf"); got != want {
		t.Fatalf("First = %q; want %q", got, want)
	}
	if got := First([]string{empty}); got != "" {
		t.Fatalf("First with no fonts = %q", got)
	}
}
