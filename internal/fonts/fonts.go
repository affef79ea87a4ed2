package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// Dir is the font directory under an asset root.
const Dir = "fonts"

// ScanDir returns slash-separated paths, relative to dir, of every font file under dir, sorted.
// A missing dir yields no fonts and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, e os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if e.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

// First returns the first font found under root/fonts for the given asset roots, or "".
func First(roots []string) string {
	for _, r := range roots {
		dir := filepath.Join(r, Dir)
		found, err := ScanDir(dir)
		if err != nil || len(found) == 0 {
			continue
		}
		return filepath.Join(dir, filepath.FromSlash(found[0]))
	}
	return ""
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}
