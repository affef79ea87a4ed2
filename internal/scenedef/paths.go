package scenedef

import (
	"os"
	"path/filepath"
)

// Roots are tried in order so assets are found whether run from the repo root or cmd/globe.
var Roots = []string{"assets", "../../assets"}

// Resolve returns the first root/rel that exists. If none does, it returns rel under the first
// root so the load fails with a useful path.
func Resolve(roots []string, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	for _, r := range roots {
		p := filepath.Join(r, rel)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if len(roots) == 0 {
		return filepath.Clean(rel)
	}
	return filepath.Join(roots[0], rel)
}

// RootsWith puts dir ahead of Roots when it is non-empty.
func RootsWith(dir string) []string {
	if dir == "" {
		return Roots
	}
	return append([]string{dir}, Roots...)
}
