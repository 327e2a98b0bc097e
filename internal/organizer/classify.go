package organizer

import (
	"os"
	"path/filepath"
	"strings"

	"orgdir/internal/category"
)

// Classify reports the destination category for the entry name directly
// under root. It fails closed: anything that is not a regular file (after
// following symlinks) directly under root, and any file without a known
// extension, yields ("", false).
func Classify(root, name string, idx *category.Index) (string, bool) {
	if !isPlainName(name) {
		return "", false
	}
	info, err := os.Stat(filepath.Join(root, name))
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	ext := Extension(name)
	if ext == "" {
		return "", false
	}
	return idx.Lookup(ext)
}

// Extension returns the suffix of name starting at its last dot. Leading
// dots belong to the stem, so ".bashrc" and "..pdf" have no extension.
func Extension(name string) string {
	name = filepath.Base(name)
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return ""
	}
	if strings.TrimLeft(name[:dot], ".") == "" {
		return ""
	}
	return name[dot:]
}

func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/"+string(filepath.Separator))
}
