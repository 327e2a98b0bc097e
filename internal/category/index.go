package category

import (
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// NormalizeExtension lowercases an extension for index keys and lookups. It
// performs no other validation; a value missing its leading dot is kept as-is.
func NormalizeExtension(ext string) string {
	return lowerCaser.String(ext)
}

// Index is a flattened lookup from normalized extension to the category's
// native relative path.
type Index struct {
	dirs map[string]string
}

// Flatten derives an Index from t. Categories are visited in table order, so
// when two categories claim the same extension the later one wins. Category
// slashes are translated to the host separator here.
func Flatten(t *Table) *Index {
	idx := &Index{dirs: make(map[string]string)}
	if t == nil {
		return idx
	}
	for _, e := range t.entries {
		dir := filepath.FromSlash(e.name)
		for _, ext := range e.extensions {
			idx.dirs[NormalizeExtension(ext)] = dir
		}
	}
	return idx
}

// Lookup returns the category path for ext. The query is normalized, so
// ".PDF" and ".pdf" resolve identically. An empty extension never matches.
func (i *Index) Lookup(ext string) (string, bool) {
	if i == nil || ext == "" {
		return "", false
	}
	dir, ok := i.dirs[NormalizeExtension(ext)]
	return dir, ok
}

// Len reports the number of distinct extensions.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.dirs)
}
