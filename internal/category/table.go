package category

import (
	"sort"
	"strings"
)

type entry struct {
	name       string
	extensions []string
}

func (e entry) clone() entry {
	return entry{name: e.name, extensions: append([]string(nil), e.extensions...)}
}

// Table is an ordered mapping of category name to the extensions it claims.
// Category names are slash-delimited logical paths such as "Docs/PDF".
type Table struct {
	entries []entry
}

// Collision describes one extension claimed by more than one category. The
// last category in Categories is the one the Index resolves to.
type Collision struct {
	Extension  string
	Categories []string
}

// New builds a table from explicit entries in the given order. Later
// duplicates of a name replace the earlier list in place.
func New(names []string, extensions map[string][]string) *Table {
	t := &Table{}
	for _, name := range names {
		t.set(name, extensions[name])
	}
	return t
}

// Build overlays overrides on defaults. A category named in overrides has its
// extension list replaced wholesale, even when the override list is empty.
// Overridden categories keep their position; categories that only exist in
// overrides are appended in lexicographic order.
func Build(defaults *Table, overrides map[string][]string) *Table {
	t := &Table{}
	if defaults != nil {
		t.entries = make([]entry, 0, len(defaults.entries)+len(overrides))
		for _, e := range defaults.entries {
			t.entries = append(t.entries, e.clone())
		}
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.set(name, overrides[name])
	}
	return t
}

func (t *Table) set(name string, extensions []string) {
	list := append([]string(nil), extensions...)
	if list == nil {
		list = []string{}
	}
	for i := range t.entries {
		if t.entries[i].name == name {
			t.entries[i].extensions = list
			return
		}
	}
	t.entries = append(t.entries, entry{name: name, extensions: list})
}

// Len reports the number of categories.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns category names in table order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.name
	}
	return names
}

// Extensions returns a copy of the extensions claimed by name, as written in
// the source table.
func (t *Table) Extensions(name string) ([]string, bool) {
	if t == nil {
		return nil, false
	}
	for _, e := range t.entries {
		if e.name == name {
			return append([]string(nil), e.extensions...), true
		}
	}
	return nil, false
}

// Collisions lists every normalized extension claimed by two or more
// categories, sorted by extension. The built-in table has none.
func (t *Table) Collisions() []Collision {
	if t == nil {
		return nil
	}
	owners := make(map[string][]string)
	for _, e := range t.entries {
		for _, ext := range e.extensions {
			key := NormalizeExtension(ext)
			list := owners[key]
			if len(list) > 0 && list[len(list)-1] == e.name {
				continue
			}
			owners[key] = append(list, e.name)
		}
	}

	var out []Collision
	for ext, names := range owners {
		if len(names) < 2 {
			continue
		}
		out = append(out, Collision{Extension: ext, Categories: names})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Extension < out[j].Extension })
	return out
}

// String renders a collision for log lines and CLI output.
func (c Collision) String() string {
	return c.Extension + " claimed by " + strings.Join(c.Categories, ", ")
}
