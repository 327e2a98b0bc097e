package organizer

import (
	"os"

	"orgdir/internal/category"
)

// Partition is the result of one directory scan. Order lists categories in
// the order they were first seen; categories with no files are absent.
type Partition struct {
	Order        []string
	Files        map[string][]string
	Unclassified []string
}

// Total reports how many entries the scan saw.
func (p *Partition) Total() int {
	if p == nil {
		return 0
	}
	n := len(p.Unclassified)
	for _, files := range p.Files {
		n += len(files)
	}
	return n
}

// Scan lists root once and classifies every child. Each entry lands in
// exactly one category list or in Unclassified. A listing failure is
// returned wrapped in ErrDirectoryUnreadable.
func Scan(root string, idx *category.Index) (*Partition, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, wrap(ErrDirectoryUnreadable, "list directory", root, err)
	}

	p := &Partition{Files: make(map[string][]string)}
	for _, entry := range entries {
		name := entry.Name()
		dest, ok := Classify(root, name, idx)
		if !ok {
			p.Unclassified = append(p.Unclassified, name)
			continue
		}
		if _, seen := p.Files[dest]; !seen {
			p.Order = append(p.Order, dest)
		}
		p.Files[dest] = append(p.Files[dest], name)
	}
	return p, nil
}
