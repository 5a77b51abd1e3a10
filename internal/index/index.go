// Package index builds the ordered list of navigable elements from a UI
// snapshot tree. The index is rebuilt wholesale whenever the underlying
// container changes; there is no incremental diffing.
package index

import (
	"github.com/lcereceda/accessnav/internal/model"
)

// Entry is one navigable element in the index.
type Entry struct {
	ID          int         `yaml:"i"            json:"i"`
	Role        model.Role  `yaml:"r"            json:"r"`
	Label       string      `yaml:"l,omitempty"  json:"l,omitempty"`
	Description string      `yaml:"d,omitempty"  json:"d,omitempty"`
	Path        string      `yaml:"p,omitempty"  json:"p,omitempty"`
	Position    int         `yaml:"pos"          json:"pos"` // 0-based position in the index
}

// Index is an ordered sequence of navigable elements in document order.
type Index struct {
	entries []Entry
}

// Build scans an element tree and returns the navigation index. Only
// enabled elements whose role is on the interactive allow-list are
// included, in depth-first document order. An empty or non-interactive
// tree yields an index of length 0.
func Build(tree []model.Element) *Index {
	ix := &Index{}
	for _, el := range tree {
		ix.collect(el, "")
	}
	return ix
}

func (ix *Index) collect(el model.Element, parentPath string) {
	path := string(el.Role)
	if parentPath != "" {
		path = parentPath + " > " + string(el.Role)
	}

	if el.Role.IsInteractive() && el.IsEnabled() {
		ix.entries = append(ix.entries, Entry{
			ID:          el.ID,
			Role:        el.Role,
			Label:       el.AccessibleLabel(),
			Description: el.Description,
			Path:        path,
			Position:    len(ix.entries),
		})
	}

	for _, child := range el.Children {
		ix.collect(child, path)
	}
}

// Len returns the number of navigable elements.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// At returns the entry at position i. Callers must keep i in range.
func (ix *Index) At(i int) Entry {
	return ix.entries[i]
}

// Entries returns the full ordered entry list.
func (ix *Index) Entries() []Entry {
	return ix.entries
}

// FindCategory returns the position of the first entry matching the
// category, or -1 when no entry matches.
func (ix *Index) FindCategory(cat model.Category) int {
	for i, e := range ix.entries {
		if e.Role.MatchesCategory(cat) {
			return i
		}
	}
	return -1
}
