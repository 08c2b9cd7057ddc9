package layout

import (
	"fmt"

	"github.com/goliatone/go-formstyle/pkg/model"
)

// Partition splits a flat declaration into sections, preserving declaration
// order. A section marker always opens a new section. A header opens a new
// section unless the current one is still untouched. A footer closes the
// current section, so the next header or item opens another one. Content
// before any marker lands in an implicit first section.
//
// Items and sections without an ID receive a positional one so identities
// stay stable across passes over the same input.
func Partition(entries []model.Entry) []model.Section {
	var sections []model.Section
	current := -1
	closed := false

	open := func(id string) {
		sections = append(sections, model.Section{ID: id})
		current = len(sections) - 1
		closed = false
	}
	untouched := func() bool {
		s := sections[current]
		return s.Header == "" && s.Footer == "" && len(s.Items) == 0
	}

	for _, entry := range entries {
		switch entry.Kind {
		case model.EntryKindSection:
			open(entry.Text)
		case model.EntryKindHeader:
			if entry.Text == "" {
				continue
			}
			if current < 0 || closed || !untouched() {
				open("")
			}
			sections[current].Header = entry.Text
		case model.EntryKindFooter:
			if entry.Text == "" {
				continue
			}
			if current < 0 {
				open("")
			}
			sections[current].Footer = entry.Text
			closed = true
		case model.EntryKindItem:
			if entry.Item == nil {
				continue
			}
			if current < 0 || closed {
				open("")
			}
			sections[current].Items = append(sections[current].Items, *entry.Item)
		}
	}

	for si := range sections {
		if sections[si].ID == "" {
			sections[si].ID = fmt.Sprintf("section-%d", si)
		}
		for ii := range sections[si].Items {
			if sections[si].Items[ii].ID == "" {
				sections[si].Items[ii].ID = fmt.Sprintf("s%d-i%d", si, ii)
			}
		}
	}
	return sections
}
