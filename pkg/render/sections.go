package render

import (
	"strings"

	"github.com/goliatone/go-formstyle/pkg/layout"
)

// ApplySections drops every section whose id is not listed. Ids compare
// case-insensitively; an empty list keeps the tree as is. Sections keep their
// relative order and label width, so a partial render lines up with a full
// one.
func ApplySections(tree layout.Tree, ids []string) layout.Tree {
	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if key := strings.ToLower(strings.TrimSpace(id)); key != "" {
			allowed[key] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return tree
	}

	kept := make([]layout.SectionNode, 0, len(tree.Sections))
	for _, section := range tree.Sections {
		if _, ok := allowed[strings.ToLower(section.ID)]; ok {
			kept = append(kept, section)
		}
	}
	tree.Sections = kept
	return tree
}
