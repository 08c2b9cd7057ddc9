package layout

import "github.com/goliatone/go-formstyle/pkg/model"

// Normalize turns every item of a section into exactly one row.
//
// Items that carry their own label pass through as their own label/content
// row whatever indentAll says. With indentAll off, the remaining items become
// full-width blocks with no label column. With indentAll on, they get a
// synthesized empty label so they line up with their labeled siblings.
func Normalize(section model.Section, indentAll bool) []model.Row {
	rows := make([]model.Row, 0, len(section.Items))
	for _, item := range section.Items {
		rows = append(rows, normalizeItem(item, indentAll))
	}
	return rows
}

func normalizeItem(item model.Item, indentAll bool) model.Row {
	row := model.Row{
		ItemID:  item.ID,
		Content: item.Body,
	}
	switch {
	case item.HasOwnLabel:
		row.Label = model.StringPtr(item.Label)
	case indentAll:
		row.Label = model.StringPtr("")
		row.Synthesized = true
	}
	return row
}

// Separators returns the row indices followed by a separator: every row but
// the last.
func Separators(rows []model.Row) []int {
	if len(rows) < 2 {
		return nil
	}
	out := make([]int, 0, len(rows)-1)
	last := len(rows) - 1
	for i := range rows {
		if i != last {
			out = append(out, i)
		}
	}
	return out
}
