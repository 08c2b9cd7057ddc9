package layout

import "github.com/goliatone/go-formstyle/pkg/model"

// Decorate lays out normalized rows as one section: rows stacked with zero
// spacing and a divider between neighbours, wrapped in a filled, stroked
// rounded panel. The header is added above in bold and the footer below, each
// only when its text is non-empty.
func Decorate(section model.Section, rows []model.Row, labelWidth float64, style Style) SectionNode {
	node := SectionNode{
		ID: section.ID,
		Panel: Panel{
			Fill:         style.SectionBackground,
			Stroke:       style.Border,
			StrokeWidth:  style.BorderWidth,
			CornerRadius: style.CornerRadius,
			Children:     make([]Node, 0, 2*len(rows)),
		},
	}
	if section.HasHeader() {
		node.Header = &TextRegion{Text: section.Header, Bold: style.BoldHeaders}
	}
	if section.HasFooter() {
		node.Footer = &TextRegion{Text: section.Footer}
	}

	last := len(rows) - 1
	for i, row := range rows {
		node.Panel.Children = append(node.Panel.Children, rowNode(row, labelWidth, style))
		if i != last {
			node.Panel.Children = append(node.Panel.Children, Node{
				Kind: NodeSeparator,
				Separator: &Divider{
					Height: style.SeparatorHeight,
					Inset:  style.SeparatorInset,
					Color:  style.Border,
				},
			})
		}
	}
	return node
}

func rowNode(row model.Row, labelWidth float64, style Style) Node {
	node := Node{
		Kind:    NodeBlock,
		ItemID:  row.ItemID,
		Padding: style.ContentPadding,
		Content: &ContentRegion{
			Body:     row.Content,
			Align:    AlignLeading,
			Flexible: true,
		},
	}
	if row.Content != nil {
		node.Content.Kind = row.Content.Kind()
	}
	if row.HasLabelColumn() {
		node.Kind = NodeRow
		node.MinHeight = style.MinRowHeight
		node.Label = &LabelRegion{
			Text:  row.LabelText(),
			Width: labelWidth,
			Align: AlignLeading,
		}
	}
	return node
}
