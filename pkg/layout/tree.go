package layout

import "github.com/goliatone/go-formstyle/pkg/model"

// NodeKind identifies the children of a section panel.
type NodeKind string

const (
	// NodeRow is a two-column label/content row.
	NodeRow NodeKind = "row"
	// NodeBlock is a full-width block without a label column.
	NodeBlock NodeKind = "block"
	// NodeSeparator is the divider drawn between two rows.
	NodeSeparator NodeKind = "separator"
)

// Alignment of a region along the horizontal axis.
type Alignment string

const AlignLeading Alignment = "leading"

// Tree is the output of one layout pass.
type Tree struct {
	Title      string        `json:"title,omitempty"`
	Width      float64       `json:"width"`
	MinWidth   float64       `json:"minWidth"`
	LabelWidth float64       `json:"labelWidth"`
	IndentAll  bool          `json:"indentAll"`
	Style      Style         `json:"style"`
	Sections   []SectionNode `json:"sections"`
}

// Rows returns every row and block across sections, in order.
func (t Tree) Rows() []Node {
	var out []Node
	for _, section := range t.Sections {
		out = append(out, section.Panel.Rows()...)
	}
	return out
}

// SectionNode is a decorated section: an optional header above a bordered
// panel and an optional footer below it.
type SectionNode struct {
	ID     string      `json:"id"`
	Header *TextRegion `json:"header,omitempty"`
	Panel  Panel       `json:"panel"`
	Footer *TextRegion `json:"footer,omitempty"`
}

// TextRegion is header or footer text.
type TextRegion struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Panel is the filled, rounded and stroked container stacking a section's
// rows with no spacing between them.
type Panel struct {
	Fill         string  `json:"fill"`
	Stroke       string  `json:"stroke"`
	StrokeWidth  float64 `json:"strokeWidth"`
	CornerRadius float64 `json:"cornerRadius"`
	Spacing      float64 `json:"spacing"`
	Children     []Node  `json:"children"`
}

// Rows returns the row and block children, skipping separators.
func (p Panel) Rows() []Node {
	out := make([]Node, 0, len(p.Children))
	for _, child := range p.Children {
		if child.Kind != NodeSeparator {
			out = append(out, child)
		}
	}
	return out
}

// SeparatorCount reports how many dividers the panel draws.
func (p Panel) SeparatorCount() int {
	count := 0
	for _, child := range p.Children {
		if child.Kind == NodeSeparator {
			count++
		}
	}
	return count
}

// Node is a child of a Panel. Label is only set for NodeRow, Content for
// NodeRow and NodeBlock, Separator for NodeSeparator.
type Node struct {
	Kind      NodeKind       `json:"kind"`
	ItemID    string         `json:"itemId,omitempty"`
	Label     *LabelRegion   `json:"label,omitempty"`
	Content   *ContentRegion `json:"content,omitempty"`
	Separator *Divider       `json:"separator,omitempty"`
	MinHeight float64        `json:"minHeight,omitempty"`
	Padding   float64        `json:"padding,omitempty"`
}

// LabelRegion is the fixed-width, leading-aligned label column.
type LabelRegion struct {
	Text  string    `json:"text"`
	Width float64   `json:"width"`
	Align Alignment `json:"align"`
}

// ContentRegion fills whatever width the label column leaves.
type ContentRegion struct {
	Kind     model.ContentKind `json:"kind"`
	Body     model.Content     `json:"body"`
	Align    Alignment         `json:"align"`
	Flexible bool              `json:"flexible"`
}

// Divider is a one-unit rule inset from the panel edges.
type Divider struct {
	Height float64 `json:"height"`
	Inset  float64 `json:"inset"`
	Color  string  `json:"color"`
}
