package model

// EntryKind marks what a declaration entry contributes to the form.
type EntryKind string

const (
	EntryKindSection EntryKind = "section"
	EntryKindHeader  EntryKind = "header"
	EntryKindFooter  EntryKind = "footer"
	EntryKindItem    EntryKind = "item"
)

// Entry is one element of a flat content declaration. Section boundaries,
// headers and footers are marked inline; Item is only set for EntryKindItem.
type Entry struct {
	Kind EntryKind `json:"kind"`
	Text string    `json:"text,omitempty"`
	Item *Item     `json:"item,omitempty"`
}

// Declaration is the ordered form content handed to the layout engine.
type Declaration struct {
	ID       string            `json:"id,omitempty"`
	Title    string            `json:"title,omitempty"`
	Entries  []Entry           `json:"entries"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Append adds entries and returns the declaration for chaining.
func (d *Declaration) Append(entries ...Entry) *Declaration {
	d.Entries = append(d.Entries, entries...)
	return d
}

// Items returns every item in declaration order, ignoring markers.
func (d Declaration) Items() []Item {
	var out []Item
	for _, entry := range d.Entries {
		if entry.Kind == EntryKindItem && entry.Item != nil {
			out = append(out, *entry.Item)
		}
	}
	return out
}

// SectionMarker starts a new section identified by id.
func SectionMarker(id string) Entry {
	return Entry{Kind: EntryKindSection, Text: id}
}

// Header sets the header text of the current section.
func Header(text string) Entry {
	return Entry{Kind: EntryKindHeader, Text: text}
}

// Footer sets the footer text of the current section and closes it.
func Footer(text string) Entry {
	return Entry{Kind: EntryKindFooter, Text: text}
}

// ItemEntry wraps an item as a declaration entry.
func ItemEntry(item Item) Entry {
	return Entry{Kind: EntryKindItem, Item: &item}
}

// Item is one content unit in a form. ID must stay stable across passes with
// unchanged input; separator placement depends on it.
type Item struct {
	ID          string  `json:"id,omitempty"`
	HasOwnLabel bool    `json:"hasOwnLabel"`
	Label       string  `json:"label,omitempty"`
	Body        Content `json:"body"`
}

// NewItem builds an item whose HasOwnLabel flag and Label come from the
// body's LabelProvider answer.
func NewItem(id string, body Content) Item {
	item := Item{ID: id, Body: body}
	if label, ok := LabelOf(body); ok {
		item.HasOwnLabel = true
		item.Label = label
	}
	return item
}

// Section groups the items between two boundaries. Empty Header or Footer
// means the region is omitted entirely.
type Section struct {
	ID     string `json:"id,omitempty"`
	Header string `json:"header,omitempty"`
	Footer string `json:"footer,omitempty"`
	Items  []Item `json:"items"`
}

// HasHeader reports whether the section renders a header region.
func (s Section) HasHeader() bool {
	return s.Header != ""
}

// HasFooter reports whether the section renders a footer region.
func (s Section) HasFooter() bool {
	return s.Footer != ""
}

// Row pairs a label with content. A nil Label means the row has no label
// column and renders as a full-width block; a pointer to "" keeps the label
// column for alignment without showing any text.
type Row struct {
	ItemID      string  `json:"itemId"`
	Label       *string `json:"label,omitempty"`
	Content     Content `json:"content"`
	Synthesized bool    `json:"synthesized,omitempty"`
}

// HasLabelColumn reports whether the row occupies the label column.
func (r Row) HasLabelColumn() bool {
	return r.Label != nil
}

// LabelText returns the label or "" when the row has none.
func (r Row) LabelText() string {
	if r.Label == nil {
		return ""
	}
	return *r.Label
}

// LayoutContext carries the geometry of one layout pass. It is rebuilt every
// time the enclosing container is resized and never persisted.
type LayoutContext struct {
	ContainerWidth float64 `json:"containerWidth"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
