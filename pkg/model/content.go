package model

import (
	"fmt"
	"strings"
)

// ContentKind identifies the concrete Content implementation.
type ContentKind string

const (
	ContentKindText    ContentKind = "text"
	ContentKindMarkup  ContentKind = "markup"
	ContentKindControl ContentKind = "control"
)

// Content is an opaque renderable body.
type Content interface {
	Kind() ContentKind
}

// LabelProvider is implemented by content that renders its own label. The
// second return value is false when no label is exposed.
type LabelProvider interface {
	Label() (string, bool)
}

// LabelOf asks content for its label.
func LabelOf(content Content) (string, bool) {
	provider, ok := content.(LabelProvider)
	if !ok {
		return "", false
	}
	return provider.Label()
}

// Text is plain text content.
type Text struct {
	Value string `json:"value"`
}

func (Text) Kind() ContentKind { return ContentKindText }

// Markup is an HTML fragment. Renderers that emit HTML sanitise it; text
// renderers strip it down to its text.
type Markup struct {
	HTML string `json:"html"`
}

func (Markup) Kind() ContentKind { return ContentKindMarkup }

// ControlKind enumerates the form controls a declaration can describe.
type ControlKind string

const (
	ControlInput    ControlKind = "input"
	ControlTextArea ControlKind = "textarea"
	ControlToggle   ControlKind = "toggle"
	ControlSelect   ControlKind = "select"
	ControlButton   ControlKind = "button"
)

// Control is a typed form control. Toggles render as switches.
type Control struct {
	Control     ControlKind `json:"control"`
	Name        string      `json:"name,omitempty"`
	Title       string      `json:"title,omitempty"`
	Value       string      `json:"value,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Options     []string    `json:"options,omitempty"`
	Checked     bool        `json:"checked,omitempty"`
}

func (Control) Kind() ContentKind { return ContentKindControl }

// Label exposes the control title. Buttons carry their title on the button
// itself, so they never report a label.
func (c Control) Label() (string, bool) {
	if c.Control == ControlButton {
		return "", false
	}
	title := strings.TrimSpace(c.Title)
	return title, title != ""
}

var _ LabelProvider = Control{}

// ControlOf returns the control carried by content, by value or by pointer.
func ControlOf(content Content) (Control, bool) {
	switch body := content.(type) {
	case Control:
		return body, true
	case *Control:
		if body != nil {
			return *body, true
		}
	}
	return Control{}, false
}

// ParseControlKind maps a declared control name onto a ControlKind. "text"
// and "textfield" alias input; "switch" and "checkbox" alias toggle.
func ParseControlKind(raw string) (ControlKind, error) {
	kind := ControlKind(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case ControlInput, ControlTextArea, ControlToggle, ControlSelect, ControlButton:
		return kind, nil
	case "text", "textfield":
		return ControlInput, nil
	case "switch", "checkbox", "boolean":
		return ControlToggle, nil
	case "multiline":
		return ControlTextArea, nil
	default:
		return "", fmt.Errorf("unknown control %q", raw)
	}
}
