package vanilla

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
	"github.com/goliatone/go-formstyle/pkg/render"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// sanitizeMarkup strips scripts, handlers and unknown elements from markup
// content before it is emitted unescaped.
func sanitizeMarkup(fragment string) string {
	markupPolicyOnce.Do(func() {
		markupPolicy = bluemonday.UGCPolicy()
	})
	return markupPolicy.Sanitize(fragment)
}

type formView struct {
	Title      string        `json:"title,omitempty"`
	Width      float64       `json:"width"`
	MinWidth   float64       `json:"minWidth"`
	LabelWidth float64       `json:"labelWidth"`
	Background string        `json:"background"`
	Padding    float64       `json:"padding"`
	Vars       string        `json:"vars,omitempty"`
	Action     string        `json:"action,omitempty"`
	Method     string        `json:"method"`
	Hidden     []hiddenView  `json:"hidden,omitempty"`
	Theme      string        `json:"theme,omitempty"`
	Variant    string        `json:"variant,omitempty"`
	Sections   []sectionView `json:"sections"`
}

type hiddenView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type sectionView struct {
	ID       string     `json:"id"`
	Header   string     `json:"header,omitempty"`
	Bold     bool       `json:"bold,omitempty"`
	Footer   string     `json:"footer,omitempty"`
	Fill     string     `json:"fill"`
	Stroke   string     `json:"stroke"`
	Border   float64    `json:"border"`
	Radius   float64    `json:"radius"`
	Children []nodeView `json:"children"`
}

type nodeView struct {
	Kind       string   `json:"kind"`
	ItemID     string   `json:"itemId,omitempty"`
	Label      string   `json:"label"`
	LabelFor   string   `json:"labelFor,omitempty"`
	LabelWidth float64  `json:"labelWidth"`
	MinHeight  float64  `json:"minHeight"`
	Padding    float64  `json:"padding"`
	HTML       string   `json:"html"`
	Height     float64  `json:"height"`
	Inset      float64  `json:"inset"`
	Color      string   `json:"color"`
	Errors     []string `json:"errors,omitempty"`
}

type controlView struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options"`
	Checked     bool     `json:"checked"`
	Switch      bool     `json:"switch"`
}

// contentRenderer renders one content body to an HTML fragment.
type contentRenderer func(model.Content, string) (string, error)

func buildFormView(tree layout.Tree, options render.RenderOptions, renderContent contentRenderer) (formView, error) {
	view := formView{
		Title:      tree.Title,
		Width:      tree.Width,
		MinWidth:   tree.MinWidth,
		LabelWidth: tree.LabelWidth,
		Background: tree.Style.Background,
		Padding:    tree.Style.FormPadding,
		Action:     options.Action,
		Sections:   make([]sectionView, 0, len(tree.Sections)),
	}
	view.Method, _ = options.FormMethod()
	for _, field := range render.SortedHiddenFields(options) {
		view.Hidden = append(view.Hidden, hiddenView{Name: field.Name, Value: field.Value})
	}
	if options.Theme != nil {
		view.Theme = options.Theme.Name
		view.Variant = options.Theme.Variant
		view.Vars = inlineVars(options.Theme.CSSVars)
	}

	for _, section := range tree.Sections {
		sv := sectionView{
			ID:       section.ID,
			Fill:     section.Panel.Fill,
			Stroke:   section.Panel.Stroke,
			Border:   section.Panel.StrokeWidth,
			Radius:   section.Panel.CornerRadius,
			Children: make([]nodeView, 0, len(section.Panel.Children)),
		}
		if section.Header != nil {
			sv.Header = section.Header.Text
			sv.Bold = section.Header.Bold
		}
		if section.Footer != nil {
			sv.Footer = section.Footer.Text
		}
		for _, node := range section.Panel.Children {
			nv, err := buildNodeView(node, options, renderContent)
			if err != nil {
				return formView{}, fmt.Errorf("section %q: %w", section.ID, err)
			}
			sv.Children = append(sv.Children, nv)
		}
		view.Sections = append(view.Sections, sv)
	}
	return view, nil
}

func buildNodeView(node layout.Node, options render.RenderOptions, renderContent contentRenderer) (nodeView, error) {
	nv := nodeView{
		Kind:      string(node.Kind),
		ItemID:    node.ItemID,
		MinHeight: node.MinHeight,
		Padding:   node.Padding,
	}
	if node.Separator != nil {
		nv.Height = node.Separator.Height
		nv.Inset = node.Separator.Inset
		nv.Color = node.Separator.Color
		return nv, nil
	}
	id := controlID(node.ItemID)
	if node.Label != nil {
		nv.Label = node.Label.Text
		nv.LabelWidth = node.Label.Width
		if node.Content != nil && node.Content.Kind == model.ContentKindControl && nv.Label != "" {
			nv.LabelFor = id
		}
	}
	if node.Content != nil && node.Content.Body != nil {
		fragment, err := renderContent(node.Content.Body, id)
		if err != nil {
			return nodeView{}, fmt.Errorf("item %q: %w", node.ItemID, err)
		}
		nv.HTML = fragment
		if control, ok := model.ControlOf(node.Content.Body); ok {
			nv.Errors = options.ErrorsFor(control.Name)
		}
	}
	return nv, nil
}

func newControlView(control model.Control, id string, options render.RenderOptions, switches bool) controlView {
	view := controlView{
		ID:          id,
		Kind:        string(control.Control),
		Name:        control.Name,
		Title:       control.Title,
		Value:       control.Value,
		Placeholder: control.Placeholder,
		Options:     control.Options,
		Checked:     control.Checked,
		Switch:      switches,
	}
	if value, ok := options.Value(control.Name); ok {
		if control.Control == model.ControlToggle {
			view.Checked = truthy(value)
		} else {
			view.Value = value
		}
	}
	return view
}

func textFragment(content model.Content) (string, bool) {
	switch body := content.(type) {
	case model.Text:
		return html.EscapeString(body.Value), true
	case *model.Text:
		return html.EscapeString(body.Value), true
	case model.Markup:
		return sanitizeMarkup(body.HTML), true
	case *model.Markup:
		return sanitizeMarkup(body.HTML), true
	}
	return "", false
}

// controlID derives a DOM id from an item id. Letters, digits and '-' pass
// through; any other rune, '_' included, becomes _<hex>_ so distinct item ids
// never share an id.
func controlID(itemID string) string {
	var b strings.Builder
	b.WriteString("fs-")
	for _, r := range itemID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
			b.WriteString(strconv.FormatInt(int64(r), 16))
			b.WriteByte('_')
		}
	}
	return b.String()
}

func inlineVars(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}
