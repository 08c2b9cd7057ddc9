package tui

import (
	"context"
	"errors"
	"html"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
	"github.com/goliatone/go-formstyle/pkg/render"
)

// Renderer draws a layout tree as boxed terminal text and, through Collect,
// prompts for control values.
type Renderer struct {
	driver  PromptDriver
	columns int
	theme   Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer. The survey driver is created lazily the
// first time Collect runs without an injected driver.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		columns: DefaultColumns,
		theme:   DefaultTheme(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "terminal"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render draws every section as a rounded box scaled to the configured
// terminal width. Label columns keep the tree's label width proportionally.
func (r *Renderer) Render(ctx context.Context, tree layout.Tree, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree = render.Localize(render.ApplySections(tree, options.Sections), options)
	g := r.grid(tree)
	var blocks []string
	if tree.Title != "" {
		blocks = append(blocks, r.theme.Title.Render(tree.Title))
	}
	for _, section := range tree.Sections {
		blocks = append(blocks, r.section(section, g, options, tree.Style.SwitchToggles))
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

// grid is the tree geometry converted to terminal cells.
type grid struct {
	inner int
	label int
	scale float64
}

func (r *Renderer) grid(tree layout.Tree) grid {
	inner := r.columns - 2
	if inner < 1 {
		inner = 1
	}
	g := grid{inner: inner, scale: 1}
	if tree.Width > 0 {
		g.scale = float64(r.columns) / tree.Width
	}
	g.label = clampCells(tree.LabelWidth*g.scale, inner-1)
	return g
}

func (r *Renderer) section(section layout.SectionNode, g grid, options render.RenderOptions, switches bool) string {
	lines := make([]string, 0, len(section.Panel.Children))
	for _, node := range section.Panel.Children {
		switch node.Kind {
		case layout.NodeSeparator:
			lines = append(lines, separatorLine(node.Separator, g))
		case layout.NodeRow:
			lines = append(lines, r.row(node, g, options, switches))
		default:
			body := plainContent(node.Content, options, switches)
			lines = append(lines, lipgloss.NewStyle().Width(g.inner).Render(body))
		}
		if control, ok := controlOf(node); ok {
			for _, message := range options.ErrorsFor(control.Name) {
				lines = append(lines, lipgloss.NewStyle().Width(g.inner).Render(r.theme.ErrorPrefix+message))
			}
		}
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(section.Panel.Stroke)).
		Width(g.inner).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	parts := make([]string, 0, 3)
	if section.Header != nil {
		parts = append(parts, r.theme.Header.Bold(section.Header.Bold).Render(section.Header.Text))
	}
	parts = append(parts, panel)
	if section.Footer != nil {
		parts = append(parts, r.theme.Footer.Render(section.Footer.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) row(node layout.Node, g grid, options render.RenderOptions, switches bool) string {
	body := plainContent(node.Content, options, switches)
	text := ""
	if node.Label != nil {
		text = node.Label.Text
	}
	if g.label == 0 {
		if text != "" {
			body = text + ": " + body
		}
		return lipgloss.NewStyle().Width(g.inner).Render(body)
	}
	label := r.theme.Label.Width(g.label).Render(text)
	content := lipgloss.NewStyle().Width(g.inner - g.label).Render(body)
	return lipgloss.JoinHorizontal(lipgloss.Top, label, content)
}

func separatorLine(divider *layout.Divider, g grid) string {
	inset := 0
	color := ""
	if divider != nil {
		inset = clampCells(divider.Inset*g.scale, (g.inner-1)/2)
		if divider.Inset > 0 && inset == 0 && g.inner > 2 {
			inset = 1
		}
		color = divider.Color
	}
	pad := strings.Repeat(" ", inset)
	line := pad + strings.Repeat("─", g.inner-2*inset) + pad
	if color == "" {
		return line
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(line)
}

func clampCells(value float64, max int) int {
	if !(value > 0) || max <= 0 {
		return 0
	}
	cells := int(math.Round(value))
	if cells > max {
		return max
	}
	return cells
}

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

func stripMarkup(fragment string) string {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(fragment)))
}

func plainContent(region *layout.ContentRegion, options render.RenderOptions, switches bool) string {
	if region == nil || region.Body == nil {
		return ""
	}
	switch body := region.Body.(type) {
	case model.Text:
		return body.Value
	case *model.Text:
		return body.Value
	case model.Markup:
		return stripMarkup(body.HTML)
	case *model.Markup:
		return stripMarkup(body.HTML)
	case model.Control:
		return controlText(body, options, switches)
	case *model.Control:
		return controlText(*body, options, switches)
	}
	return ""
}

func controlText(control model.Control, options render.RenderOptions, switches bool) string {
	value := control.Value
	checked := control.Checked
	if prefill, ok := options.Value(control.Name); ok {
		value = prefill
		checked = truthy(prefill)
	}

	switch control.Control {
	case model.ControlToggle:
		switch {
		case switches && checked:
			return "[on ]"
		case switches:
			return "[off]"
		case checked:
			return "[x]"
		default:
			return "[ ]"
		}
	case model.ControlSelect:
		if value == "" && len(control.Options) > 0 {
			value = control.Options[0]
		}
		return "‹ " + value + " ›"
	case model.ControlButton:
		return "[ " + control.Title + " ]"
	default:
		if value == "" {
			value = control.Placeholder
		}
		return "[ " + value + " ]"
	}
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}
