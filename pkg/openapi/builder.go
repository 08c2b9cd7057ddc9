package openapi

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-formstyle/pkg/model"
)

// Extension keys read from request body schemas.
const (
	// ExtensionSection on a property names the section it belongs to. The
	// name doubles as the section header.
	ExtensionSection = "x-formstyle-section"
	// ExtensionOrder on a property sorts it ahead of higher values. Ties and
	// unordered properties sort by name.
	ExtensionOrder = "x-formstyle-order"
	// ExtensionFooter on the body schema maps section names to footer text.
	// A plain string applies to the last section. The key "" names the
	// implicit leading section.
	ExtensionFooter = "x-formstyle-footer"
	// ExtensionControl on a property overrides the derived control kind.
	ExtensionControl = "x-formstyle-control"
	// ExtensionSubmit on the operation adds a submit button with that title.
	ExtensionSubmit = "x-formstyle-submit"
)

// ErrNoProperties is returned when an operation has no request body
// properties to lay out.
var ErrNoProperties = errors.New("openapi: request body has no properties")

// Builder turns an operation into a form declaration.
type Builder interface {
	Build(op Operation) (model.Declaration, error)
}

// BuilderOption configures the default builder.
type BuilderOption func(*builder)

// WithSubmitButton appends a submit button titled title when the operation
// does not declare one through ExtensionSubmit.
func WithSubmitButton(title string) BuilderOption {
	return func(b *builder) {
		b.submit = strings.TrimSpace(title)
	}
}

// WithHumanizedTitles toggles deriving titles from property names when the
// schema has no title. On by default.
func WithHumanizedTitles(enabled bool) BuilderOption {
	return func(b *builder) {
		b.humanize = enabled
	}
}

type builder struct {
	submit   string
	humanize bool
}

// NewBuilder constructs the default Builder.
func NewBuilder(options ...BuilderOption) Builder {
	b := &builder{humanize: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

type property struct {
	name    string
	schema  Schema
	order   float64
	section string
}

type sectionGroup struct {
	name  string
	items []model.Item
}

// Build groups request body properties into sections. Properties without a
// section come first, in the implicit leading section; named sections follow
// in the order of their first property.
func (b *builder) Build(op Operation) (model.Declaration, error) {
	body := op.RequestBody
	if len(body.Properties) == 0 {
		return model.Declaration{}, fmt.Errorf("%w: operation %q", ErrNoProperties, op.ID)
	}

	props := make([]property, 0, len(body.Properties))
	for name, schema := range body.Properties {
		order, ok := numberExtension(schema.Extensions, ExtensionOrder)
		if !ok {
			order = math.Inf(1)
		}
		props = append(props, property{
			name:    name,
			schema:  schema,
			order:   order,
			section: strings.TrimSpace(stringExtension(schema.Extensions, ExtensionSection)),
		})
	}
	sort.SliceStable(props, func(i, j int) bool {
		if props[i].order != props[j].order {
			return props[i].order < props[j].order
		}
		return props[i].name < props[j].name
	})

	implicit := &sectionGroup{}
	var named []*sectionGroup
	index := make(map[string]*sectionGroup)
	for _, prop := range props {
		item, err := b.item(prop, body.IsRequired(prop.name))
		if err != nil {
			return model.Declaration{}, fmt.Errorf("openapi: property %q: %w", prop.name, err)
		}
		if prop.section == "" {
			implicit.items = append(implicit.items, item)
			continue
		}
		group, ok := index[prop.section]
		if !ok {
			group = &sectionGroup{name: prop.section}
			index[prop.section] = group
			named = append(named, group)
		}
		group.items = append(group.items, item)
	}

	submit := b.submit
	if title := strings.TrimSpace(stringExtension(op.Extensions, ExtensionSubmit)); title != "" {
		submit = title
	}
	if submit != "" {
		last := implicit
		if len(named) > 0 {
			last = named[len(named)-1]
		}
		last.items = append(last.items, model.NewItem("submit", model.Control{
			Control: model.ControlButton,
			Name:    "submit",
			Title:   submit,
		}))
	}

	footers := footerMap(body.Extensions, named)

	decl := model.Declaration{
		ID:    op.ID,
		Title: firstNonEmpty(op.Summary, op.ID),
		Metadata: map[string]string{
			"operationId": op.ID,
			"method":      op.Method,
			"path":        op.Path,
		},
	}
	for _, item := range implicit.items {
		decl.Append(model.ItemEntry(item))
	}
	if footer := footers[""]; footer != "" && len(implicit.items) > 0 {
		decl.Append(model.Footer(footer))
	}
	for _, group := range named {
		decl.Append(model.SectionMarker(slug(group.name)), model.Header(group.name))
		for _, item := range group.items {
			decl.Append(model.ItemEntry(item))
		}
		if footer := footers[group.name]; footer != "" {
			decl.Append(model.Footer(footer))
		}
	}
	return decl, nil
}

func (b *builder) item(prop property, required bool) (model.Item, error) {
	schema := prop.schema
	title := strings.TrimSpace(schema.Title)
	if title == "" && b.humanize {
		title = humanize(prop.name)
	}
	if required && title != "" {
		title += " *"
	}

	kind, err := controlKind(schema)
	if err != nil {
		return model.Item{}, err
	}
	control := model.Control{
		Control: kind,
		Name:    prop.name,
		Title:   title,
	}
	switch kind {
	case model.ControlToggle:
		checked, _ := schema.Default.(bool)
		control.Checked = checked
	case model.ControlSelect:
		control.Options = enumOptions(schema.Enum)
		control.Value = scalarString(schema.Default)
	default:
		control.Value = scalarString(schema.Default)
		control.Placeholder = strings.TrimSpace(schema.Description)
	}
	return model.NewItem(prop.name, control), nil
}

func controlKind(schema Schema) (model.ControlKind, error) {
	if raw := stringExtension(schema.Extensions, ExtensionControl); raw != "" {
		return model.ParseControlKind(raw)
	}
	switch {
	case len(schema.Enum) > 0:
		return model.ControlSelect, nil
	case schema.Type == "boolean":
		return model.ControlToggle, nil
	case schema.Type == "string" && (schema.Format == "textarea" || schema.Format == "multiline"):
		return model.ControlTextArea, nil
	case schema.Type == "object" || schema.Type == "array":
		return "", fmt.Errorf("unsupported type %q (%s)", schema.Type, schema)
	default:
		return model.ControlInput, nil
	}
}

func footerMap(ext map[string]any, named []*sectionGroup) map[string]string {
	out := make(map[string]string)
	switch value := ext[ExtensionFooter].(type) {
	case string:
		last := ""
		if len(named) > 0 {
			last = named[len(named)-1].name
		}
		out[last] = strings.TrimSpace(value)
	case map[string]any:
		for key, raw := range value {
			if text, ok := raw.(string); ok {
				out[strings.TrimSpace(key)] = strings.TrimSpace(text)
			}
		}
	case map[string]string:
		for key, text := range value {
			out[strings.TrimSpace(key)] = strings.TrimSpace(text)
		}
	}
	return out
}

func stringExtension(ext map[string]any, key string) string {
	if len(ext) == 0 {
		return ""
	}
	value, _ := ext[key].(string)
	return value
}

func numberExtension(ext map[string]any, key string) (float64, bool) {
	if len(ext) == 0 {
		return 0, false
	}
	switch value := ext[key].(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		return parsed, err == nil
	}
	return 0, false
}

func enumOptions(values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if text := scalarString(value); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// humanize turns "first_name" or "firstName" into "First name".
func humanize(name string) string {
	var b strings.Builder
	prevLower := false
	for i, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.':
			b.WriteRune(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
