package layout

import "github.com/goliatone/go-formstyle/pkg/model"

// Option configures an Engine.
type Option func(*Engine)

// WithIndentAll gives every unlabeled item an empty label so all content
// aligns on the label column. Off by default.
func WithIndentAll(indent bool) Option {
	return func(e *Engine) {
		e.indentAll = indent
	}
}

// WithStyle merges style over the defaults.
func WithStyle(style Style) Option {
	return func(e *Engine) {
		e.style = e.style.Merge(style)
	}
}

// WithWidthPolicy replaces the label width policy. Policies without a ratio
// are ignored.
func WithWidthPolicy(policy WidthPolicy) Option {
	return func(e *Engine) {
		if policy.Ratio > 0 {
			e.policy = policy
		}
	}
}

// Engine runs layout passes. It is immutable once built.
type Engine struct {
	indentAll bool
	style     Style
	policy    WidthPolicy
}

// New constructs an Engine applying the provided options.
func New(options ...Option) *Engine {
	e := &Engine{
		style:  DefaultStyle(),
		policy: DefaultWidthPolicy,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// IndentAll reports the indentation setting.
func (e *Engine) IndentAll() bool {
	return e.indentAll
}

// Style returns the effective style.
func (e *Engine) Style() Style {
	return e.style
}

// Layout runs one pass over decl. A container width that is not positive
// means the geometry is not known yet; the style's default form width stands
// in for it. The label width is resolved once and shared by every section.
func (e *Engine) Layout(decl model.Declaration, ctx model.LayoutContext) Tree {
	width := ctx.ContainerWidth
	if !(width > 0) {
		width = e.style.DefaultFormWidth
	}
	labelWidth := e.policy.Resolve(width)

	sections := Partition(decl.Entries)
	tree := Tree{
		Title:      decl.Title,
		Width:      width,
		MinWidth:   e.style.MinFormWidth,
		LabelWidth: labelWidth,
		IndentAll:  e.indentAll,
		Style:      e.style,
		Sections:   make([]SectionNode, 0, len(sections)),
	}
	for _, section := range sections {
		rows := Normalize(section, e.indentAll)
		tree.Sections = append(tree.Sections, Decorate(section, rows, labelWidth, e.style))
	}
	return tree
}
