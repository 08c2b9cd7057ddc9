package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
	"github.com/goliatone/go-formstyle/pkg/render"
	rendertemplate "github.com/goliatone/go-formstyle/pkg/render/template"
	"github.com/goliatone/go-formstyle/pkg/render/template/pongo"
)

const (
	formTemplate    = "templates/form.tmpl"
	controlTemplate = "templates/control.tmpl"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	classes          Classes
	stylesheet       string
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithClasses overrides the CSS class names. Empty fields keep the defaults.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = mergeClasses(cfg.classes, classes)
	}
}

// WithStylesheet replaces the bundled stylesheet. An empty string omits the
// <style> element.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = css
		cfg.inlineStyles = css != ""
	}
}

// Renderer emits a standalone HTML form for a layout tree.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	classes      Classes
	stylesheet   string
	inlineStyles bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		classes:      DefaultClasses(),
		stylesheet:   defaultStylesheet(),
		inlineStyles: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:    renderer,
		classes:      cfg.classes,
		stylesheet:   cfg.stylesheet,
		inlineStyles: cfg.inlineStyles,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, tree layout.Tree, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	tree = render.Localize(render.ApplySections(tree, options.Sections), options)
	switches := tree.Style.SwitchToggles
	view, err := buildFormView(tree, options, func(content model.Content, id string) (string, error) {
		return r.renderContent(content, id, options, switches)
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: build view: %w", err)
	}

	payload := map[string]any{
		"form":    view,
		"classes": r.classes,
	}
	if r.inlineStyles {
		payload["stylesheet"] = r.stylesheet
	}
	result, err := r.templates.RenderTemplate(formTemplate, payload)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderContent(content model.Content, id string, options render.RenderOptions, switches bool) (string, error) {
	if fragment, ok := textFragment(content); ok {
		return fragment, nil
	}

	control, ok := model.ControlOf(content)
	if !ok {
		return "", fmt.Errorf("unsupported content %T", content)
	}

	fragment, err := r.templates.RenderTemplate(controlTemplate, map[string]any{
		"control": newControlView(control, id, options, switches),
		"classes": r.classes,
	})
	if err != nil {
		return "", fmt.Errorf("render control %q: %w", control.Name, err)
	}
	return fragment, nil
}

func mergeClasses(base, override Classes) Classes {
	pick := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	pick(&base.Form, override.Form)
	pick(&base.Title, override.Title)
	pick(&base.Section, override.Section)
	pick(&base.Header, override.Header)
	pick(&base.Panel, override.Panel)
	pick(&base.Row, override.Row)
	pick(&base.Block, override.Block)
	pick(&base.Label, override.Label)
	pick(&base.Content, override.Content)
	pick(&base.Separator, override.Separator)
	pick(&base.Footer, override.Footer)
	pick(&base.Switch, override.Switch)
	pick(&base.Error, override.Error)
	return base
}
