package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-formstyle/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formstyle/internal/openapi/parser"
	"github.com/goliatone/go-formstyle/pkg/declaration"
	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
	"github.com/goliatone/go-formstyle/pkg/render"
	"github.com/goliatone/go-formstyle/pkg/renderers/tui"
	"github.com/goliatone/go-formstyle/pkg/renderers/vanilla"
	"github.com/goliatone/go-formstyle/pkg/theme"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithBuilder injects the OpenAPI operation to declaration builder.
func WithBuilder(builder pkgopenapi.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithEngineOptions sets the layout options every pass starts from.
func WithEngineOptions(options ...layout.Option) Option {
	return func(o *Orchestrator) {
		o.engineOptions = append(o.engineOptions, options...)
	}
}

// WithDeclarations serves Request.FormID lookups from store.
func WithDeclarations(store *declaration.Store) Option {
	return func(o *Orchestrator) {
		o.declarations = store
	}
}

// WithDeclarationFS loads declaration files from fsys on construction.
func WithDeclarationFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.declarationFS = fsys
	}
}

// WithThemeSelector resolves Request.Theme through selector.
func WithThemeSelector(selector gotheme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes = selector
	}
}

// WithThemeFS loads theme manifests from fsys into a selector falling back
// to defaultTheme and defaultVariant.
func WithThemeFS(fsys fs.FS, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		o.themeFS = fsys
		o.defaultTheme = defaultTheme
		o.defaultVariant = defaultVariant
	}
}

// WithTransformer registers a Transformer that can rewrite declarations
// before the layout pass.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the pipeline from a declaration source to
// rendered output. Defaults cover every stage (kin-openapi loader and parser,
// the html and terminal renderers) so a bare New() is usable.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	builder         pkgopenapi.Builder
	registry        *render.Registry
	defaultRenderer string
	engineOptions   []layout.Option
	declarations    *declaration.Store
	declarationFS   fs.FS
	themes          gotheme.ThemeSelector
	themeFS         fs.FS
	defaultTheme    string
	defaultVariant  string
	transformer     Transformer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Loading
// errors from WithDeclarationFS or WithThemeFS surface on the first call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one form to lay out and render. Exactly one source is
// used, checked in order: Declaration, FormID, then Document or Source.
// OperationID falls back to the operation the source names.
type Request struct {
	Declaration *model.Declaration
	FormID      string

	Source      pkgopenapi.Source
	Document    *pkgopenapi.Document
	OperationID string

	// Width is the container width. Zero or less means unknown.
	Width float64
	// IndentAll overrides the form's own setting and the engine default.
	IndentAll *bool

	Renderer     string
	Theme        string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Result is a completed layout pass plus the render options the renderer
// will receive.
type Result struct {
	Tree          layout.Tree
	RenderOptions render.RenderOptions
}

// Layout resolves the declaration, applies the theme and runs one layout
// pass.
func (o *Orchestrator) Layout(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	decl, formIndent, err := o.resolveDeclaration(ctx, req)
	if err != nil {
		return Result{}, err
	}
	if err := o.applyTransformer(ctx, &decl); err != nil {
		return Result{}, err
	}

	options := append([]layout.Option(nil), o.engineOptions...)
	switch {
	case req.IndentAll != nil:
		options = append(options, layout.WithIndentAll(*req.IndentAll))
	case formIndent != nil:
		options = append(options, layout.WithIndentAll(*formIndent))
	}

	renderOptions := req.RenderOptions
	resolved, err := o.resolveTheme(req, layout.New(options...).Style())
	if err != nil {
		return Result{}, err
	}
	if resolved != nil {
		options = append(options, layout.WithStyle(resolved.Style))
		renderOptions.Theme = &render.ThemeInfo{
			Name:    resolved.Theme,
			Variant: resolved.Variant,
			CSSVars: resolved.CSSVars,
		}
	}

	tree := layout.New(options...).Layout(decl, model.LayoutContext{ContainerWidth: req.Width})
	return Result{Tree: tree, RenderOptions: renderOptions}, nil
}

// Generate runs Layout and hands the tree to the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Layout(ctx, req)
	if err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, result.Tree, result.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer returns the renderer Generate would use for name.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	return o.rendererFor(name)
}

// FormIDs lists the forms available for Request.FormID.
func (o *Orchestrator) FormIDs() []string {
	return o.declarations.IDs()
}

// Themes lists the registered theme names when the selector can enumerate
// them.
func (o *Orchestrator) Themes() []string {
	if lister, ok := o.themes.(interface{ Names() []string }); ok {
		return lister.Names()
	}
	return nil
}

func (o *Orchestrator) resolveDeclaration(ctx context.Context, req Request) (model.Declaration, *bool, error) {
	switch {
	case req.Declaration != nil:
		return *req.Declaration, nil, nil
	case strings.TrimSpace(req.FormID) != "":
		form, ok := o.declarations.Form(req.FormID)
		if !ok {
			return model.Declaration{}, nil, fmt.Errorf("orchestrator: form %q not found", req.FormID)
		}
		return form.Declaration, form.IndentAll, nil
	case req.Document != nil || !req.Source.IsZero():
		decl, err := o.declarationFromOpenAPI(ctx, req)
		return decl, nil, err
	default:
		return model.Declaration{}, nil, errors.New("orchestrator: declaration, form id or openapi source is required")
	}
}

func (o *Orchestrator) declarationFromOpenAPI(ctx context.Context, req Request) (model.Declaration, error) {
	var doc pkgopenapi.Document
	if req.Document != nil {
		doc = *req.Document
	} else {
		loaded, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return model.Declaration{}, fmt.Errorf("orchestrator: load document: %w", err)
		}
		doc = loaded
	}
	operationID := firstNonEmpty(req.OperationID, doc.Source().Operation)
	if operationID == "" {
		return model.Declaration{}, errors.New("orchestrator: operation id is required")
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return model.Declaration{}, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	op, ok := operations[operationID]
	if !ok {
		return model.Declaration{}, fmt.Errorf("orchestrator: operation %q not found", operationID)
	}
	decl, err := o.builder.Build(op)
	if err != nil {
		return model.Declaration{}, fmt.Errorf("orchestrator: build declaration: %w", err)
	}
	return decl, nil
}

func (o *Orchestrator) resolveTheme(req Request, base layout.Style) (*theme.Resolved, error) {
	if o.themes == nil {
		if req.Theme != "" {
			return nil, fmt.Errorf("orchestrator: theme %q requested but no theme selector is configured", req.Theme)
		}
		return nil, nil
	}
	resolved, err := theme.Resolve(o.themes, req.Theme, req.ThemeVariant, base)
	if err != nil && req.Theme == "" && errors.Is(err, theme.ErrThemeNotFound) {
		// no default theme configured
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve theme: %w", err)
	}
	return &resolved, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyTransformer(ctx context.Context, decl *model.Declaration) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, decl); err != nil {
		return fmt.Errorf("orchestrator: transform declaration: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = pkgopenapi.NewBuilder()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		html, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		terminal, _ := tui.New()
		o.registry.MustRegister(html, terminal)
	}
	if o.declarationFS != nil {
		store, err := declaration.LoadFS(o.declarationFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load declarations: %w", err)
			return
		}
		o.declarations = store
	}
	if o.themeFS != nil {
		selector := theme.NewManifestSelector(o.defaultTheme, o.defaultVariant)
		if err := theme.LoadManifests(o.themeFS, selector); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load themes: %w", err)
			return
		}
		o.themes = selector
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
