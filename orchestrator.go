package formstyle

import (
	"context"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
	"github.com/goliatone/go-formstyle/pkg/orchestrator"
	"github.com/goliatone/go-formstyle/pkg/render"
	theme "github.com/goliatone/go-theme"
)

// Declaration is the flat form content handed to the layout engine.
type Declaration = model.Declaration

// Tree is the output of one layout pass.
type Tree = layout.Tree

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewEngine returns a layout engine for callers that only need the tree.
func NewEngine(options ...layout.Option) *layout.Engine {
	return layout.New(options...)
}

// GenerateHTML lays out decl at width and renders it as an HTML form.
func GenerateHTML(ctx context.Context, decl Declaration, width float64, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Declaration: &decl,
		Width:       width,
		Renderer:    "html",
	})
}

// GenerateFromOpenAPI loads the OpenAPI source, derives a declaration from the
// operation's request body and renders it using the named renderer.
func GenerateFromOpenAPI(ctx context.Context, source pkgopenapi.Source, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}

// GenerateFromDocument renders a form using a pre-loaded document, bypassing
// the loader stage.
func GenerateFromDocument(ctx context.Context, doc pkgopenapi.Document, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:    &doc,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithIndentAll sets the engine default for shouldIndentAllContent.
func WithIndentAll(indent bool) orchestrator.Option {
	return orchestrator.WithEngineOptions(layout.WithIndentAll(indent))
}
