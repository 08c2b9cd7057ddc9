package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	internalLoader "github.com/goliatone/go-formstyle/internal/openapi/loader"

	"github.com/goliatone/go-formstyle/pkg/declaration"
	pkgopenapi "github.com/goliatone/go-formstyle/pkg/openapi"
	"github.com/goliatone/go-formstyle/pkg/orchestrator"
	"github.com/goliatone/go-formstyle/pkg/renderers/tui"
)

const remoteTimeout = 30 * time.Second

// Runner executes a completed Config.
type Runner struct {
	Driver tui.PromptDriver
	Stdout io.Writer
}

// FormIDs lists the forms in cfg.FormsDir.
func FormIDs(cfg Config) ([]string, error) {
	store, err := declaration.LoadFS(os.DirFS(cfg.FormsDir))
	if err != nil {
		return nil, fmt.Errorf("cli: load forms: %w", err)
	}
	return store.IDs(), nil
}

// Run generates the form described by cfg and writes it to cfg.Output or
// Stdout. With Collect set, control values are prompted for first and the
// form is rendered prefilled.
func (r Runner) Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	options, err := orchestratorOptions(cfg)
	if err != nil {
		return err
	}
	orch := orchestrator.New(options...)

	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}

	if cfg.Collect {
		if err := r.collect(ctx, orch, &req); err != nil {
			return err
		}
	}

	output, err := orch.Generate(ctx, req)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		out := r.Stdout
		if out == nil {
			out = os.Stdout
		}
		_, err := fmt.Fprintln(out, string(output))
		return err
	}
	if err := os.WriteFile(cfg.Output, output, 0o644); err != nil {
		return fmt.Errorf("cli: write output: %w", err)
	}
	return nil
}

func (r Runner) collect(ctx context.Context, orch *orchestrator.Orchestrator, req *orchestrator.Request) error {
	result, err := orch.Layout(ctx, *req)
	if err != nil {
		return err
	}
	collector, err := tui.New(tui.WithPromptDriver(r.Driver))
	if err != nil {
		return err
	}
	values, err := collector.Collect(ctx, result.Tree, req.RenderOptions.Values)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return ErrAborted
		}
		return fmt.Errorf("cli: collect values: %w", err)
	}
	req.RenderOptions.Values = values
	return nil
}

func orchestratorOptions(cfg Config) ([]orchestrator.Option, error) {
	var options []orchestrator.Option
	if cfg.FormsDir != "" {
		options = append(options, orchestrator.WithDeclarationFS(os.DirFS(cfg.FormsDir)))
	}
	if cfg.ThemeDir != "" {
		options = append(options, orchestrator.WithThemeFS(os.DirFS(cfg.ThemeDir), cfg.Theme, cfg.Variant))
	}
	if cfg.OpenAPI != "" {
		loader := internalLoader.New(pkgopenapi.NewLoaderOptions(pkgopenapi.WithHTTPFallback(remoteTimeout)))
		options = append(options, orchestrator.WithLoader(loader))
	}
	if cfg.Preset != "" {
		preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(cfg.Preset)), filepath.Base(cfg.Preset))
		if err != nil {
			return nil, fmt.Errorf("cli: %w", err)
		}
		options = append(options, orchestrator.WithTransformer(preset))
	}
	return options, nil
}

func buildRequest(cfg Config) (orchestrator.Request, error) {
	req := orchestrator.Request{
		Width:        cfg.Width,
		Renderer:     cfg.Renderer,
		Theme:        cfg.Theme,
		ThemeVariant: cfg.Variant,
	}
	if cfg.IndentSet {
		indent := cfg.Indent
		req.IndentAll = &indent
	}

	switch {
	case cfg.FormFile != "":
		form, err := loadFormFile(cfg.FormFile, cfg.FormID)
		if err != nil {
			return req, err
		}
		decl := form.Declaration
		req.Declaration = &decl
		if req.IndentAll == nil {
			req.IndentAll = form.IndentAll
		}
	case cfg.FormsDir != "":
		req.FormID = cfg.FormID
	case cfg.OpenAPI != "":
		source, err := pkgopenapi.SourceFor(cfg.OpenAPI)
		if err != nil {
			return req, fmt.Errorf("cli: %w", err)
		}
		if cfg.Operation != "" {
			source = source.WithOperation(cfg.Operation)
		}
		req.Source = source
	}
	return req, nil
}

func loadFormFile(path, id string) (declaration.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return declaration.Form{}, fmt.Errorf("cli: read form: %w", err)
	}
	forms, err := declaration.Parse(data, path)
	if err != nil {
		return declaration.Form{}, err
	}
	if len(forms) == 0 {
		return declaration.Form{}, fmt.Errorf("cli: no forms in %s", path)
	}
	if id == "" {
		return forms[0], nil
	}
	for _, form := range forms {
		if form.ID == id {
			return form, nil
		}
	}
	return declaration.Form{}, fmt.Errorf("cli: form %q not found in %s", id, path)
}
