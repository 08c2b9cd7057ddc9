package pongo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formstyle/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir    string
	templates  fs.FS
	extension  string
	globalData map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension sets the suffix appended to template names that lack it.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine implements template.TemplateRenderer on a pongo2 template set.
// Compiled templates are cached by path.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	ext       string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Either a base dir or an fs.FS is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tmpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("pongo: need a base dir or an fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	engine := &Engine{
		set:       pongo2.NewSet("formstyle", loaders...),
		templates: make(map[string]*pongo2.Template),
		ext:       cfg.extension,
	}
	registerDefaultFilters()

	if err := engine.GlobalContext(cfg.globalData); err != nil {
		return nil, fmt.Errorf("pongo: apply global data: %w", err)
	}
	return engine, nil
}

// RenderTemplate renders the named template.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}

	tmpl, err := e.lookup(path)
	if err != nil {
		return "", err
	}
	rendered, err := e.execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("pongo: execute template %q: %w", path, err)
	}
	return rendered, copyTo(rendered, out)
}

// RenderString compiles and renders an inline template.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	tmpl, err := e.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template string: %w", err)
	}
	rendered, err := e.execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("pongo: execute template string: %w", err)
	}
	return rendered, copyTo(rendered, out)
}

// RegisterFilter adds a filter. Filters are global in pongo2, so a name can
// only be registered once per process.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the values visible to every template.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: engine is nil")
	}
	if data == nil {
		return nil
	}
	ctx, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals.Update(ctx)
	return nil
}

func (e *Engine) execute(tmpl *pongo2.Template, data any) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("convert data: %w", err)
	}
	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Engine) lookup(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

func copyTo(rendered string, out []io.Writer) error {
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return err
		}
	}
	return nil
}

// toContext turns data into a pongo2.Context. Structs go through JSON so
// templates see the json field names.
func toContext(data any) (pongo2.Context, error) {
	var m map[string]any
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		m = v
	case map[string]any:
		m = v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
	}

	out := make(pongo2.Context, len(m))
	for key, value := range m {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		converted, err := plain(value)
		if err != nil {
			return nil, err
		}
		out[key] = converted
	}
	return out, nil
}

func plain(value any) (any, error) {
	switch v := value.(type) {
	case nil, string, bool, float64:
		return v, nil
	default:
		return jsonRoundTrip(v)
	}
}

func jsonRoundTrip(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("px") {
		_ = pongo2.RegisterFilter("px", filterPx)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterPx formats a number as a CSS pixel length: 150 -> "150px".
func filterPx(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsNumber() {
		return pongo2.AsValue("0px"), nil
	}
	return pongo2.AsValue(strconv.FormatFloat(in.Float(), 'f', -1, 64) + "px"), nil
}
