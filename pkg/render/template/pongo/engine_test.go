package pongo_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-formstyle/pkg/render/template/pongo"
	"github.com/goliatone/go-formstyle/pkg/testsupport"
)

func newEngine(t *testing.T) *pongo.Engine {
	t.Helper()
	engine, err := pongo.New(pongo.WithFS(os.DirFS("testdata")))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("templates/hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello, Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer got %q, want %q", written, result)
	}
}

func TestEngine_StructDataUsesJSONNames(t *testing.T) {
	engine := newEngine(t)
	data := struct {
		Width float64 `json:"width"`
		Label string  `json:"label"`
	}{Width: 150, Label: "  Name  "}

	got, err := engine.RenderTemplate("templates/width.tmpl", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<span style="width: 150px">Name</span>`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithFS(os.DirFS("testdata")),
		pongo.WithGlobalData(map[string]any{"settings": map[string]any{"env": "staging"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.RenderTemplate("templates/global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "staging" {
		t.Fatalf("got %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return strings.ToUpper(input.(string)) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderTemplate("templates/filter", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("got %q", got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderString("{% for n in items %}{{ n }};{% endfor %}", map[string]any{"items": []any{"a", "b"}})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "a;b;" {
		t.Fatalf("got %q", got)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected configuration error")
	}
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("templates/missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}
