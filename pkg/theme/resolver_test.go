package theme

import (
	"errors"
	"testing"
	"testing/fstest"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formstyle/pkg/layout"
)

func acmeManifest() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenSectionBackground: "#ffffff",
			TokenCornerRadius:      "8px",
			"brand":                "#123456",
		},
		Variants: map[string]gotheme.Variant{
			"dark": {
				Tokens: map[string]string{
					TokenSectionBackground: "#1e1e1e",
					TokenBorder:            "#333333",
				},
			},
		},
	}
}

func TestResolve_MergesVariantTokens(t *testing.T) {
	selector := NewManifestSelector("acme", "")
	if err := selector.Register(acmeManifest()); err != nil {
		t.Fatalf("register: %v", err)
	}

	resolved, err := Resolve(selector, "", "dark", layout.DefaultStyle())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Theme != "acme" || resolved.Variant != "dark" {
		t.Fatalf("unexpected selection: %s/%s", resolved.Theme, resolved.Variant)
	}
	if resolved.Style.SectionBackground != "#1e1e1e" || resolved.Style.Border != "#333333" {
		t.Fatalf("variant colours not applied: %+v", resolved.Style)
	}
	if resolved.Style.CornerRadius != 8 {
		t.Fatalf("base metric not applied: %v", resolved.Style.CornerRadius)
	}
	if resolved.Style.Background != layout.DefaultStyle().Background {
		t.Fatalf("unset tokens should keep the base style")
	}
	if resolved.CSSVars["--brand"] != "#123456" || resolved.CSSVars["--section-background"] != "#1e1e1e" {
		t.Fatalf("css vars not derived: %#v", resolved.CSSVars)
	}
}

func TestResolve_UnknownTheme(t *testing.T) {
	selector := NewManifestSelector("", "")
	_, err := Resolve(selector, "missing", "", layout.DefaultStyle())
	if !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestResolve_NilSelectorKeepsBase(t *testing.T) {
	base := layout.DefaultStyle()
	resolved, err := Resolve(nil, "acme", "", base)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Style != base {
		t.Fatalf("expected base style")
	}
}

func TestStyleFromTokens_InvalidMetric(t *testing.T) {
	for _, raw := range []string{"wide", "-2"} {
		_, err := StyleFromTokens(map[string]string{TokenMinRowHeight: raw}, layout.DefaultStyle())
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestManifestSelector_DuplicateAndEmpty(t *testing.T) {
	selector := NewManifestSelector("", "")
	if err := selector.Register(acmeManifest()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := selector.Register(acmeManifest()); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := selector.Register(&gotheme.Manifest{}); err == nil {
		t.Fatalf("expected name error")
	}
}

func TestLoadManifests(t *testing.T) {
	fsys := fstest.MapFS{
		"themes/night.yaml": {Data: []byte(`
name: night
version: "2"
tokens:
  form.background: "#000000"
variants:
  contrast:
    tokens:
      section.border: "#ffffff"
`)},
		"themes/README.md": {Data: []byte("ignored")},
	}
	selector := NewManifestSelector("night", "contrast")
	if err := LoadManifests(fsys, selector); err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if names := selector.Names(); len(names) != 1 || names[0] != "night" {
		t.Fatalf("unexpected names: %v", names)
	}

	resolved, err := Resolve(selector, "", "", layout.DefaultStyle())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Style.Background != "#000000" || resolved.Style.Border != "#ffffff" {
		t.Fatalf("manifest tokens not applied: %+v", resolved.Style)
	}
}
