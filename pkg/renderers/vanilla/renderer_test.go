package vanilla

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
	"github.com/goliatone/go-formstyle/pkg/render"
	"github.com/goliatone/go-formstyle/pkg/testsupport"
)

func settingsTree(t *testing.T, width float64, indent bool) layout.Tree {
	t.Helper()
	engine := layout.New(layout.WithIndentAll(indent))
	return engine.Layout(testsupport.SettingsDeclaration(), model.LayoutContext{ContainerWidth: width})
}

func renderSettings(t *testing.T, tree layout.Tree, options render.RenderOptions) string {
	t.Helper()
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), tree, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected name %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", renderer.ContentType())
	}
}

func TestRenderer_SectionsRowsAndSeparators(t *testing.T) {
	html := renderSettings(t, settingsTree(t, 500, false), render.RenderOptions{})

	for _, want := range []string{
		`data-section="profile"`,
		`data-section="about"`,
		`<h3 class="formstyle-header" style="font-weight: 700">Profile</h3>`,
		`<p class="formstyle-footer">Your name is visible to collaborators.</p>`,
		`<label class="formstyle-label" for="fs-name" style="width: 150px;">Name</label>`,
		`border-radius: 6px;`,
		`background: #f0ebea;`,
		`1px solid #e6e1e0`,
		`min-width: 300px`,
		`<button type="submit" id="fs-save" name="save">Save</button>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}

	if got := strings.Count(html, `class="formstyle-header"`); got != 1 {
		t.Fatalf("expected a single header region, got %d", got)
	}
	if got := strings.Count(html, `class="formstyle-footer"`); got != 1 {
		t.Fatalf("expected a single footer region, got %d", got)
	}
	// profile has three rows, about has two.
	if got := strings.Count(html, `<hr class="formstyle-separator"`); got != 3 {
		t.Fatalf("expected 3 separators, got %d", got)
	}
	if got := strings.Count(html, `margin-left: 12px`); got != 3 {
		t.Fatalf("expected separators inset by 12px, got %d", got)
	}
}

func TestRenderer_SanitizesMarkup(t *testing.T) {
	html := renderSettings(t, settingsTree(t, 500, false), render.RenderOptions{})

	if !strings.Contains(html, "<em>Hello</em>") {
		t.Fatalf("expected markup to be kept")
	}
	if strings.Contains(html, "<script>") || strings.Contains(html, "alert(1)") {
		t.Fatalf("expected script to be stripped:\n%s", html)
	}
}

func TestRenderer_IndentAllAddsEmptyLabelColumn(t *testing.T) {
	html := renderSettings(t, settingsTree(t, 500, true), render.RenderOptions{})

	want := `<span class="formstyle-label" style="width: 150px;"></span>`
	if got := strings.Count(html, want); got != 3 {
		t.Fatalf("expected 3 synthesized label columns (hint, bio, save), got %d", got)
	}
	if strings.Contains(html, `class="formstyle-block"`) {
		t.Fatalf("expected no full-width blocks when indenting everything")
	}
}

func TestRenderer_PrefillsValues(t *testing.T) {
	html := renderSettings(t, settingsTree(t, 500, false), render.RenderOptions{
		Values: map[string]string{"name": "Ada <Lovelace>", "public": "on"},
	})

	if !strings.Contains(html, `value="Ada &lt;Lovelace&gt;"`) {
		t.Fatalf("expected escaped prefilled value:\n%s", html)
	}
	if !strings.Contains(html, `role="switch" class="formstyle-switch" checked>`) {
		t.Fatalf("expected checked switch:\n%s", html)
	}
}

func TestRenderer_ThemeAttributes(t *testing.T) {
	html := renderSettings(t, settingsTree(t, 800, false), render.RenderOptions{
		Theme: &render.ThemeInfo{
			Name:    "acme",
			Variant: "dark",
			CSSVars: map[string]string{"--section-background": "#222", "--form-background": "#111"},
		},
	})

	for _, want := range []string{
		`data-theme="acme"`,
		`data-variant="dark"`,
		`--form-background: #111; --section-background: #222;`,
		`width: 200px;`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}
}

func TestRenderer_Options(t *testing.T) {
	renderer, err := New(
		WithClasses(Classes{Form: "my-form"}),
		WithStylesheet(""),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), settingsTree(t, 500, false), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `<form class="my-form"`) {
		t.Fatalf("expected overridden form class:\n%s", html)
	}
	if !strings.Contains(html, `class="formstyle-panel"`) {
		t.Fatalf("expected default panel class to survive partial override")
	}
	if strings.Contains(html, "<style>") {
		t.Fatalf("expected stylesheet to be omitted")
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, settingsTree(t, 500, false), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAssetsFS_Stylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".formstyle-panel") {
		t.Fatalf("expected stylesheet to style panels")
	}
}

func TestControlID(t *testing.T) {
	cases := map[string]string{
		"s1-i0":     "fs-s1-i0",
		"user.name": "fs-user_2e_name",
		"user-name": "fs-user-name",
		"user_name": "fs-user_5f_name",
		"é":         "fs-_e9_",
	}
	for in, want := range cases {
		if got := controlID(in); got != want {
			t.Errorf("controlID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderer_DistinctIDsForSimilarItemIDs(t *testing.T) {
	decl := model.Declaration{ID: "account"}
	decl.Append(
		model.ItemEntry(model.NewItem("user.name", model.Control{Control: model.ControlInput, Name: "user.name", Title: "User name"})),
		model.ItemEntry(model.NewItem("user-name", model.Control{Control: model.ControlInput, Name: "user-name", Title: "Handle"})),
	)
	tree := layout.New().Layout(decl, model.LayoutContext{ContainerWidth: 500})
	html := renderSettings(t, tree, render.RenderOptions{})

	for _, fragment := range []string{`id="fs-user_2e_name"`, `id="fs-user-name"`, `for="fs-user_2e_name"`, `for="fs-user-name"`} {
		if strings.Count(html, fragment) != 1 {
			t.Fatalf("expected %s exactly once, got %d in:\n%s", fragment, strings.Count(html, fragment), html)
		}
	}
}

func TestRenderer_ErrorsOnPointerControl(t *testing.T) {
	decl := model.Declaration{ID: "signup"}
	decl.Append(model.ItemEntry(model.NewItem("email", &model.Control{
		Control: model.ControlInput, Name: "email", Title: "Email",
	})))
	tree := layout.New().Layout(decl, model.LayoutContext{ContainerWidth: 500})
	html := renderSettings(t, tree, render.RenderOptions{
		Errors: map[string][]string{"email": {"is required"}},
	})

	if !strings.Contains(html, "is required") {
		t.Fatalf("expected pointer control to carry its error:\n%s", html)
	}
	if !strings.Contains(html, `id="fs-email"`) {
		t.Fatalf("expected pointer control to render its input:\n%s", html)
	}
}

func TestRenderer_SubmissionAndErrors(t *testing.T) {
	html := renderSettings(t, settingsTree(t, 500, false), render.RenderOptions{
		Action:       "/settings",
		Method:       "PATCH",
		HiddenFields: render.MergeHiddenFields(nil, render.CSRFToken("_csrf", "tok")),
		Errors:       map[string][]string{"name": {"Name is required"}},
	})

	for _, want := range []string{
		`action="/settings" method="post"`,
		`<input type="hidden" name="_csrf" value="tok">`,
		`<input type="hidden" name="_method" value="PATCH">`,
		`<p class="formstyle-error" role="alert">Name is required</p>`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}
}

func TestRenderer_SectionSubsetAndLocale(t *testing.T) {
	html := renderSettings(t, settingsTree(t, 500, false), render.RenderOptions{
		Sections: []string{"profile"},
		Locale:   "de",
		Translator: render.TranslatorFunc(func(_, key string) (string, error) {
			if key == "Profile" {
				return "Profil", nil
			}
			return "", errors.New("missing")
		}),
	})

	if strings.Contains(html, `data-section="about"`) {
		t.Fatalf("expected about section to be filtered out")
	}
	if !strings.Contains(html, ">Profil</h3>") {
		t.Fatalf("expected translated header:\n%s", html)
	}
}
