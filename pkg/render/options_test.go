package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
	"github.com/goliatone/go-formstyle/pkg/testsupport"
)

func settingsTree() layout.Tree {
	return layout.New().Layout(testsupport.SettingsDeclaration(), model.LayoutContext{ContainerWidth: 500})
}

func TestRenderOptions_FormMethod(t *testing.T) {
	cases := []struct {
		method   string
		want     string
		override string
	}{
		{"", "post", ""},
		{"post", "post", ""},
		{"GET", "get", ""},
		{"patch", "post", "PATCH"},
		{"DELETE", "post", "DELETE"},
	}
	for _, tc := range cases {
		method, override := RenderOptions{Method: tc.method}.FormMethod()
		if method != tc.want || override != tc.override {
			t.Errorf("FormMethod(%q) = %q, %q; want %q, %q", tc.method, method, override, tc.want, tc.override)
		}
	}
}

func TestSortedHiddenFields(t *testing.T) {
	options := RenderOptions{
		Method: "PUT",
		HiddenFields: MergeHiddenFields(
			map[string]string{" version ": "1"},
			CSRFToken("_csrf", "abc"),
			VersionField("version", 2),
			Hidden("", "dropped"),
		),
	}
	want := []HiddenField{
		{Name: "_csrf", Value: "abc"},
		{Name: "_method", Value: "PUT"},
		{Name: "version", Value: "2"},
	}
	if diff := cmp.Diff(want, SortedHiddenFields(options)); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
	if got := SortedHiddenFields(RenderOptions{}); got != nil {
		t.Fatalf("expected no hidden fields, got %v", got)
	}
}

func TestApplySections(t *testing.T) {
	tree := settingsTree()

	only := ApplySections(tree, []string{" ABOUT "})
	if len(only.Sections) != 1 || only.Sections[0].ID != "about" {
		t.Fatalf("expected only the about section, got %+v", only.Sections)
	}
	if only.LabelWidth != tree.LabelWidth {
		t.Fatalf("expected label width to survive filtering")
	}
	if len(tree.Sections) != 2 {
		t.Fatalf("expected original tree to keep its sections")
	}
	if all := ApplySections(tree, nil); len(all.Sections) != 2 {
		t.Fatalf("expected empty filter to keep every section")
	}
}

func TestLocalize(t *testing.T) {
	tree := settingsTree()
	dictionary := map[string]string{
		"Settings": "Réglages",
		"Profile":  "Profil",
		"Name":           "Nom",
		"Jane Appleseed": "Jeanne Dupont",
		"Save":           "Enregistrer",
	}
	var missing []string
	localized := Localize(tree, RenderOptions{
		Locale: "fr",
		Translator: TranslatorFunc(func(locale, key string) (string, error) {
			if locale != "fr" {
				return "", errors.New("unexpected locale")
			}
			value, ok := dictionary[key]
			if !ok {
				return "", errors.New("missing")
			}
			return value, nil
		}),
		OnMissing: func(_ string, key string, _ error) string {
			missing = append(missing, key)
			return key
		},
	})

	if localized.Title != "Réglages" || localized.Sections[0].Header.Text != "Profil" {
		t.Fatalf("expected title and header to be translated, got %q %q", localized.Title, localized.Sections[0].Header.Text)
	}
	if got := localized.Sections[0].Panel.Children[0].Label.Text; got != "Nom" {
		t.Fatalf("expected label to be translated, got %q", got)
	}
	name, _ := model.ControlOf(localized.Sections[0].Panel.Children[0].Content.Body)
	if name.Placeholder != "Jeanne Dupont" || name.Title != "Name" {
		t.Fatalf("expected placeholder translated and control title kept, got %q %q", name.Placeholder, name.Title)
	}
	var save model.Control
	for _, node := range localized.Rows() {
		if node.Content == nil {
			continue
		}
		if control, ok := model.ControlOf(node.Content.Body); ok && control.Control == model.ControlButton {
			save = control
		}
	}
	if save.Title != "Enregistrer" || save.Name != "save" {
		t.Fatalf("expected button title to be translated, got %+v", save)
	}
	original, _ := model.ControlOf(tree.Sections[0].Panel.Children[0].Content.Body)
	if original.Placeholder != "Jane Appleseed" {
		t.Fatalf("expected source control to stay untouched")
	}
	if tree.Sections[0].Header.Text != "Profile" || tree.Sections[0].Panel.Children[0].Label.Text != "Name" {
		t.Fatalf("expected source tree to stay untouched")
	}
	wantMissing := []string{"Your name is visible to collaborators.", "Public profile"}
	if diff := cmp.Diff(wantMissing, missing); diff != "" {
		t.Fatalf("missing keys mismatch (-want +got):\n%s", diff)
	}

	if same := Localize(tree, RenderOptions{}); same.Title != "Settings" {
		t.Fatalf("expected nil translator to keep text")
	}
}
