package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstyle/pkg/model"
)

// SettingsDeclaration returns a two-section form mixing labeled controls,
// plain text and markup. Renderer tests share it so their assertions line up.
func SettingsDeclaration() model.Declaration {
	decl := model.Declaration{ID: "settings", Title: "Settings"}
	decl.Append(
		model.SectionMarker("profile"),
		model.Header("Profile"),
		model.ItemEntry(model.NewItem("name", model.Control{
			Control: model.ControlInput, Name: "name", Title: "Name", Placeholder: "Jane Appleseed",
		})),
		model.ItemEntry(model.NewItem("public", model.Control{
			Control: model.ControlToggle, Name: "public", Title: "Public profile",
		})),
		model.ItemEntry(model.Item{ID: "hint", Body: model.Text{Value: "Changes apply immediately."}}),
		model.Footer("Your name is visible to collaborators."),
		model.SectionMarker("about"),
		model.ItemEntry(model.Item{ID: "bio", Body: model.Markup{HTML: `<em>Hello</em><script>alert(1)</script>`}}),
		model.ItemEntry(model.NewItem("save", model.Control{Control: model.ControlButton, Name: "save", Title: "Save"})),
	)
	return decl
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CompareJSON decodes both payloads and diffs the decoded values, so
// formatting and key order do not matter.
func CompareJSON(t *testing.T, want, got []byte) string {
	t.Helper()
	var w, g any
	if err := json.Unmarshal(want, &w); err != nil {
		t.Fatalf("decode want: %v", err)
	}
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("decode got: %v", err)
	}
	return cmp.Diff(w, g)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
