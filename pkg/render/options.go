package render

import (
	"net/http"
	"strings"
)

// RenderOptions carries per-request data renderers can use without touching
// the layout pass.
type RenderOptions struct {
	// Action and Method become the HTML form's action and method. Methods a
	// browser cannot submit (PUT, PATCH, DELETE) are sent as POST with a
	// hidden _method input.
	Action string
	Method string
	// Values pre-populates controls keyed by control name. Toggles treat
	// "true", "on", "1" and "yes" as checked.
	Values map[string]string
	// Errors holds validation messages keyed by control name.
	Errors map[string][]string
	// HiddenFields are emitted as hidden inputs. See CSRFToken and friends.
	HiddenFields map[string]string
	// Sections limits output to the named section ids. Empty renders all.
	Sections []string
	// Locale and Translator localise title, header, footer and label text.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
	// Theme names the resolved theme, if any. Its style is already applied to
	// the tree; renderers only use the name and the CSS variables.
	Theme *ThemeInfo
}

// ThemeInfo describes the theme a tree was styled with.
type ThemeInfo struct {
	Name    string
	Variant string
	CSSVars map[string]string
}

// Value returns the prefilled value for name.
func (o RenderOptions) Value(name string) (string, bool) {
	if o.Values == nil || name == "" {
		return "", false
	}
	value, ok := o.Values[name]
	return value, ok
}

// ErrorsFor returns the validation messages for name.
func (o RenderOptions) ErrorsFor(name string) []string {
	if o.Errors == nil || name == "" {
		return nil
	}
	return o.Errors[name]
}

// FormMethod returns the method the HTML form element submits with and the
// value for a _method override, if one is needed.
func (o RenderOptions) FormMethod() (method, override string) {
	switch m := strings.ToUpper(strings.TrimSpace(o.Method)); m {
	case "", http.MethodPost:
		return "post", ""
	case http.MethodGet:
		return "get", ""
	default:
		return "post", m
	}
}
