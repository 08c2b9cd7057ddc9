package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden input emitted next to the visible form content.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// CSRFToken carries a CSRF token under the input name the backend expects
// ("_csrf", "csrf_token", ...).
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// VersionField carries a version for optimistic locking.
func VersionField(name string, version any) HiddenField {
	return Hidden(name, version)
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored; later fields win.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			out[name] = field.Value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields returns the hidden fields ordered by name, plus a
// _method field when options ask for a method override.
func SortedHiddenFields(options RenderOptions) []HiddenField {
	fields := options.HiddenFields
	if _, override := options.FormMethod(); override != "" {
		fields = MergeHiddenFields(fields, Hidden("_method", override))
	}
	fields = MergeHiddenFields(fields)
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{Name: name, Value: fields[name]})
	}
	return result
}
