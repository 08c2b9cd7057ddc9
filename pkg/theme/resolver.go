package theme

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formstyle/pkg/layout"
)

// ErrThemeNotFound is returned by ManifestSelector for unknown themes.
var ErrThemeNotFound = errors.New("theme: theme not found")

// Resolved is the outcome of resolving a selection.
type Resolved struct {
	Theme   string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
	Style   layout.Style
}

// Resolve selects name/variant through selector and maps the merged tokens
// onto base. An empty name asks the selector for its default.
func Resolve(selector gotheme.ThemeSelector, name, variant string, base layout.Style) (Resolved, error) {
	if selector == nil {
		return Resolved{Style: base}, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Resolved{}, fmt.Errorf("theme: select %q/%q: %w", name, variant, err)
	}
	return FromSelection(selection, base)
}

// FromSelection maps a go-theme selection onto base.
func FromSelection(selection *gotheme.Selection, base layout.Style) (Resolved, error) {
	if selection == nil {
		return Resolved{Style: base}, nil
	}
	tokens := MergedTokens(selection)
	style, err := StyleFromTokens(tokens, base)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: CSSVars(tokens),
		Style:   style,
	}, nil
}

// MergedTokens returns the manifest tokens overlaid with the selected
// variant's tokens.
func MergedTokens(selection *gotheme.Selection) map[string]string {
	out := make(map[string]string)
	if selection == nil || selection.Manifest == nil {
		return out
	}
	for key, value := range selection.Manifest.Tokens {
		out[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// StyleFromTokens applies the known tokens to base. Numeric tokens must parse
// as non-negative numbers; a trailing "px" is accepted.
func StyleFromTokens(tokens map[string]string, base layout.Style) (layout.Style, error) {
	style := base
	colors := map[string]*string{
		TokenBackground:        &style.Background,
		TokenSectionBackground: &style.SectionBackground,
		TokenBorder:            &style.Border,
	}
	for token, dst := range colors {
		if value := strings.TrimSpace(tokens[token]); value != "" {
			*dst = value
		}
	}

	metrics := map[string]*float64{
		TokenBorderWidth:      &style.BorderWidth,
		TokenCornerRadius:     &style.CornerRadius,
		TokenMinRowHeight:     &style.MinRowHeight,
		TokenContentPadding:   &style.ContentPadding,
		TokenFormPadding:      &style.FormPadding,
		TokenSeparatorHeight:  &style.SeparatorHeight,
		TokenSeparatorInset:   &style.SeparatorInset,
		TokenDefaultFormWidth: &style.DefaultFormWidth,
		TokenMinFormWidth:     &style.MinFormWidth,
	}
	for token, dst := range metrics {
		raw, ok := tokens[token]
		if !ok {
			continue
		}
		value, err := parseMetric(raw)
		if err != nil {
			return layout.Style{}, fmt.Errorf("theme: token %q: %w", token, err)
		}
		*dst = value
	}
	return style, nil
}

func parseMetric(raw string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "px")
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative value %q", raw)
	}
	return value, nil
}

// CSSVars derives CSS custom properties from tokens: "section.background"
// becomes "--section-background".
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.NewReplacer(".", "-", "_", "-", " ", "-").Replace(strings.TrimSpace(key))
		if name == "" {
			continue
		}
		out["--"+name] = value
	}
	return out
}

// ManifestSelector is an in-memory gotheme.ThemeSelector over registered
// manifests. It is safe for concurrent use.
type ManifestSelector struct {
	mu             sync.RWMutex
	manifests      map[string]*gotheme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ gotheme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector builds a selector falling back to defaultTheme and
// defaultVariant when Select receives empty names.
func NewManifestSelector(defaultTheme, defaultVariant string) *ManifestSelector {
	return &ManifestSelector{
		manifests:      make(map[string]*gotheme.Manifest),
		defaultTheme:   defaultTheme,
		defaultVariant: defaultVariant,
	}
}

// Register adds a manifest keyed by its name.
func (s *ManifestSelector) Register(manifest *gotheme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return errors.New("theme: manifest name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[manifest.Name]; exists {
		return fmt.Errorf("theme: manifest %q already registered", manifest.Name)
	}
	s.manifests[manifest.Name] = manifest
	return nil
}

// Names returns the registered theme names, sorted.
func (s *ManifestSelector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select implements gotheme.ThemeSelector. Unknown variants resolve to the
// manifest's base tokens.
func (s *ManifestSelector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	if name == "" {
		name = s.defaultTheme
	}
	if variant == "" {
		variant = s.defaultVariant
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return &gotheme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
