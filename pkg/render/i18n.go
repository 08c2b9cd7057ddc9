package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
)

// ErrMissingTranslator is passed to the missing handler when text needs
// translating but no Translator is configured.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// Translator resolves a key for a locale.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string) (string, error)

func (fn TranslatorFunc) Translate(locale, key string) (string, error) {
	return fn(locale, key)
}

// MissingTranslationHandler decides the text used when a key cannot be
// translated. The default keeps the key.
type MissingTranslationHandler func(locale, key string, err error) string

// Localize returns a copy of tree with its title, headers, footers, labels,
// button titles and control placeholders translated. The existing text is the
// translation key. Values and select options are data and stay as they are.
// A nil Translator leaves the tree untouched.
func Localize(tree layout.Tree, options RenderOptions) layout.Tree {
	if options.Translator == nil {
		return tree
	}
	tr := func(text string) string {
		return translate(options.Locale, text, options.Translator, options.OnMissing)
	}

	tree.Title = tr(tree.Title)
	sections := make([]layout.SectionNode, len(tree.Sections))
	for i, section := range tree.Sections {
		if section.Header != nil {
			header := *section.Header
			header.Text = tr(header.Text)
			section.Header = &header
		}
		if section.Footer != nil {
			footer := *section.Footer
			footer.Text = tr(footer.Text)
			section.Footer = &footer
		}
		children := make([]layout.Node, len(section.Panel.Children))
		for j, node := range section.Panel.Children {
			if node.Label != nil {
				label := *node.Label
				label.Text = tr(label.Text)
				node.Label = &label
			}
			if node.Content != nil {
				if control, ok := model.ControlOf(node.Content.Body); ok {
					if control.Control == model.ControlButton {
						control.Title = tr(control.Title)
					}
					control.Placeholder = tr(control.Placeholder)
					content := *node.Content
					content.Body = control
					node.Content = &content
				}
			}
			children[j] = node
		}
		section.Panel.Children = children
		sections[i] = section
	}
	tree.Sections = sections
	return tree
}

func translate(locale, key string, t Translator, onMissing MissingTranslationHandler) string {
	if strings.TrimSpace(key) == "" {
		return key
	}
	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, ErrMissingTranslator)
		}
		return key
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if onMissing != nil {
		return onMissing(locale, key, err)
	}
	return key
}
