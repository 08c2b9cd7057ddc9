package declaration

import (
	"sort"

	"github.com/goliatone/go-formstyle/pkg/model"
)

// Store keeps the forms parsed from declaration files. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	forms map[string]Form
}

// Form is a compiled form plus the file it came from.
type Form struct {
	ID          string
	Source      string
	IndentAll   *bool
	Declaration model.Declaration
}

// Form returns the form registered under id.
func (s *Store) Form(id string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// IDs returns the sorted form ids.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// FormConfig is the on-disk shape of a form.
type FormConfig struct {
	ID        string            `json:"id" yaml:"id"`
	Title     string            `json:"title" yaml:"title"`
	IndentAll *bool             `json:"indentAll,omitempty" yaml:"indentAll,omitempty"`
	Sections  []SectionConfig   `json:"sections,omitempty" yaml:"sections,omitempty"`
	Entries   []EntryConfig     `json:"entries,omitempty" yaml:"entries,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// SectionConfig groups items under an optional header and footer.
type SectionConfig struct {
	ID     string       `json:"id" yaml:"id"`
	Header string       `json:"header" yaml:"header"`
	Footer string       `json:"footer" yaml:"footer"`
	Items  []ItemConfig `json:"items" yaml:"items"`
}

// EntryConfig is one element of a flat entry list. Exactly one of the marker
// fields or the item fields is expected.
type EntryConfig struct {
	Section    *string `json:"section,omitempty" yaml:"section,omitempty"`
	Header     string  `json:"header,omitempty" yaml:"header,omitempty"`
	Footer     string  `json:"footer,omitempty" yaml:"footer,omitempty"`
	ItemConfig `yaml:",inline"`
}

// ItemConfig describes one form item. Text, Markup and Markdown produce static
// content, with Markdown compiled to Markup. Control produces a form control
// whose Label becomes its own label.
type ItemConfig struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Text        string   `json:"text,omitempty" yaml:"text,omitempty"`
	Markup      string   `json:"markup,omitempty" yaml:"markup,omitempty"`
	Markdown    string   `json:"markdown,omitempty" yaml:"markdown,omitempty"`
	Control     string   `json:"control,omitempty" yaml:"control,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Value       string   `json:"value,omitempty" yaml:"value,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
	Checked     bool     `json:"checked,omitempty" yaml:"checked,omitempty"`
}

func (c ItemConfig) empty() bool {
	return c.Text == "" && c.Markup == "" && c.Markdown == "" && c.Control == ""
}
