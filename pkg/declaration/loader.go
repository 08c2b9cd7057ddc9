package declaration

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstyle/pkg/model"
)

type documentFile struct {
	Forms      map[string]FormConfig `json:"forms" yaml:"forms"`
	FormConfig `yaml:",inline"`
}

// LoadFS walks fsys and parses every JSON/YAML declaration file. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Form)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDeclarationFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("declaration: read %s: %w", path, err)
		}
		forms, err := Parse(data, path)
		if err != nil {
			return err
		}
		for _, form := range forms {
			if _, exists := store.forms[form.ID]; exists {
				return fmt.Errorf("declaration: duplicate form %q (file %s)", form.ID, path)
			}
			store.forms[form.ID] = form
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes one declaration file. JSON is tried first, then YAML. A file
// without an explicit id takes its base name as the form id.
func Parse(data []byte, source string) ([]Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, source)
	}

	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	var forms []Form
	if len(doc.Forms) > 0 {
		for key, cfg := range doc.Forms {
			id := strings.TrimSpace(key)
			if id == "" {
				return nil, fmt.Errorf("declaration: file %s defines a form with an empty id", source)
			}
			cfg.ID = id
			form, err := compileForm(cfg, source)
			if err != nil {
				return nil, err
			}
			forms = append(forms, form)
		}
		sortForms(forms)
		return forms, nil
	}

	cfg := doc.FormConfig
	if len(cfg.Sections) == 0 && len(cfg.Entries) == 0 && cfg.Title == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoForms, source)
	}
	if strings.TrimSpace(cfg.ID) == "" {
		cfg.ID = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	form, err := compileForm(cfg, source)
	if err != nil {
		return nil, err
	}
	return []Form{form}, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("declaration: parse %s: invalid JSON or YAML", source)
}

func compileForm(cfg FormConfig, source string) (Form, error) {
	if len(cfg.Sections) > 0 && len(cfg.Entries) > 0 {
		return Form{}, fmt.Errorf("declaration: form %q (file %s) mixes sections and entries", cfg.ID, source)
	}

	decl := model.Declaration{
		ID:       strings.TrimSpace(cfg.ID),
		Title:    cfg.Title,
		Metadata: cloneStringMap(cfg.Metadata),
	}

	for si, section := range cfg.Sections {
		decl.Append(model.SectionMarker(section.ID))
		if section.Header != "" {
			decl.Append(model.Header(section.Header))
		}
		for ii, itemCfg := range section.Items {
			item, err := compileItem(itemCfg)
			if err != nil {
				return Form{}, fmt.Errorf("declaration: form %q (file %s) section %d item %d: %w", decl.ID, source, si, ii, err)
			}
			decl.Append(model.ItemEntry(item))
		}
		if section.Footer != "" {
			decl.Append(model.Footer(section.Footer))
		}
	}

	for idx, entryCfg := range cfg.Entries {
		entry, err := compileEntry(entryCfg)
		if err != nil {
			return Form{}, fmt.Errorf("declaration: form %q (file %s) entry %d: %w", decl.ID, source, idx, err)
		}
		decl.Append(entry)
	}

	return Form{
		ID:          decl.ID,
		Source:      source,
		IndentAll:   cfg.IndentAll,
		Declaration: decl,
	}, nil
}

func compileEntry(cfg EntryConfig) (model.Entry, error) {
	markers := 0
	var entry model.Entry
	if cfg.Section != nil {
		markers++
		entry = model.SectionMarker(*cfg.Section)
	}
	if cfg.Header != "" {
		markers++
		entry = model.Header(cfg.Header)
	}
	if cfg.Footer != "" {
		markers++
		entry = model.Footer(cfg.Footer)
	}
	if !cfg.ItemConfig.empty() {
		markers++
		item, err := compileItem(cfg.ItemConfig)
		if err != nil {
			return model.Entry{}, err
		}
		entry = model.ItemEntry(item)
	}
	switch markers {
	case 0:
		return model.Entry{}, errors.New("entry declares nothing")
	case 1:
		return entry, nil
	default:
		return model.Entry{}, errors.New("entry declares more than one of section, header, footer, item")
	}
}

func compileItem(cfg ItemConfig) (model.Item, error) {
	id := strings.TrimSpace(cfg.ID)
	switch {
	case cfg.Control != "":
		kind, err := model.ParseControlKind(cfg.Control)
		if err != nil {
			return model.Item{}, err
		}
		name := cfg.Name
		if name == "" {
			name = id
		}
		if id == "" {
			id = name
		}
		return model.NewItem(id, model.Control{
			Control:     kind,
			Name:        name,
			Title:       cfg.Label,
			Value:       cfg.Value,
			Placeholder: cfg.Placeholder,
			Options:     append([]string(nil), cfg.Options...),
			Checked:     cfg.Checked,
		}), nil
	case cfg.Markdown != "":
		return labeled(model.Item{ID: id, Body: model.Markup{HTML: markdownHTML(cfg.Markdown)}}, cfg.Label), nil
	case cfg.Markup != "":
		return labeled(model.Item{ID: id, Body: model.Markup{HTML: cfg.Markup}}, cfg.Label), nil
	case cfg.Text != "":
		return labeled(model.Item{ID: id, Body: model.Text{Value: cfg.Text}}, cfg.Label), nil
	default:
		return model.Item{}, fmt.Errorf("item %q has no text, markup, markdown or control", id)
	}
}

// labeled marks static content written with a label as a label/content pair.
func labeled(item model.Item, label string) model.Item {
	if label = strings.TrimSpace(label); label != "" {
		item.HasOwnLabel = true
		item.Label = label
	}
	return item
}

func isDeclarationFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func sortForms(forms []Form) {
	sort.Slice(forms, func(i, j int) bool {
		return forms[i].ID < forms[j].ID
	})
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
