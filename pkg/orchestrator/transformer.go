package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstyle/pkg/model"
)

// Transformer rewrites a declaration before the layout pass.
type Transformer interface {
	Transform(ctx context.Context, decl *model.Declaration) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, decl *model.Declaration) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, decl *model.Declaration) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, decl)
}

// PresetTransformer applies declarative overrides from a YAML or JSON
// document:
//
//	title: Account
//	metadata: {owner: billing}
//	items:
//	  email: {label: Work email, placeholder: you@company.com}
//	  legacy_id: {remove: true}
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title    string               `yaml:"title"`
	Metadata map[string]string    `yaml:"metadata"`
	Items    map[string]itemPatch `yaml:"items"`
}

type itemPatch struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Value       string `yaml:"value"`
	Remove      bool   `yaml:"remove"`
}

// NewPresetTransformer parses a preset document. JSON is accepted as YAML.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches. Every patched item id must exist.
func (t *PresetTransformer) Transform(ctx context.Context, decl *model.Declaration) error {
	if decl == nil {
		return errors.New("preset transformer: declaration is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		decl.Title = t.document.Title
	}
	if len(t.document.Metadata) > 0 {
		metadata := make(map[string]string, len(decl.Metadata)+len(t.document.Metadata))
		for key, value := range decl.Metadata {
			metadata[key] = value
		}
		for key, value := range t.document.Metadata {
			metadata[key] = value
		}
		decl.Metadata = metadata
	}

	seen := make(map[string]bool, len(t.document.Items))
	entries := make([]model.Entry, 0, len(decl.Entries))
	for _, entry := range decl.Entries {
		if entry.Kind != model.EntryKindItem || entry.Item == nil {
			entries = append(entries, entry)
			continue
		}
		patch, ok := t.document.Items[entry.Item.ID]
		if !ok {
			entries = append(entries, entry)
			continue
		}
		seen[entry.Item.ID] = true
		if patch.Remove {
			continue
		}
		item := applyItemPatch(*entry.Item, patch)
		entries = append(entries, model.ItemEntry(item))
	}
	for id := range t.document.Items {
		if !seen[id] {
			return fmt.Errorf("preset transformer: item %q not found", id)
		}
	}
	decl.Entries = entries
	return nil
}

func applyItemPatch(item model.Item, patch itemPatch) model.Item {
	control, isControl := item.Body.(model.Control)
	if isControl {
		if patch.Label != "" {
			control.Title = patch.Label
		}
		if patch.Placeholder != "" {
			control.Placeholder = patch.Placeholder
		}
		if patch.Value != "" {
			control.Value = patch.Value
		}
		return model.NewItem(item.ID, control)
	}
	if label := strings.TrimSpace(patch.Label); label != "" {
		item.HasOwnLabel = true
		item.Label = label
	}
	return item
}
