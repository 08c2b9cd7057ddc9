package theme

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Variants map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens map[string]string `yaml:"tokens"`
}

// ParseManifest decodes a YAML (or JSON) theme manifest.
func ParseManifest(data []byte, source string) (*gotheme.Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("theme: parse %s: %w", source, err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, fmt.Errorf("theme: manifest %s has no name", source)
	}

	manifest := &gotheme.Manifest{
		Name:    file.Name,
		Version: file.Version,
		Tokens:  file.Tokens,
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]gotheme.Variant, len(file.Variants))
		for name, variant := range file.Variants {
			manifest.Variants[name] = gotheme.Variant{Tokens: variant.Tokens}
		}
	}
	return manifest, nil
}

// LoadManifests registers every manifest file found in fsys on selector.
func LoadManifests(fsys fs.FS, selector *ManifestSelector) error {
	if fsys == nil || selector == nil {
		return nil
	}
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
		default:
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("theme: read %s: %w", path, err)
		}
		manifest, err := ParseManifest(data, path)
		if err != nil {
			return err
		}
		return selector.Register(manifest)
	})
}
