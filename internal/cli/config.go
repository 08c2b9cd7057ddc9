package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when the user interrupts an interactive prompt.
var ErrAborted = errors.New("cli: aborted")

// Renderers lists the renderer names the CLI offers.
var Renderers = []string{"html", "terminal"}

// Config holds the parsed command line.
type Config struct {
	FormFile    string
	FormsDir    string
	FormID      string
	OpenAPI     string
	Operation   string
	Width       float64
	Indent      bool
	IndentSet   bool
	Renderer    string
	ThemeDir    string
	Theme       string
	Variant     string
	Preset      string
	Output      string
	Interactive bool
	Collect     bool
}

// HasSource reports whether a declaration source was given.
func (c Config) HasSource() bool {
	return c.FormFile != "" || c.FormsDir != "" || c.OpenAPI != ""
}

// HasOperation reports whether the OpenAPI operation is known, either from
// -operation or from a "#operationId" suffix on -openapi.
func (c Config) HasOperation() bool {
	return c.Operation != "" || strings.Contains(c.OpenAPI, "#")
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("formstyle-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.FormFile, "form", "", "declaration file (YAML or JSON)")
	fs.StringVar(&cfg.FormsDir, "forms-dir", "", "directory of declaration files")
	fs.StringVar(&cfg.FormID, "id", "", "form id inside -form or -forms-dir")
	fs.StringVar(&cfg.OpenAPI, "openapi", "", "OpenAPI document path or URL")
	fs.StringVar(&cfg.Operation, "operation", "", "operation ID to render from -openapi")
	fs.Float64Var(&cfg.Width, "width", 0, "container width; 0 uses the default form width")
	fs.BoolVar(&cfg.Indent, "indent", false, "indent every item onto the label column")
	fs.StringVar(&cfg.Renderer, "renderer", "", "renderer to use ("+strings.Join(Renderers, ", ")+")")
	fs.StringVar(&cfg.ThemeDir, "theme-dir", "", "directory of theme manifests")
	fs.StringVar(&cfg.Theme, "theme", "", "theme name")
	fs.StringVar(&cfg.Variant, "variant", "", "theme variant")
	fs.StringVar(&cfg.Preset, "preset", "", "preset file applied to the declaration")
	fs.StringVar(&cfg.Output, "output", "", "output file (stdout if empty)")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "prompt for options that were not set")
	fs.BoolVar(&cfg.Collect, "collect", false, "prompt for control values and render them prefilled")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "indent" {
			cfg.IndentSet = true
		}
	})
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("cli: unexpected arguments %v", fs.Args())
	}
	return cfg, nil
}

// Validate checks the option combination once prompting is done.
func (c Config) Validate() error {
	sources := 0
	for _, value := range []string{c.FormFile, c.FormsDir, c.OpenAPI} {
		if value != "" {
			sources++
		}
	}
	switch {
	case sources == 0:
		return errors.New("cli: one of -form, -forms-dir or -openapi is required")
	case sources > 1:
		return errors.New("cli: -form, -forms-dir and -openapi are mutually exclusive")
	case c.OpenAPI != "" && !c.HasOperation():
		return errors.New("cli: -operation (or a #operationId suffix on -openapi) is required with -openapi")
	case c.FormsDir != "" && c.FormID == "":
		return errors.New("cli: -id is required with -forms-dir")
	case c.Width < 0:
		return fmt.Errorf("cli: width must not be negative, got %v", c.Width)
	case c.Theme != "" && c.ThemeDir == "":
		return errors.New("cli: -theme requires -theme-dir")
	}
	return nil
}
