package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstyle/pkg/model"
	"github.com/goliatone/go-formstyle/pkg/renderers/tui"
)

// Complete prompts for the options cfg leaves unset. formIDs lists the forms
// available for -forms-dir and may be nil. Each prompt is named after the
// flag it fills.
func Complete(ctx context.Context, driver tui.PromptDriver, cfg Config, formIDs func(Config) ([]string, error)) (Config, error) {
	if driver == nil {
		driver = tui.NewSurveyDriver()
	}
	ask := func(p tui.Prompt) (string, error) {
		answer, err := driver.Ask(ctx, p)
		if err != nil {
			return "", translate(err)
		}
		return strings.TrimSpace(answer), nil
	}

	if !cfg.HasSource() {
		kind, err := ask(tui.Prompt{Name: "source", Control: model.ControlSelect, Message: "Form source", Options: sourceKinds})
		if err != nil {
			return cfg, err
		}
		name, message := "form", "Declaration file"
		if kind == sourceOpenAPI {
			name, message = "openapi", "OpenAPI document path or URL"
		}
		location, err := ask(tui.Prompt{Name: name, Control: model.ControlInput, Message: message, Validator: required})
		if err != nil {
			return cfg, err
		}
		if kind == sourceOpenAPI {
			cfg.OpenAPI = location
		} else {
			cfg.FormFile = location
		}
	}

	if cfg.OpenAPI != "" && !cfg.HasOperation() {
		operation, err := ask(tui.Prompt{Name: "operation", Control: model.ControlInput, Message: "Operation ID", Validator: required})
		if err != nil {
			return cfg, err
		}
		cfg.Operation = operation
	}

	if cfg.FormsDir != "" && cfg.FormID == "" && formIDs != nil {
		ids, err := formIDs(cfg)
		if err != nil {
			return cfg, err
		}
		if len(ids) == 0 {
			return cfg, fmt.Errorf("cli: no forms found in %s", cfg.FormsDir)
		}
		if cfg.FormID, err = ask(tui.Prompt{Name: "id", Control: model.ControlSelect, Message: "Form", Options: ids}); err != nil {
			return cfg, err
		}
	}

	if cfg.Renderer == "" {
		renderer, err := ask(tui.Prompt{Name: "renderer", Control: model.ControlSelect, Message: "Renderer", Options: Renderers})
		if err != nil {
			return cfg, err
		}
		cfg.Renderer = renderer
	}

	if cfg.Width == 0 {
		raw, err := ask(tui.Prompt{
			Name:      "width",
			Control:   model.ControlInput,
			Message:   "Container width",
			Help:      "leave empty to use the default form width (400)",
			Validator: width,
		})
		if err != nil {
			return cfg, err
		}
		if raw != "" {
			cfg.Width, _ = strconv.ParseFloat(raw, 64)
		}
	}

	if !cfg.IndentSet {
		indent, err := ask(tui.Prompt{Name: "indent", Control: model.ControlToggle, Message: "Indent all items onto the label column?", Default: "false"})
		if err != nil {
			return cfg, err
		}
		cfg.Indent = indent == "true"
		cfg.IndentSet = true
	}
	return cfg, nil
}

const (
	sourceDeclaration = "declaration file"
	sourceOpenAPI     = "OpenAPI document"
)

var sourceKinds = []string{sourceDeclaration, sourceOpenAPI}

func translate(err error) error {
	if errors.Is(err, tui.ErrAborted) {
		return ErrAborted
	}
	return fmt.Errorf("cli: prompt: %w", err)
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func width(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return fmt.Errorf("%q is not a non-negative number", value)
	}
	return nil
}
