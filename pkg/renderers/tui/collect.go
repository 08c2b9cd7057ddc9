package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-formstyle/pkg/layout"
	"github.com/goliatone/go-formstyle/pkg/model"
)

// Collect walks the tree in order and prompts for every named control except
// buttons. Section headers are announced through the driver before their
// controls. prefill seeds prompt defaults; the returned map holds one entry
// per prompted control, toggles as "true" or "false".
func (r *Renderer) Collect(ctx context.Context, tree layout.Tree, prefill map[string]string) (map[string]string, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	driver := r.driver
	if driver == nil {
		driver = NewSurveyDriver()
	}

	values := make(map[string]string)
	for _, section := range tree.Sections {
		if section.Header != nil {
			if err := driver.Info(ctx, r.theme.InfoPrefix+section.Header.Text); err != nil {
				return nil, err
			}
		}
		for _, node := range section.Panel.Rows() {
			control, ok := controlOf(node)
			if !ok || control.Name == "" || control.Control == model.ControlButton {
				continue
			}
			value, err := r.prompt(ctx, driver, node, control, prefill)
			if err != nil {
				return nil, fmt.Errorf("tui: collect %q: %w", control.Name, err)
			}
			values[control.Name] = value
		}
	}
	return values, nil
}

func (r *Renderer) prompt(ctx context.Context, driver PromptDriver, node layout.Node, control model.Control, prefill map[string]string) (string, error) {
	p := Prompt{
		Name:    control.Name,
		Control: control.Control,
		Message: promptMessage(node, control),
		Default: control.Value,
		Options: control.Options,
	}
	if control.Placeholder != "" {
		p.Help = "e.g. " + control.Placeholder
	}
	if control.Control == model.ControlToggle {
		p.Default = strconv.FormatBool(control.Checked)
	}
	if value, ok := prefill[control.Name]; ok {
		p.Default = value
	}

	answer, err := driver.Ask(ctx, p)
	if err != nil {
		return "", err
	}
	switch control.Control {
	case model.ControlToggle:
		return strconv.FormatBool(truthy(answer)), nil
	case model.ControlSelect:
		if indexOf(control.Options, answer) < 0 {
			if infoErr := driver.Info(ctx, r.theme.ErrorPrefix+"no option selected"); infoErr != nil {
				return "", infoErr
			}
			return "", ErrNoOption
		}
	}
	return answer, nil
}

func promptMessage(node layout.Node, control model.Control) string {
	if node.Label != nil && node.Label.Text != "" {
		return node.Label.Text
	}
	if control.Title != "" {
		return control.Title
	}
	return control.Name
}

func controlOf(node layout.Node) (model.Control, bool) {
	if node.Content == nil {
		return model.Control{}, false
	}
	return model.ControlOf(node.Content.Body)
}
