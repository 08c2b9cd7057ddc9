package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formstyle/pkg/model"
)

// Prompt is one question, tied to the control whose value it fills. Answers
// come back as the string the control would submit: the text for inputs and
// text areas, the chosen option for selects, "true" or "false" for toggles.
type Prompt struct {
	// Name is the control name the answer is stored under. Prompts that do
	// not fill a form control (CLI options) use the option name.
	Name    string
	Control model.ControlKind
	Message string
	Help    string
	// Default is the current value. Toggles read it with the same rules as
	// prefilled values.
	Default  string
	Options  []string
	PageSize int
	// Validator runs on text answers before they are accepted.
	Validator func(string) error
}

// PromptDriver asks prompts on some terminal. Collect and the CLI only talk
// to this interface so tests can script the answers.
type PromptDriver interface {
	Ask(ctx context.Context, p Prompt) (string, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns the interactive driver backed by survey. Info
// messages go to stdout.
func NewSurveyDriver() PromptDriver {
	return &surveyDriver{out: os.Stdout}
}

func (d *surveyDriver) Ask(ctx context.Context, p Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	help := p.Help
	if help == "" && p.Name != "" {
		help = "sets " + p.Name
	}

	var opts []survey.AskOpt
	if p.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			value, _ := ans.(string)
			return p.Validator(value)
		}))
	}

	switch p.Control {
	case model.ControlToggle:
		var out bool
		prompt := &survey.Confirm{Message: p.Message, Help: help, Default: truthy(p.Default)}
		if err := survey.AskOne(prompt, &out); err != nil {
			return "", translateSurveyErr(err)
		}
		return strconv.FormatBool(out), nil
	case model.ControlSelect:
		if len(p.Options) == 0 {
			return "", fmt.Errorf("tui: %s has no options", p.Name)
		}
		var out string
		prompt := &survey.Select{Message: p.Message, Help: help, Options: p.Options}
		if p.PageSize > 0 {
			prompt.PageSize = p.PageSize
		}
		if indexOf(p.Options, p.Default) >= 0 {
			prompt.Default = p.Default
		}
		if err := survey.AskOne(prompt, &out); err != nil {
			return "", translateSurveyErr(err)
		}
		return out, nil
	case model.ControlTextArea:
		var out string
		prompt := &survey.Multiline{Message: p.Message, Help: help, Default: p.Default}
		if err := survey.AskOne(prompt, &out, opts...); err != nil {
			return "", translateSurveyErr(err)
		}
		return out, nil
	case model.ControlButton:
		return "", fmt.Errorf("tui: %s is a button and takes no answer", p.Name)
	default:
		var out string
		prompt := &survey.Input{Message: p.Message, Help: help, Default: p.Default}
		if err := survey.AskOne(prompt, &out, opts...); err != nil {
			return "", translateSurveyErr(err)
		}
		return out, nil
	}
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
