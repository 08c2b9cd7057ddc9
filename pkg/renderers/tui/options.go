package tui

import "github.com/charmbracelet/lipgloss"

// DefaultColumns is the terminal width assumed when none is configured.
const DefaultColumns = 80

// Theme captures message prefixes used while collecting values plus the
// text styles applied to headers, labels and footers.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string

	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Footer lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	return Theme{
		InfoPrefix:  "» ",
		ErrorPrefix: "! ",
		Title:       lipgloss.NewStyle().Bold(true).Underline(true),
		Header:      lipgloss.NewStyle(),
		Label:       lipgloss.NewStyle(),
		Footer:      lipgloss.NewStyle().Faint(true),
	}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by Collect.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithColumns sets the terminal width the form is scaled to.
func WithColumns(columns int) Option {
	return func(r *Renderer) {
		if columns > 0 {
			r.columns = columns
		}
	}
}

// WithTheme replaces the text styles and message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
