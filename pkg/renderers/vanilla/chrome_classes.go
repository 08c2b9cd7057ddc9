package vanilla

// ChromeClass is a typed identifier for the CSS classes the templates emit.
type ChromeClass string

const (
	ClassForm      ChromeClass = "formstyle-form"
	ClassTitle     ChromeClass = "formstyle-title"
	ClassSection   ChromeClass = "formstyle-section"
	ClassHeader    ChromeClass = "formstyle-header"
	ClassPanel     ChromeClass = "formstyle-panel"
	ClassRow       ChromeClass = "formstyle-row"
	ClassBlock     ChromeClass = "formstyle-block"
	ClassLabel     ChromeClass = "formstyle-label"
	ClassContent   ChromeClass = "formstyle-content"
	ClassSeparator ChromeClass = "formstyle-separator"
	ClassFooter    ChromeClass = "formstyle-footer"
	ClassSwitch    ChromeClass = "formstyle-switch"
	ClassError     ChromeClass = "formstyle-error"
)

// Classes is the class map handed to templates.
type Classes struct {
	Form      string `json:"form"`
	Title     string `json:"title"`
	Section   string `json:"section"`
	Header    string `json:"header"`
	Panel     string `json:"panel"`
	Row       string `json:"row"`
	Block     string `json:"block"`
	Label     string `json:"label"`
	Content   string `json:"content"`
	Separator string `json:"separator"`
	Footer    string `json:"footer"`
	Switch    string `json:"switch"`
	Error     string `json:"error"`
}

// DefaultClasses returns the built-in class names.
func DefaultClasses() Classes {
	return Classes{
		Form:      string(ClassForm),
		Title:     string(ClassTitle),
		Section:   string(ClassSection),
		Header:    string(ClassHeader),
		Panel:     string(ClassPanel),
		Row:       string(ClassRow),
		Block:     string(ClassBlock),
		Label:     string(ClassLabel),
		Content:   string(ClassContent),
		Separator: string(ClassSeparator),
		Footer:    string(ClassFooter),
		Switch:    string(ClassSwitch),
		Error:     string(ClassError),
	}
}
