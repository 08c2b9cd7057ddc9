package theme

// Token names read from theme manifests.
const (
	TokenBackground        = "form.background"
	TokenSectionBackground = "section.background"
	TokenBorder            = "section.border"
	TokenBorderWidth       = "section.borderWidth"
	TokenCornerRadius      = "section.cornerRadius"
	TokenMinRowHeight      = "row.minHeight"
	TokenContentPadding    = "row.padding"
	TokenFormPadding       = "form.padding"
	TokenSeparatorHeight   = "separator.height"
	TokenSeparatorInset    = "separator.inset"
	TokenDefaultFormWidth  = "form.defaultWidth"
	TokenMinFormWidth      = "form.minWidth"
)
