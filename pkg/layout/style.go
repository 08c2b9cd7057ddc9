package layout

// Style holds the palette and metrics applied while decorating sections.
// Colours are CSS hex strings so every renderer can consume them as-is.
type Style struct {
	Background        string  `json:"background"`
	SectionBackground string  `json:"sectionBackground"`
	Border            string  `json:"border"`
	BorderWidth       float64 `json:"borderWidth"`
	CornerRadius      float64 `json:"cornerRadius"`
	MinRowHeight      float64 `json:"minRowHeight"`
	ContentPadding    float64 `json:"contentPadding"`
	FormPadding       float64 `json:"formPadding"`
	SeparatorHeight   float64 `json:"separatorHeight"`
	SeparatorInset    float64 `json:"separatorInset"`
	DefaultFormWidth  float64 `json:"defaultFormWidth"`
	MinFormWidth      float64 `json:"minFormWidth"`
	BoldHeaders       bool    `json:"boldHeaders"`
	SwitchToggles     bool    `json:"switchToggles"`
}

// DefaultStyle returns the warm grey palette with 6pt rounded panels.
func DefaultStyle() Style {
	return Style{
		Background:        "#f4efee",
		SectionBackground: "#f0ebea",
		Border:            "#e6e1e0",
		BorderWidth:       1,
		CornerRadius:      6,
		MinRowHeight:      20,
		ContentPadding:    10,
		FormPadding:       16,
		SeparatorHeight:   1,
		SeparatorInset:    12,
		DefaultFormWidth:  400,
		MinFormWidth:      300,
		BoldHeaders:       true,
		SwitchToggles:     true,
	}
}

// Merge returns s with every non-zero field of override applied. Booleans
// cannot be told apart from their zero value, so they are left to s.
func (s Style) Merge(override Style) Style {
	if override.Background != "" {
		s.Background = override.Background
	}
	if override.SectionBackground != "" {
		s.SectionBackground = override.SectionBackground
	}
	if override.Border != "" {
		s.Border = override.Border
	}
	mergeFloat(&s.BorderWidth, override.BorderWidth)
	mergeFloat(&s.CornerRadius, override.CornerRadius)
	mergeFloat(&s.MinRowHeight, override.MinRowHeight)
	mergeFloat(&s.ContentPadding, override.ContentPadding)
	mergeFloat(&s.FormPadding, override.FormPadding)
	mergeFloat(&s.SeparatorHeight, override.SeparatorHeight)
	mergeFloat(&s.SeparatorInset, override.SeparatorInset)
	mergeFloat(&s.DefaultFormWidth, override.DefaultFormWidth)
	mergeFloat(&s.MinFormWidth, override.MinFormWidth)
	return s
}

func mergeFloat(dst *float64, value float64) {
	if value > 0 {
		*dst = value
	}
}
