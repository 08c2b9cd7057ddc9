package layout

import "math"

const (
	// DefaultLabelRatio is the share of the container width given to labels.
	DefaultLabelRatio = 0.3
	// DefaultMaxLabelWidth caps the label column.
	DefaultMaxLabelWidth = 200.0
)

// WidthPolicy holds the constants used to size the label column.
type WidthPolicy struct {
	Ratio float64 `json:"ratio"`
	Max   float64 `json:"max"`
	Min   float64 `json:"min"`
}

// DefaultWidthPolicy sizes labels at 30% of the container, capped at 200.
var DefaultWidthPolicy = WidthPolicy{
	Ratio: DefaultLabelRatio,
	Max:   DefaultMaxLabelWidth,
	Min:   0,
}

// Resolve returns min(containerWidth*Ratio, Max), never below Min. Widths
// that are not positive (including NaN, seen before geometry is known)
// resolve to Min.
func (p WidthPolicy) Resolve(containerWidth float64) float64 {
	if math.IsNaN(containerWidth) || containerWidth <= 0 {
		return p.Min
	}
	width := math.Min(containerWidth*p.Ratio, p.Max)
	if width < p.Min {
		return p.Min
	}
	return width
}

// ResolveLabelWidth applies DefaultWidthPolicy.
func ResolveLabelWidth(containerWidth float64) float64 {
	return DefaultWidthPolicy.Resolve(containerWidth)
}
