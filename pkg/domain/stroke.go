package domain

// Stroke is the simplified border description of a node: visible stroke
// paints plus weight/dash/alignment shorthand.
type Stroke struct {
	Colors       []Fill    `json:"colors,omitempty" yaml:"colors,omitempty"`
	StrokeWeight string    `json:"stroke_weight,omitempty" yaml:"stroke_weight,omitempty"`
	StrokeDashes []float64 `json:"stroke_dashes,omitempty" yaml:"stroke_dashes,omitempty"`
	StrokeAlign  string    `json:"stroke_align,omitempty" yaml:"stroke_align,omitempty"`
}

// IsZero reports whether the stroke carries no information worth keeping.
func (s Stroke) IsZero() bool {
	return len(s.Colors) == 0 && s.StrokeWeight == "" &&
		len(s.StrokeDashes) == 0 && s.StrokeAlign == ""
}
