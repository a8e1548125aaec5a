package domain

// Effects is the CSS-shorthand form of a node's shadow and blur effects.
// Shadows land in BoxShadow, or TextShadow when the owning node is TEXT.
type Effects struct {
	BoxShadow      string `json:"box_shadow,omitempty" yaml:"box_shadow,omitempty"`
	Filter         string `json:"filter,omitempty" yaml:"filter,omitempty"`
	BackdropFilter string `json:"backdrop_filter,omitempty" yaml:"backdrop_filter,omitempty"`
	TextShadow     string `json:"text_shadow,omitempty" yaml:"text_shadow,omitempty"`
}

// IsZero reports whether no effect survived filtering.
func (e Effects) IsZero() bool {
	return e == Effects{}
}
