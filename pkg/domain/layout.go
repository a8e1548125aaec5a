package domain

// Sizing maps the source API's layout sizing to flow terms (fixed/fill/hug).
type Sizing struct {
	Horizontal string `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty" yaml:"vertical,omitempty"`
}

// Point is an offset relative to a parent origin.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Dimensions describes a node's size per axis. Width and Height hold either
// a raw number or one of the sentinels "hug-contents", "fill-container",
// "stretch".
type Dimensions struct {
	Width       any     `json:"width,omitempty" yaml:"width,omitempty"`
	Height      any     `json:"height,omitempty" yaml:"height,omitempty"`
	AspectRatio float64 `json:"aspect_ratio,omitempty" yaml:"aspect_ratio,omitempty"`
}

// Layout is the flow-layout descriptor derived from a node's box and
// auto-layout properties. Mode is "row", "column", or "none".
type Layout struct {
	Mode                     string      `json:"mode" yaml:"mode"`
	JustifyContent           string      `json:"justify_content,omitempty" yaml:"justify_content,omitempty"`
	AlignItems               string      `json:"align_items,omitempty" yaml:"align_items,omitempty"`
	AlignSelf                string      `json:"align_self,omitempty" yaml:"align_self,omitempty"`
	Wrap                     bool        `json:"wrap,omitempty" yaml:"wrap,omitempty"`
	Gap                      string      `json:"gap,omitempty" yaml:"gap,omitempty"`
	Padding                  string      `json:"padding,omitempty" yaml:"padding,omitempty"`
	Sizing                   *Sizing     `json:"sizing,omitempty" yaml:"sizing,omitempty"`
	Position                 string      `json:"position,omitempty" yaml:"position,omitempty"`
	LocationRelativeToParent *Point      `json:"location_relative_to_parent,omitempty" yaml:"location_relative_to_parent,omitempty"`
	Dimensions               *Dimensions `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	OverflowScroll           []string    `json:"overflow_scroll,omitempty" yaml:"overflow_scroll,omitempty"`
}

// IsNone reports whether the descriptor carries no layout information beyond
// the default mode. Such descriptors are not worth registering.
func (l Layout) IsNone() bool {
	return (l.Mode == "" || l.Mode == "none") &&
		l.JustifyContent == "" && l.AlignItems == "" && l.AlignSelf == "" &&
		!l.Wrap && l.Gap == "" && l.Padding == "" && l.Position == "" &&
		l.Sizing == nil && l.LocationRelativeToParent == nil &&
		l.Dimensions == nil && len(l.OverflowScroll) == 0
}
