package domain

// Fill is the closed variant of a simplified paint: a ColorValue for solid
// paints, an ImageFill for image paints, or a GradientFill for the gradient
// family. The variant is sealed so the simplification boundary can match
// exhaustively.
type Fill interface {
	fill()
}

// ColorValue is a CSS color string, either "#RRGGBB" or "rgba(r, g, b, a)".
type ColorValue string

func (ColorValue) fill() {}

// ImageFill references an image paint by its upload ref and scale mode.
type ImageFill struct {
	Type      string `json:"type" yaml:"type"`
	ImageRef  string `json:"imageRef,omitempty" yaml:"imageRef,omitempty"`
	ScaleMode string `json:"scaleMode,omitempty" yaml:"scaleMode,omitempty"`
}

func (ImageFill) fill() {}

// Vector is a 2D handle position in normalized coordinates.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// HexOpacity is a color split into a hex triplet and a combined opacity,
// used for gradient stops where alpha must stay separately addressable.
type HexOpacity struct {
	Hex     string  `json:"hex" yaml:"hex"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
}

// GradientStop is one stop of a gradient fill. Its color already carries the
// gradient paint's own opacity folded in.
type GradientStop struct {
	Position float64    `json:"position" yaml:"position"`
	Color    HexOpacity `json:"color" yaml:"color"`
}

// GradientFill carries a gradient's kind (LINEAR/RADIAL/ANGULAR/DIAMOND),
// its handle geometry, and its ordered stops.
type GradientFill struct {
	Type            string         `json:"type" yaml:"type"`
	HandlePositions []Vector       `json:"gradientHandlePositions,omitempty" yaml:"gradientHandlePositions,omitempty"`
	Stops           []GradientStop `json:"gradientStops" yaml:"gradientStops"`
}

func (GradientFill) fill() {}
