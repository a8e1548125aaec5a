package domain

// TextStyle is the recognized subset of a raw text node's style object.
// Numeric fields are pointers so an explicit zero (e.g. letterSpacing: 0)
// survives, while absent fields stay absent. Color is derived from the style
// object's own fills rather than copied, so it is excluded from decoding.
type TextStyle struct {
	FontFamily          string   `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty" mapstructure:"fontFamily"`
	FontPostScriptName  string   `json:"fontPostScriptName,omitempty" yaml:"fontPostScriptName,omitempty" mapstructure:"fontPostScriptName"`
	FontWeight          *float64 `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty" mapstructure:"fontWeight"`
	FontSize            *float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty" mapstructure:"fontSize"`
	LetterSpacing       *float64 `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty" mapstructure:"letterSpacing"`
	LineHeightPx        *float64 `json:"lineHeightPx,omitempty" yaml:"lineHeightPx,omitempty" mapstructure:"lineHeightPx"`
	LineHeightPercent   *float64 `json:"lineHeightPercent,omitempty" yaml:"lineHeightPercent,omitempty" mapstructure:"lineHeightPercent"`
	LineHeightUnit      string   `json:"lineHeightUnit,omitempty" yaml:"lineHeightUnit,omitempty" mapstructure:"lineHeightUnit"`
	TextAlignHorizontal string   `json:"textAlignHorizontal,omitempty" yaml:"textAlignHorizontal,omitempty" mapstructure:"textAlignHorizontal"`
	TextAlignVertical   string   `json:"textAlignVertical,omitempty" yaml:"textAlignVertical,omitempty" mapstructure:"textAlignVertical"`
	TextDecoration      string   `json:"textDecoration,omitempty" yaml:"textDecoration,omitempty" mapstructure:"textDecoration"`
	TextCase            string   `json:"textCase,omitempty" yaml:"textCase,omitempty" mapstructure:"textCase"`
	Color               string   `json:"color,omitempty" yaml:"color,omitempty" mapstructure:"-"`
}
