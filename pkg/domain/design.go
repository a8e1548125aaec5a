package domain

// StyleID is an opaque token referencing a deduplicated style value in the
// shared table of a single parse. It never outlives the SimplifiedDesign it
// was minted for.
type StyleID string

// GlobalVars holds the content-addressed style table of one design.
type GlobalVars struct {
	Styles map[StyleID]any `json:"styles" yaml:"styles"`
}

// BoundingBox is the absolute geometry of a node in canvas coordinates.
type BoundingBox struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// SimplifiedNode is one element of the trained design tree. Optional style
// aspects are references into GlobalVars rather than inline values, so that
// repeated styles are stored once. Children are exclusively owned by their
// parent; traversal is always root-to-leaf.
type SimplifiedNode struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`

	BoundingBox *BoundingBox `json:"boundingBox,omitempty" yaml:"boundingBox,omitempty"`

	Text      string  `json:"text,omitempty" yaml:"text,omitempty"`
	TextStyle StyleID `json:"textStyle,omitempty" yaml:"textStyle,omitempty"`
	Fills     StyleID `json:"fills,omitempty" yaml:"fills,omitempty"`
	Strokes   StyleID `json:"strokes,omitempty" yaml:"strokes,omitempty"`
	Effects   StyleID `json:"effects,omitempty" yaml:"effects,omitempty"`
	Layout    StyleID `json:"layout,omitempty" yaml:"layout,omitempty"`

	Opacity      *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	BorderRadius string   `json:"borderRadius,omitempty" yaml:"borderRadius,omitempty"`

	// INSTANCE nodes only.
	ComponentID         string         `json:"componentId,omitempty" yaml:"componentId,omitempty"`
	ComponentProperties map[string]any `json:"componentProperties,omitempty" yaml:"componentProperties,omitempty"`

	Children []*SimplifiedNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// ComponentDefinition is the flattened form of a raw component entry.
type ComponentDefinition struct {
	ID             string `json:"id" yaml:"id"`
	Key            string `json:"key" yaml:"key"`
	Name           string `json:"name" yaml:"name"`
	ComponentSetID string `json:"componentSetId,omitempty" yaml:"componentSetId,omitempty"`
}

// ComponentSetDefinition is the flattened form of a raw component-set entry.
type ComponentSetDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SimplifiedDesign is the result of one parse: the simplified root nodes plus
// the shared style table and sanitized component metadata. The top-level
// collections are always present, even when empty, so consumers can rely on
// the shape.
type SimplifiedDesign struct {
	Name         string `json:"name" yaml:"name"`
	LastModified string `json:"lastModified" yaml:"lastModified"`
	ThumbnailURL string `json:"thumbnailUrl" yaml:"thumbnailUrl"`

	Nodes         []*SimplifiedNode                 `json:"nodes" yaml:"nodes"`
	Components    map[string]ComponentDefinition    `json:"components" yaml:"components"`
	ComponentSets map[string]ComponentSetDefinition `json:"componentSets" yaml:"componentSets"`
	GlobalVars    GlobalVars                        `json:"globalVars" yaml:"globalVars"`
}
