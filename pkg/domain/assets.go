package domain

// ImageRequest asks for one node rendered as a PNG or SVG asset.
type ImageRequest struct {
	NodeID   string `json:"nodeId" yaml:"nodeId" mapstructure:"nodeId"`
	FileName string `json:"fileName" yaml:"fileName" mapstructure:"fileName"`
	Format   string `json:"fileType" yaml:"fileType" mapstructure:"fileType"`
}

// ImageFillRequest asks for the bitmap behind one image fill.
type ImageFillRequest struct {
	NodeID   string `json:"nodeId" yaml:"nodeId" mapstructure:"nodeId"`
	FileName string `json:"fileName" yaml:"fileName" mapstructure:"fileName"`
	ImageRef string `json:"imageRef" yaml:"imageRef" mapstructure:"imageRef"`
}
