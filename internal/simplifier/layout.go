package simplifier

import (
	"math"

	"github.com/aretw0/espalier/pkg/domain"
)

// buildLayout resolves a node's layout descriptor from its own frame
// properties plus its placement inside parent. parent may be nil for roots.
func buildLayout(node, parent RawNode) domain.Layout {
	layout := frameValues(node)
	layout.AlignSelf = convertSelfAlign(node)
	itemValues(&layout, node, parent)

	// align-self only means something for an in-flow child of an
	// autolayout parent.
	if layout.Position == "absolute" || !isAutolayout(parent) {
		layout.AlignSelf = ""
	}
	return layout
}

// frameValues derives the container side of the descriptor: flex mode,
// alignment, wrap, gap, padding and scroll axes.
func frameValues(node RawNode) domain.Layout {
	layout := domain.Layout{Mode: "none"}
	if !isFrame(node) {
		return layout
	}

	switch mode, _ := getString(node, "layoutMode"); mode {
	case "HORIZONTAL":
		layout.Mode = "row"
	case "VERTICAL":
		layout.Mode = "column"
	default:
		layout.OverflowScroll = scrollAxes(node)
		return layout
	}

	primary, _ := getString(node, "primaryAxisAlignItems")
	counter, _ := getString(node, "counterAxisAlignItems")
	if layout.Mode == "row" {
		layout.JustifyContent = convertAlign(primary)
		layout.AlignItems = convertAlign(counter)
	} else {
		layout.JustifyContent = convertAlign(counter)
		layout.AlignItems = convertAlign(primary)
	}

	if wrap, _ := getString(node, "layoutWrap"); wrap == "WRAP" {
		layout.Wrap = true
	}
	if spacing, ok := getNumber(node, "itemSpacing"); ok && spacing > 0 {
		layout.Gap = formatPx(spacing)
	}

	top, _ := getNumber(node, "paddingTop")
	right, _ := getNumber(node, "paddingRight")
	bottom, _ := getNumber(node, "paddingBottom")
	left, _ := getNumber(node, "paddingLeft")
	if padding, ok := cssShorthand(top, right, bottom, left, true); ok {
		layout.Padding = padding
	}

	// Autolayout frames only scroll when they actually clip.
	if clips, _ := node["clipsContent"].(bool); clips {
		layout.OverflowScroll = scrollAxes(node)
	}
	return layout
}

// itemValues derives the item side of the descriptor: sizing, position,
// location relative to the parent and dimensions. Nodes without a valid
// bounding box contribute nothing here.
func itemValues(layout *domain.Layout, node, parent RawNode) {
	nodeBox, ok := boundingBoxOf(node)
	if !ok {
		return
	}

	rawH, _ := getString(node, "layoutSizingHorizontal")
	rawV, _ := getString(node, "layoutSizingVertical")
	sizingH := convertSizing(rawH)
	sizingV := convertSizing(rawV)
	if sizingH != "" || sizingV != "" {
		layout.Sizing = &domain.Sizing{Horizontal: sizingH, Vertical: sizingV}
	}

	if positioning, _ := getString(node, "layoutPositioning"); positioning == "ABSOLUTE" {
		layout.Position = "absolute"
	}

	if parent != nil {
		if parentBox, okP := boundingBoxOf(parent); okP {
			if layout.Position == "absolute" || (isFrame(parent) && !isAutolayout(parent)) {
				layout.LocationRelativeToParent = &domain.Point{
					X: nodeBox.X - parentBox.X,
					Y: nodeBox.Y - parentBox.Y,
				}
			}
		}
	}

	dims := &domain.Dimensions{Width: nodeBox.Width, Height: nodeBox.Height}

	// A STRETCH layoutAlign stretches along the parent's counter axis, so
	// which dimension it affects depends on the parent, not the node.
	stretchH, stretchV := false, false
	if align, _ := getString(node, "layoutAlign"); align == "STRETCH" {
		switch mode, _ := getString(parentOrEmpty(parent), "layoutMode"); mode {
		case "HORIZONTAL":
			stretchV = true
		case "VERTICAL":
			stretchH = true
		}
	}

	if sizingH == "fill" && !stretchH {
		dims.Width = "fill-container"
	}
	if sizingV == "fill" && !stretchV {
		dims.Height = "fill-container"
	}
	if sizingH == "hug" {
		dims.Width = "hug-contents"
	}
	if sizingV == "hug" {
		dims.Height = "hug-contents"
	}
	if stretchH {
		dims.Width = "stretch"
	}
	if stretchV {
		dims.Height = "stretch"
	}

	preserveRatio, _ := node["preserveRatio"].(bool)
	if preserveRatio && !(stretchH && stretchV) && nodeBox.Width > 0 && nodeBox.Height > 0 {
		dims.AspectRatio = math.Round(nodeBox.Width/nodeBox.Height*10000) / 10000
	}
	layout.Dimensions = dims
}

func parentOrEmpty(parent RawNode) RawNode {
	if parent == nil {
		return RawNode{}
	}
	return parent
}

func isAutolayout(node RawNode) bool {
	if node == nil {
		return false
	}
	mode, _ := getString(node, "layoutMode")
	return mode == "HORIZONTAL" || mode == "VERTICAL"
}

func scrollAxes(node RawNode) []string {
	switch dir, _ := getString(node, "overflowDirection"); dir {
	case "HORIZONTAL_SCROLLING":
		return []string{"x"}
	case "VERTICAL_SCROLLING":
		return []string{"y"}
	case "HORIZONTAL_AND_VERTICAL_SCROLLING":
		return []string{"x", "y"}
	}
	return nil
}

func convertAlign(align string) string {
	switch align {
	case "MIN":
		return "flex-start"
	case "MAX":
		return "flex-end"
	case "CENTER":
		return "center"
	case "SPACE_BETWEEN":
		return "space-between"
	case "BASELINE":
		return "baseline"
	case "STRETCH":
		return "stretch"
	}
	return ""
}

func convertSelfAlign(node RawNode) string {
	switch align, _ := getString(node, "layoutAlign"); align {
	case "MIN":
		return "flex-start"
	case "MAX":
		return "flex-end"
	case "CENTER":
		return "center"
	case "STRETCH":
		return "stretch"
	}
	return ""
}

func convertSizing(sizing string) string {
	switch sizing {
	case "FIXED":
		return "fixed"
	case "FILL":
		return "fill"
	case "HUG":
		return "hug"
	}
	return ""
}
