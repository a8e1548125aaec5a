package simplifier

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/espalier/pkg/domain"
)

// parseNode walks one raw node. It returns nil for invisible nodes, for
// nodes past the depth guard, and for nodes whose simplification failed;
// failures are logged and isolated so siblings keep processing.
func (p *Parser) parseNode(table *StyleTable, node, parent RawNode, depth int) (simplified *domain.SimplifiedNode) {
	if depth > p.maxDepth {
		id, _ := getString(node, "id")
		p.logger.Warn("node tree exceeds maximum depth, dropping subtree", "nodeId", id, "depth", depth)
		return nil
	}
	if !isVisible(node) {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			id, _ := getString(node, "id")
			p.logger.Warn("dropping node after unexpected failure", "nodeId", id, "err", fmt.Sprint(r))
			simplified = nil
		}
	}()

	out, err := p.simplifyNode(table, node, parent, depth)
	if err != nil {
		id, _ := getString(node, "id")
		name := stringOr(node, "name", "Unnamed Node")
		p.logger.Warn("dropping node", "nodeId", id, "name", name, "err", err)
		return nil
	}
	return out
}

func (p *Parser) simplifyNode(table *StyleTable, node, parent RawNode, depth int) (*domain.SimplifiedNode, error) {
	id, _ := getString(node, "id")
	out := &domain.SimplifiedNode{
		ID:   id,
		Name: stringOr(node, "name", "Unnamed Node"),
		Type: stringOr(node, "type", "UNKNOWN"),
	}

	if _, present := node["absoluteBoundingBox"]; present {
		if box, ok := boundingBoxOf(node); ok {
			out.BoundingBox = box
		} else {
			p.logger.Warn("ignoring malformed bounding box", "nodeId", id)
		}
	}

	if out.Type == "INSTANCE" {
		if componentID, ok := getString(node, "componentId"); ok {
			out.ComponentID = componentID
		}
		if props, ok := getMap(node, "componentProperties"); ok {
			out.ComponentProperties = props
		}
	}

	if style, ok := getMap(node, "style"); ok {
		textStyle, err := p.textStyle(style)
		if err != nil {
			return nil, fmt.Errorf("text style: %w", err)
		}
		out.TextStyle = table.Intern("text", textStyle)
	}

	if fills, ok := getSlice(node, "fills"); ok {
		var parsed []domain.Fill
		for _, raw := range fills {
			paint, okM := raw.(map[string]any)
			if !okM {
				continue
			}
			fill, err := simplifyPaint(paint)
			if err != nil {
				return nil, fmt.Errorf("fills: %w", err)
			}
			if fill != nil {
				parsed = append(parsed, fill)
			}
		}
		if len(parsed) > 0 {
			out.Fills = table.Intern("fill", parsed)
		}
	}

	stroke, err := buildStroke(node)
	if err != nil {
		return nil, fmt.Errorf("strokes: %w", err)
	}
	if !stroke.IsZero() {
		out.Strokes = table.Intern("stroke", stroke)
	}

	if effects := simplifyEffects(node); !effects.IsZero() {
		out.Effects = table.Intern("effect", effects)
	}

	if layout := buildLayout(node, parent); !layout.IsNone() {
		out.Layout = table.Intern("layout", layout)
	}

	if text, ok := getString(node, "characters"); ok {
		out.Text = text
	}
	if opacity, ok := getNumber(node, "opacity"); ok {
		out.Opacity = &opacity
	}
	out.BorderRadius = borderRadius(node)

	if children, ok := getSlice(node, "children"); ok {
		for _, raw := range children {
			child, okM := raw.(map[string]any)
			if !okM {
				continue
			}
			if parsed := p.parseNode(table, child, node, depth+1); parsed != nil {
				out.Children = append(out.Children, parsed)
			}
		}
	}

	// Vector shapes are best exported as SVG assets downstream.
	if out.Type == "VECTOR" {
		out.Type = "IMAGE-SVG"
	}
	return out, nil
}

// textStyle decodes the recognized text fields of a style object and derives
// the CSS color from the style's first visible solid fill.
func (p *Parser) textStyle(style RawNode) (domain.TextStyle, error) {
	var ts domain.TextStyle
	if err := mapstructure.Decode(style, &ts); err != nil {
		return domain.TextStyle{}, err
	}
	if fills, ok := getSlice(style, "fills"); ok {
		for _, raw := range fills {
			fill, okM := raw.(map[string]any)
			if !okM || !isVisible(fill) {
				continue
			}
			fillType, _ := getString(fill, "type")
			color, okC := getMap(fill, "color")
			if fillType == "SOLID" && okC {
				ts.Color = formatRGBA(color, 1)
				break
			}
		}
	}
	return ts, nil
}

// borderRadius prefers per-corner radii over the uniform cornerRadius and
// collapses equal corners. An all-zero radius yields no property.
func borderRadius(node RawNode) string {
	if radii, ok := cornerRadiiOf(node); ok {
		allEqual := radii[0] == radii[1] && radii[1] == radii[2] && radii[2] == radii[3]
		if allEqual {
			if radii[0] == 0 {
				return ""
			}
			return formatPx(radii[0])
		}
		return formatPx(radii[0]) + " " + formatPx(radii[1]) + " " +
			formatPx(radii[2]) + " " + formatPx(radii[3])
	}
	if radius, ok := getNumber(node, "cornerRadius"); ok && radius > 0 {
		return formatPx(radius)
	}
	return ""
}
