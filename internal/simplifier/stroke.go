package simplifier

import "github.com/aretw0/espalier/pkg/domain"

// buildStroke collects a node's border description. A paint the simplifier
// cannot represent propagates as an error and drops the whole node.
func buildStroke(node RawNode) (domain.Stroke, error) {
	var stroke domain.Stroke

	if strokes, ok := getSlice(node, "strokes"); ok {
		for _, raw := range strokes {
			paint, okM := raw.(map[string]any)
			if !okM {
				continue
			}
			fill, err := simplifyPaint(paint)
			if err != nil {
				return domain.Stroke{}, err
			}
			if fill != nil {
				stroke.Colors = append(stroke.Colors, fill)
			}
		}
	}

	// Per-side weights win over the uniform strokeWeight.
	if top, right, bottom, left, ok := sideValues(node, "individualStrokeWeights"); ok {
		if shorthand, okS := cssShorthand(top, right, bottom, left, true); okS {
			stroke.StrokeWeight = shorthand
		}
	} else if weight, okW := getNumber(node, "strokeWeight"); okW && weight > 0 {
		stroke.StrokeWeight = formatPx(weight)
	}

	if dashes, ok := getSlice(node, "strokeDashes"); ok && len(dashes) > 0 {
		for _, d := range dashes {
			if n, okN := asNumber(d); okN {
				stroke.StrokeDashes = append(stroke.StrokeDashes, n)
			}
		}
	}

	if align, ok := getString(node, "strokeAlign"); ok {
		stroke.StrokeAlign = align
	}
	return stroke, nil
}
