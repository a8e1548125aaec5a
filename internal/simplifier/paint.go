package simplifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// UnsupportedPaintTypeError marks a paint whose type the simplifier does not
// understand. It aborts simplification of the owning node, not the parse.
type UnsupportedPaintTypeError struct {
	PaintType string
}

func (e *UnsupportedPaintTypeError) Error() string {
	return fmt.Sprintf("unsupported paint type %q", e.PaintType)
}

var errMissingColor = errors.New("solid paint is missing color data")

// simplifyPaint converts one raw paint object into a Fill. Invisible paints
// return (nil, nil) and are dropped by the caller.
func simplifyPaint(paint RawNode) (domain.Fill, error) {
	if !isVisible(paint) {
		return nil, nil
	}
	paintType, _ := getString(paint, "type")
	switch {
	case paintType == "SOLID":
		return simplifySolid(paint)
	case paintType == "IMAGE":
		ref, _ := getString(paint, "imageRef")
		scale, _ := getString(paint, "scaleMode")
		return domain.ImageFill{Type: "IMAGE", ImageRef: ref, ScaleMode: scale}, nil
	case strings.HasPrefix(paintType, "GRADIENT_"):
		return simplifyGradient(paint, paintType), nil
	default:
		return nil, &UnsupportedPaintTypeError{PaintType: paintType}
	}
}

func simplifySolid(paint RawNode) (domain.Fill, error) {
	color, ok := getMap(paint, "color")
	if !ok {
		return nil, errMissingColor
	}
	opacity := 1.0
	if raw, ok := getNumber(paint, "opacity"); ok {
		opacity = raw
	}
	hex, alpha := convertColor(color, opacity)
	if alpha == 1 {
		return domain.ColorValue(hex), nil
	}
	return domain.ColorValue(formatRGBA(color, opacity)), nil
}

func simplifyGradient(paint RawNode, paintType string) domain.GradientFill {
	grad := domain.GradientFill{Type: paintType}
	opacity := 1.0
	if raw, ok := getNumber(paint, "opacity"); ok {
		opacity = raw
	}
	if handles, ok := getSlice(paint, "gradientHandlePositions"); ok {
		for _, h := range handles {
			hm, okM := h.(map[string]any)
			if !okM {
				continue
			}
			x, _ := getNumber(hm, "x")
			y, _ := getNumber(hm, "y")
			grad.HandlePositions = append(grad.HandlePositions, domain.Vector{X: x, Y: y})
		}
	}
	if stops, ok := getSlice(paint, "gradientStops"); ok {
		for _, s := range stops {
			sm, okM := s.(map[string]any)
			if !okM {
				continue
			}
			pos, _ := getNumber(sm, "position")
			stop := domain.GradientStop{Position: pos}
			if color, okC := getMap(sm, "color"); okC {
				hex, alpha := convertColor(color, opacity)
				stop.Color = domain.HexOpacity{Hex: hex, Opacity: alpha}
			}
			grad.Stops = append(grad.Stops, stop)
		}
	}
	return grad
}
