package simplifier

import (
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// simplifyEffects converts a node's effects list into CSS shorthand strings.
// Shadows on TEXT nodes land in TextShadow, everywhere else in BoxShadow.
func simplifyEffects(node RawNode) domain.Effects {
	var out domain.Effects
	effects, ok := getSlice(node, "effects")
	if !ok {
		return out
	}

	var shadows, layerBlurs, backgroundBlurs []string
	for _, raw := range effects {
		effect, okM := raw.(map[string]any)
		if !okM || !isVisible(effect) {
			continue
		}
		effectType, _ := getString(effect, "type")
		switch effectType {
		case "DROP_SHADOW":
			shadows = append(shadows, shadowString(effect))
		case "INNER_SHADOW":
			shadows = append(shadows, "inset "+shadowString(effect))
		case "LAYER_BLUR":
			layerBlurs = append(layerBlurs, blurString(effect))
		case "BACKGROUND_BLUR":
			backgroundBlurs = append(backgroundBlurs, blurString(effect))
		}
	}

	if len(shadows) > 0 {
		joined := strings.Join(shadows, ", ")
		if nodeType, _ := getString(node, "type"); nodeType == "TEXT" {
			out.TextShadow = joined
		} else {
			out.BoxShadow = joined
		}
	}
	out.Filter = strings.Join(layerBlurs, " ")
	out.BackdropFilter = strings.Join(backgroundBlurs, " ")
	return out
}

func shadowString(effect RawNode) string {
	var offsetX, offsetY float64
	if offset, ok := getMap(effect, "offset"); ok {
		offsetX, _ = getNumber(offset, "x")
		offsetY, _ = getNumber(offset, "y")
	}
	radius, _ := getNumber(effect, "radius")
	spread, _ := getNumber(effect, "spread")
	color, ok := getMap(effect, "color")
	if !ok {
		color = RawNode{"r": 0.0, "g": 0.0, "b": 0.0, "a": 1.0}
	}
	return formatPx(offsetX) + " " + formatPx(offsetY) + " " +
		formatPx(radius) + " " + formatPx(spread) + " " + formatRGBA(color, 1)
}

func blurString(effect RawNode) string {
	radius, _ := getNumber(effect, "radius")
	return "blur(" + formatPx(radius) + ")"
}
