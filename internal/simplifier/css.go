package simplifier

import (
	"fmt"
	"math"
	"strconv"
)

// formatNumber renders a float with the shortest exact decimal form, so
// 10 becomes "10" and 10.5 stays "10.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPx(v float64) string {
	return formatNumber(v) + "px"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// cssShorthand collapses top/right/bottom/left into the shortest CSS form.
// When ignoreZero is set and every side is zero it reports ok=false so the
// caller can omit the property entirely.
func cssShorthand(top, right, bottom, left float64, ignoreZero bool) (string, bool) {
	if ignoreZero && top == 0 && right == 0 && bottom == 0 && left == 0 {
		return "", false
	}
	if top == right && right == bottom && bottom == left {
		return formatPx(top), true
	}
	if right == left {
		if top == bottom {
			return formatPx(top) + " " + formatPx(right), true
		}
		return formatPx(top) + " " + formatPx(right) + " " + formatPx(bottom), true
	}
	return formatPx(top) + " " + formatPx(right) + " " + formatPx(bottom) + " " + formatPx(left), true
}

// convertColor composes a raw color object with a paint-level opacity into a
// hex string plus combined alpha. Channels and alphas are clamped to [0, 1]
// before use; the color's own alpha defaults to 1 when absent.
func convertColor(color RawNode, opacity float64) (hex string, alpha float64) {
	r := colorChannel(color, "r")
	g := colorChannel(color, "g")
	b := colorChannel(color, "b")
	a := 1.0
	if raw, ok := getNumber(color, "a"); ok {
		a = clamp01(raw)
	}
	hex = fmt.Sprintf("#%02X%02X%02X", r, g, b)
	return hex, round2(clamp01(opacity) * a)
}

// formatRGBA renders a raw color object as a CSS rgba() string with the
// combined alpha of the color and the given opacity.
func formatRGBA(color RawNode, opacity float64) string {
	r := colorChannel(color, "r")
	g := colorChannel(color, "g")
	b := colorChannel(color, "b")
	a := 1.0
	if raw, ok := getNumber(color, "a"); ok {
		a = clamp01(raw)
	}
	alpha := round2(clamp01(opacity) * a)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(alpha))
}

func colorChannel(color RawNode, key string) int {
	v, _ := getNumber(color, key)
	return int(math.Round(clamp01(v) * 255))
}
