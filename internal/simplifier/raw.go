package simplifier

import "github.com/aretw0/espalier/pkg/domain"

// RawNode is one untyped node of the source document, as decoded from JSON.
type RawNode = map[string]any

func getString(m RawNode, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

func stringOr(m RawNode, key, fallback string) string {
	if s, ok := getString(m, key); ok && s != "" {
		return s
	}
	return fallback
}

// getNumber reads a numeric field. JSON decoding yields float64, but int
// shows up in hand-built test fixtures and re-decoded YAML.
func getNumber(m RawNode, key string) (float64, bool) {
	return asNumber(m[key])
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func getMap(m RawNode, key string) (RawNode, bool) {
	mm, ok := m[key].(map[string]any)
	return mm, ok
}

func getSlice(m RawNode, key string) ([]any, bool) {
	s, ok := m[key].([]any)
	return s, ok
}

// isVisible implements the default-true visibility rule: only an explicit
// visible: false hides a node or paint.
func isVisible(m RawNode) bool {
	v, ok := m["visible"].(bool)
	return !ok || v
}

// isFrame reports whether a node is frame-like. The marker is a boolean
// clipsContent field, regardless of its value.
func isFrame(m RawNode) bool {
	_, ok := m["clipsContent"].(bool)
	return ok
}

// boundingBoxOf extracts the node's absolute bounding box. It reports false
// when the field is absent, not a mapping, or missing any of the four
// numeric components.
func boundingBoxOf(m RawNode) (*domain.BoundingBox, bool) {
	bb, ok := getMap(m, "absoluteBoundingBox")
	if !ok {
		return nil, false
	}
	x, okX := getNumber(bb, "x")
	y, okY := getNumber(bb, "y")
	w, okW := getNumber(bb, "width")
	h, okH := getNumber(bb, "height")
	if !okX || !okY || !okW || !okH {
		return nil, false
	}
	return &domain.BoundingBox{X: x, Y: y, Width: w, Height: h}, true
}

// sideValues extracts a top/right/bottom/left record such as
// individualStrokeWeights. All four fields must be numeric.
func sideValues(m RawNode, key string) (top, right, bottom, left float64, ok bool) {
	sv, found := getMap(m, key)
	if !found {
		return 0, 0, 0, 0, false
	}
	var okT, okR, okB, okL bool
	top, okT = getNumber(sv, "top")
	right, okR = getNumber(sv, "right")
	bottom, okB = getNumber(sv, "bottom")
	left, okL = getNumber(sv, "left")
	return top, right, bottom, left, okT && okR && okB && okL
}

// cornerRadiiOf extracts rectangleCornerRadii as exactly four numbers.
func cornerRadiiOf(m RawNode) ([4]float64, bool) {
	var radii [4]float64
	s, ok := getSlice(m, "rectangleCornerRadii")
	if !ok || len(s) != 4 {
		return radii, false
	}
	for i, v := range s {
		n, okN := asNumber(v)
		if !okN {
			return radii, false
		}
		radii[i] = n
	}
	return radii, true
}
