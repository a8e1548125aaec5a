package simplifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
)

func TestBuildStroke(t *testing.T) {
	stroke, err := buildStroke(RawNode{
		"strokes": []any{
			map[string]any{"type": "SOLID", "color": map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0}},
		},
		"strokeWeight": 2.0,
		"strokeAlign":  "INSIDE",
		"strokeDashes": []any{5.0, 5.0},
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.Fill{domain.ColorValue("#FF0000")}, stroke.Colors)
	assert.Equal(t, "2px", stroke.StrokeWeight)
	assert.Equal(t, []float64{5, 5}, stroke.StrokeDashes)
	assert.Equal(t, "INSIDE", stroke.StrokeAlign)
}

func TestBuildStrokeIndividualWeightsWin(t *testing.T) {
	stroke, err := buildStroke(RawNode{
		"strokeWeight": 9.0,
		"individualStrokeWeights": map[string]any{
			"top": 1.0, "right": 2.0, "bottom": 1.0, "left": 2.0,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "1px 2px", stroke.StrokeWeight)
}

func TestBuildStrokeZeroWeightOmitted(t *testing.T) {
	stroke, err := buildStroke(RawNode{"strokeWeight": 0.0, "strokeAlign": "OUTSIDE"})
	require.NoError(t, err)
	assert.Empty(t, stroke.StrokeWeight)
	assert.Equal(t, "OUTSIDE", stroke.StrokeAlign)
}

func TestBuildStrokeInvisiblePaintSkipped(t *testing.T) {
	stroke, err := buildStroke(RawNode{
		"strokes": []any{
			map[string]any{
				"type": "SOLID", "visible": false,
				"color": map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0},
			},
		},
		"strokeWeight": 2.0,
	})
	require.NoError(t, err)
	assert.Empty(t, stroke.Colors)
	assert.Equal(t, "2px", stroke.StrokeWeight)
}

func TestBuildStrokeUnsupportedPaintErrors(t *testing.T) {
	_, err := buildStroke(RawNode{
		"strokes": []any{map[string]any{"type": "EMOJI"}},
	})
	assert.Error(t, err)
}

func TestBuildStrokeEmptyNode(t *testing.T) {
	stroke, err := buildStroke(RawNode{"name": "Frame"})
	require.NoError(t, err)
	assert.True(t, stroke.IsZero())
}
