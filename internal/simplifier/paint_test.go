package simplifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
)

func TestSimplifyPaintSolid(t *testing.T) {
	t.Run("opaque collapses to hex", func(t *testing.T) {
		fill, err := simplifyPaint(RawNode{
			"type":  "SOLID",
			"color": map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ColorValue("#FF0000"), fill)
	})

	t.Run("translucent renders rgba", func(t *testing.T) {
		fill, err := simplifyPaint(RawNode{
			"type":    "SOLID",
			"opacity": 0.5,
			"color":   map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ColorValue("rgba(255, 0, 0, 0.5)"), fill)
	})

	t.Run("missing color errors", func(t *testing.T) {
		_, err := simplifyPaint(RawNode{"type": "SOLID"})
		assert.Error(t, err)
	})
}

func TestSimplifyPaintInvisible(t *testing.T) {
	fill, err := simplifyPaint(RawNode{
		"type":    "SOLID",
		"visible": false,
		"color":   map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0},
	})
	require.NoError(t, err)
	assert.Nil(t, fill)
}

func TestSimplifyPaintImage(t *testing.T) {
	fill, err := simplifyPaint(RawNode{
		"type":      "IMAGE",
		"imageRef":  "abc123",
		"scaleMode": "FILL",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ImageFill{Type: "IMAGE", ImageRef: "abc123", ScaleMode: "FILL"}, fill)
}

func TestSimplifyPaintGradient(t *testing.T) {
	fill, err := simplifyPaint(RawNode{
		"type": "GRADIENT_LINEAR",
		"gradientHandlePositions": []any{
			map[string]any{"x": 0.0, "y": 0.0},
			map[string]any{"x": 1.0, "y": 1.0},
		},
		"gradientStops": []any{
			map[string]any{"position": 0.0, "color": map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0}},
			map[string]any{"position": 1.0, "color": map[string]any{"r": 0.0, "g": 0.0, "b": 1.0, "a": 0.5}},
		},
	})
	require.NoError(t, err)

	grad, ok := fill.(domain.GradientFill)
	require.True(t, ok)
	assert.Equal(t, "GRADIENT_LINEAR", grad.Type)
	require.Len(t, grad.Stops, 2)
	assert.Equal(t, domain.HexOpacity{Hex: "#FF0000", Opacity: 1}, grad.Stops[0].Color)
	assert.Equal(t, domain.HexOpacity{Hex: "#0000FF", Opacity: 0.5}, grad.Stops[1].Color)
	assert.Equal(t, []domain.Vector{{X: 0, Y: 0}, {X: 1, Y: 1}}, grad.HandlePositions)
}

func TestSimplifyPaintUnsupported(t *testing.T) {
	_, err := simplifyPaint(RawNode{"type": "EMOJI"})
	require.Error(t, err)

	var unsupported *UnsupportedPaintTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "EMOJI", unsupported.PaintType)
}
