package simplifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "10", formatNumber(10))
	assert.Equal(t, "10.5", formatNumber(10.5))
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "-4", formatNumber(-4))
	assert.Equal(t, "0.25", formatNumber(0.25))
}

func TestCSSShorthand(t *testing.T) {
	tests := []struct {
		name                     string
		top, right, bottom, left float64
		ignoreZero               bool
		want                     string
		wantOK                   bool
	}{
		{"all equal", 10, 10, 10, 10, true, "10px", true},
		{"vertical horizontal pairs", 10, 20, 10, 20, true, "10px 20px", true},
		{"three values", 10, 20, 30, 20, true, "10px 20px 30px", true},
		{"four values", 1, 2, 3, 4, true, "1px 2px 3px 4px", true},
		{"all zero ignored", 0, 0, 0, 0, true, "", false},
		{"all zero kept", 0, 0, 0, 0, false, "0px", true},
		{"fractional", 2.5, 2.5, 2.5, 2.5, true, "2.5px", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cssShorthand(tt.top, tt.right, tt.bottom, tt.left, tt.ignoreZero)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertColor(t *testing.T) {
	t.Run("opaque red", func(t *testing.T) {
		hex, alpha := convertColor(RawNode{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0}, 1)
		assert.Equal(t, "#FF0000", hex)
		assert.Equal(t, 1.0, alpha)
	})
	t.Run("alpha combines with paint opacity", func(t *testing.T) {
		_, alpha := convertColor(RawNode{"r": 0.0, "g": 0.0, "b": 0.0, "a": 0.5}, 0.5)
		assert.Equal(t, 0.25, alpha)
	})
	t.Run("channels clamp", func(t *testing.T) {
		hex, alpha := convertColor(RawNode{"r": 2.0, "g": -1.0, "b": 0.5, "a": 3.0}, 1)
		assert.Equal(t, "#FF0080", hex)
		assert.Equal(t, 1.0, alpha)
	})
	t.Run("missing alpha defaults to one", func(t *testing.T) {
		_, alpha := convertColor(RawNode{"r": 0.0, "g": 0.0, "b": 0.0}, 1)
		assert.Equal(t, 1.0, alpha)
	})
}

func TestFormatRGBA(t *testing.T) {
	assert.Equal(t, "rgba(255, 0, 0, 0.5)",
		formatRGBA(RawNode{"r": 1.0, "g": 0.0, "b": 0.0, "a": 0.5}, 1))
	assert.Equal(t, "rgba(0, 0, 0, 1)",
		formatRGBA(RawNode{"r": 0.0, "g": 0.0, "b": 0.0, "a": 1.0}, 1))
	assert.Equal(t, "rgba(26, 51, 77, 1)",
		formatRGBA(RawNode{"r": 0.1, "g": 0.2, "b": 0.3, "a": 1.0}, 1))
}
