package simplifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/domain"
)

func TestSanitizeComponents(t *testing.T) {
	raw := map[string]any{
		"comp1": map[string]any{"key": "k1", "name": "Button Primary", "componentSetId": "set1"},
		"comp2": map[string]any{"key": "k2"},
		"bad":   "not an object",
	}

	out := sanitizeComponents(raw, logging.NewNop())

	require.Len(t, out, 2)
	assert.Equal(t, domain.ComponentDefinition{
		ID: "comp1", Key: "k1", Name: "Button Primary", ComponentSetID: "set1",
	}, out["comp1"])
	assert.Equal(t, "Unnamed Component", out["comp2"].Name)
	assert.NotContains(t, out, "bad")
}

func TestSanitizeComponentSets(t *testing.T) {
	raw := map[string]any{
		"set1": map[string]any{"key": "ks1", "name": "Buttons", "description": "All buttons"},
		"set2": map[string]any{"key": "ks2"},
	}

	out := sanitizeComponentSets(raw, logging.NewNop())

	require.Len(t, out, 2)
	assert.Equal(t, "All buttons", out["set1"].Description)
	assert.Equal(t, "Unnamed Component Set", out["set2"].Name)
}
