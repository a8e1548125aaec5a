package simplifier

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
)

func redFill() map[string]any {
	return map[string]any{
		"type":  "SOLID",
		"color": map[string]any{"r": 1.0, "g": 0.0, "b": 0.0, "a": 1.0},
	}
}

func fileResponse(rootChildren []any) map[string]any {
	return map[string]any{
		"name":         "Landing Page",
		"lastModified": "2026-01-15T10:00:00Z",
		"thumbnailUrl": "https://example.com/thumb.png",
		"document": map[string]any{
			"id":       "0:0",
			"type":     "DOCUMENT",
			"children": rootChildren,
		},
	}
}

func newTestParser(opts ...Option) *Parser {
	opts = append([]Option{WithRandSource(rand.NewSource(1))}, opts...)
	return NewParser(opts...)
}

func TestParseFileResponse(t *testing.T) {
	design := newTestParser().Parse(fileResponse([]any{
		map[string]any{
			"id":    "1:1",
			"name":  "Hero",
			"type":  "FRAME",
			"fills": []any{redFill()},
			"children": []any{
				map[string]any{"id": "1:2", "name": "Card A", "type": "RECTANGLE", "fills": []any{redFill()}},
				map[string]any{"id": "1:3", "name": "Card B", "type": "RECTANGLE", "fills": []any{redFill()}},
			},
		},
	}))

	assert.Equal(t, "Landing Page", design.Name)
	assert.Equal(t, "2026-01-15T10:00:00Z", design.LastModified)
	require.Len(t, design.Nodes, 1)

	hero := design.Nodes[0]
	require.Len(t, hero.Children, 2)

	// The identical red fill on all three nodes collapses to one entry.
	assert.Equal(t, hero.Fills, hero.Children[0].Fills)
	assert.Equal(t, hero.Children[0].Fills, hero.Children[1].Fills)
	assert.Len(t, design.GlobalVars.Styles, 1)
	assert.True(t, strings.HasPrefix(string(hero.Fills), "fill_"))
}

func TestParseSkipsInvisibleNodes(t *testing.T) {
	design := newTestParser().Parse(fileResponse([]any{
		map[string]any{"id": "1:1", "type": "FRAME", "children": []any{
			map[string]any{"id": "1:2", "type": "RECTANGLE", "visible": false},
			map[string]any{"id": "1:3", "type": "RECTANGLE"},
		}},
	}))

	require.Len(t, design.Nodes, 1)
	require.Len(t, design.Nodes[0].Children, 1)
	assert.Equal(t, "1:3", design.Nodes[0].Children[0].ID)
}

func TestParseRetagsVectors(t *testing.T) {
	design := newTestParser().Parse(fileResponse([]any{
		map[string]any{"id": "1:1", "name": "Icon", "type": "VECTOR"},
	}))

	require.Len(t, design.Nodes, 1)
	assert.Equal(t, "IMAGE-SVG", design.Nodes[0].Type)
}

func TestParseIsolatesNodeFailures(t *testing.T) {
	design := newTestParser().Parse(fileResponse([]any{
		map[string]any{"id": "1:1", "type": "FRAME", "children": []any{
			map[string]any{"id": "1:2", "type": "RECTANGLE", "fills": []any{
				map[string]any{"type": "SOLID"},
			}},
			map[string]any{"id": "1:3", "type": "RECTANGLE", "fills": []any{redFill()}},
		}},
	}))

	require.Len(t, design.Nodes, 1)
	require.Len(t, design.Nodes[0].Children, 1)
	assert.Equal(t, "1:3", design.Nodes[0].Children[0].ID)
}

func TestParseDepthGuard(t *testing.T) {
	design := newTestParser(WithMaxDepth(1)).Parse(fileResponse([]any{
		map[string]any{"id": "1:1", "type": "FRAME", "children": []any{
			map[string]any{"id": "1:2", "type": "FRAME", "children": []any{
				map[string]any{"id": "1:3", "type": "RECTANGLE"},
			}},
		}},
	}))

	require.Len(t, design.Nodes, 1)
	require.Len(t, design.Nodes[0].Children, 1)
	assert.Empty(t, design.Nodes[0].Children[0].Children)
}

func TestParseNodeSubsetResponse(t *testing.T) {
	design := newTestParser().Parse(map[string]any{
		"name": "Subset",
		"nodes": map[string]any{
			"9:2": map[string]any{"document": map[string]any{"id": "9:2", "name": "Later", "type": "FRAME"}},
			"1:1": map[string]any{"document": map[string]any{"id": "1:1", "name": "First", "type": "FRAME"}},
		},
	})

	require.Len(t, design.Nodes, 2)
	assert.Equal(t, "1:1", design.Nodes[0].ID)
	assert.Equal(t, "9:2", design.Nodes[1].ID)
}

func TestParseChildlessDocumentFallsBackToNodes(t *testing.T) {
	design := newTestParser().Parse(map[string]any{
		"name":     "Subset",
		"document": map[string]any{"id": "0:0", "type": "DOCUMENT"},
		"nodes": map[string]any{
			"1:1": map[string]any{"document": map[string]any{"id": "1:1", "name": "Frame", "type": "FRAME"}},
		},
	})

	require.Len(t, design.Nodes, 1)
	assert.Equal(t, "1:1", design.Nodes[0].ID)
}

func TestParseChildlessDocumentWithoutNodes(t *testing.T) {
	design := newTestParser().Parse(map[string]any{
		"document": map[string]any{"id": "0:0", "type": "DOCUMENT"},
	})

	assert.Empty(t, design.Nodes)
}

func TestParseDefaults(t *testing.T) {
	design := newTestParser().Parse(map[string]any{})

	assert.Equal(t, "Untitled Design", design.Name)
	assert.Empty(t, design.Nodes)
	assert.Empty(t, design.Components)
	assert.Empty(t, design.GlobalVars.Styles)
}

func TestParseTextNode(t *testing.T) {
	design := newTestParser().Parse(fileResponse([]any{
		map[string]any{
			"id":         "1:1",
			"name":       "Title",
			"type":       "TEXT",
			"characters": "Hello",
			"style": map[string]any{
				"fontFamily": "Inter",
				"fontWeight": 700.0,
				"fontSize":   16.0,
				"fills": []any{
					map[string]any{"type": "SOLID", "color": map[string]any{"r": 0.0, "g": 0.0, "b": 0.0, "a": 1.0}},
				},
			},
		},
	}))

	require.Len(t, design.Nodes, 1)
	node := design.Nodes[0]
	assert.Equal(t, "Hello", node.Text)
	require.NotEmpty(t, node.TextStyle)

	style, ok := design.GlobalVars.Styles[node.TextStyle].(domain.TextStyle)
	require.True(t, ok)
	assert.Equal(t, "Inter", style.FontFamily)
	require.NotNil(t, style.FontWeight)
	assert.Equal(t, 700.0, *style.FontWeight)
	assert.Equal(t, "rgba(0, 0, 0, 1)", style.Color)
}

func TestParseBorderRadius(t *testing.T) {
	tests := []struct {
		name string
		node map[string]any
		want string
	}{
		{
			"uniform corners collapse",
			map[string]any{"id": "1:1", "type": "RECTANGLE", "rectangleCornerRadii": []any{8.0, 8.0, 8.0, 8.0}},
			"8px",
		},
		{
			"mixed corners enumerate",
			map[string]any{"id": "1:1", "type": "RECTANGLE", "rectangleCornerRadii": []any{1.0, 2.0, 3.0, 4.0}},
			"1px 2px 3px 4px",
		},
		{
			"all zero omitted",
			map[string]any{"id": "1:1", "type": "RECTANGLE", "rectangleCornerRadii": []any{0.0, 0.0, 0.0, 0.0}},
			"",
		},
		{
			"uniform fallback",
			map[string]any{"id": "1:1", "type": "RECTANGLE", "cornerRadius": 4.5},
			"4.5px",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			design := newTestParser().Parse(fileResponse([]any{tt.node}))
			require.Len(t, design.Nodes, 1)
			assert.Equal(t, tt.want, design.Nodes[0].BorderRadius)
		})
	}
}

func TestParseMalformedBoundingBox(t *testing.T) {
	design := newTestParser().Parse(fileResponse([]any{
		map[string]any{
			"id":                  "1:1",
			"type":                "RECTANGLE",
			"absoluteBoundingBox": map[string]any{"x": 0.0, "y": 0.0},
		},
	}))

	require.Len(t, design.Nodes, 1)
	assert.Nil(t, design.Nodes[0].BoundingBox)
}

func TestParseInstanceMetadata(t *testing.T) {
	design := newTestParser().Parse(fileResponse([]any{
		map[string]any{
			"id":          "1:1",
			"type":        "INSTANCE",
			"componentId": "5:5",
			"componentProperties": map[string]any{
				"Label": map[string]any{"value": "Buy", "type": "TEXT"},
			},
		},
	}))

	require.Len(t, design.Nodes, 1)
	assert.Equal(t, "5:5", design.Nodes[0].ComponentID)
	assert.Contains(t, design.Nodes[0].ComponentProperties, "Label")
}
