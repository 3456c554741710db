package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		node *ADFNode
		want string
	}{
		{
			name: "two text leaves concatenate in order",
			node: &ADFNode{
				Content: []ADFNode{
					{Type: "text", Text: "A"},
					{Type: "text", Text: "B"},
				},
			},
			want: "AB",
		},
		{
			name: "empty tree",
			node: &ADFNode{},
			want: "",
		},
		{
			name: "nil tree",
			node: nil,
			want: "",
		},
		{
			name: "nested containers walk post-order",
			node: &ADFNode{
				Type: "doc",
				Content: []ADFNode{
					{Type: "paragraph", Content: []ADFNode{
						{Type: "text", Text: "Hello "},
						{Type: "text", Text: "world"},
					}},
					{Type: "paragraph", Content: []ADFNode{
						{Type: "text", Text: "!"},
					}},
				},
			},
			want: "Hello world!",
		},
		{
			name: "non-text leaf contributes nothing",
			node: &ADFNode{
				Content: []ADFNode{
					{Type: "hardBreak"},
					{Type: "text", Text: "after break"},
				},
			},
			want: "after break",
		},
		{
			name: "surrounding whitespace is trimmed",
			node: &ADFNode{
				Content: []ADFNode{
					{Type: "text", Text: "  padded  "},
				},
			},
			want: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractText(tt.node))
		})
	}
}

func TestExtractTextDeepNesting(t *testing.T) {
	// Build a chain of single-child containers with a text leaf at the bottom.
	leaf := ADFNode{Type: "text", Text: "deep"}
	node := leaf
	for i := 0; i < 500; i++ {
		node = ADFNode{Type: "paragraph", Content: []ADFNode{node}}
	}
	assert.Equal(t, "deep", ExtractText(&node))
}

func TestADFNodeUnmarshal(t *testing.T) {
	raw := `{
		"type": "doc",
		"version": 1,
		"content": [
			{"type": "paragraph", "content": [
				{"type": "text", "text": "First."},
				{"type": "text", "text": " Second."}
			]}
		]
	}`

	var node ADFNode
	require.NoError(t, json.Unmarshal([]byte(raw), &node))
	assert.Equal(t, "First. Second.", ExtractText(&node))
}
