package domain

import "strings"

// ADFNode is a node in an Atlassian Document Format tree, the nested JSON
// representation Jira Cloud uses for rich-text fields. A node is exactly one
// of: a text leaf (Type == "text"), a container (non-empty Content), or
// something else that contributes no text.
type ADFNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text,omitempty"`
	Content []ADFNode `json:"content,omitempty"`
}

// ExtractText returns the concatenation, in document order, of every text
// leaf in the tree, trimmed of leading and trailing whitespace. Non-text
// nodes without children contribute nothing.
func ExtractText(node *ADFNode) string {
	if node == nil {
		return ""
	}
	var b strings.Builder
	appendText(&b, node)
	return strings.TrimSpace(b.String())
}

func appendText(b *strings.Builder, node *ADFNode) {
	if node.Type == "text" {
		b.WriteString(node.Text)
		return
	}
	for i := range node.Content {
		appendText(b, &node.Content[i])
	}
}
