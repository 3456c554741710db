package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStorageMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "paragraph and bold",
			input: "<p>Hello</p><strong>World</strong>",
			want:  "Hello\n\n**World**",
		},
		{
			name:  "emphasis",
			input: "<p>an <em>important</em> word</p>",
			want:  "an *important* word",
		},
		{
			name:  "list items become bullets",
			input: "<ul><li>first</li><li>second</li></ul>",
			want:  "• first\n• second",
		},
		{
			name:  "line breaks",
			input: "one<br/>two<br>three",
			want:  "one\ntwo\nthree",
		},
		{
			name:  "unknown tags stripped but text kept",
			input: `<table><tr><td>cell</td></tr></table>`,
			want:  "cell",
		},
		{
			name:  "structured macro dropped entirely",
			input: `<p>Before</p><ac:structured-macro ac:name="code"><ac:parameter ac:name="language">go</ac:parameter>hidden</ac:structured-macro><p>After</p>`,
			want:  "Before\n\nAfter",
		},
		{
			name:  "entities unescaped",
			input: "<p>a &amp; b</p>",
			want:  "a & b",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "plain text passes through",
			input: "no markup at all",
			want:  "no markup at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanStorageMarkup(tt.input))
		})
	}
}

func TestCleanStorageMarkupNoTagsRemain(t *testing.T) {
	out := CleanStorageMarkup("<p>Hello</p><strong>World</strong>")
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "**World**")
	assert.Less(t, strings.Index(out, "Hello"), strings.Index(out, "**World**"))
}

func TestCleanStorageMarkupHeadings(t *testing.T) {
	out := CleanStorageMarkup("<h2>Title</h2><p>body</p>")
	assert.True(t, strings.HasPrefix(out, "## Title"), "output %q should start with heading marker", out)
	assert.Contains(t, out, "body")
}

func TestCleanStorageMarkupCollapsesNewlines(t *testing.T) {
	out := CleanStorageMarkup("<p>a</p><p></p><p></p><p>b</p>")
	assert.NotContains(t, out, "\n\n\n")
	assert.Equal(t, "a\n\nb", out)
}

func TestCleanStorageMarkupMalformedInput(t *testing.T) {
	// The transform is best-effort: malformed markup never fails.
	for _, input := range []string{
		"<p>unclosed",
		"</strong>orphan close",
		"<ac:structured-macro>never closed",
		"text with < stray bracket",
	} {
		assert.NotPanics(t, func() { CleanStorageMarkup(input) }, "input %q", input)
	}
}
