package domain

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var newlineRuns = regexp.MustCompile(`(?:\n[ \t]*){3,}`)

// CleanStorageMarkup converts a Confluence storage-format fragment into a
// readable plain-text approximation. Structured macro blocks and their
// parameter sub-blocks are dropped entirely; paragraph and break tags become
// newlines, bold and italic become ** and * markers, headings become "## ",
// list items become bullets, and every other tag is stripped while its inner
// text is kept. The transform is lossy and never fails: malformed markup is
// tokenized best-effort rather than validated.
func CleanStorageMarkup(input string) string {
	z := html.NewTokenizer(strings.NewReader(input))
	var b strings.Builder
	skip := 0 // depth inside a stripped macro block

	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			out := newlineRuns.ReplaceAllString(b.String(), "\n\n")
			return strings.TrimSpace(out)
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if strippedBlock(tag) {
				switch tt {
				case html.StartTagToken:
					skip++
				case html.EndTagToken:
					if skip > 0 {
						skip--
					}
				}
				continue
			}
			if skip == 0 {
				b.WriteString(tagMarker(tag, tt))
			}
		}
	}
}

// strippedBlock reports whether a tag opens a block whose entire content
// should be discarded, not just the tag itself.
func strippedBlock(tag string) bool {
	return tag == "ac:structured-macro" || tag == "ac:parameter"
}

// tagMarker returns the plain-text stand-in for a markup tag.
func tagMarker(tag string, tt html.TokenType) string {
	switch tag {
	case "p":
		return "\n\n"
	case "div", "ul", "ol":
		return "\n"
	case "br":
		return "\n"
	case "strong":
		return "**"
	case "em":
		return "*"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "\n## "
	case "li":
		if tt == html.StartTagToken {
			return "• "
		}
		return "\n"
	}
	return ""
}
