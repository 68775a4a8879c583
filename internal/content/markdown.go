package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// excerptLength caps plain-text excerpts used on index pages and in feed
// item descriptions.
const excerptLength = 280

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// renderHTML converts a Markdown body to HTML.
func renderHTML(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

// Excerpt extracts the plain text from an HTML fragment and truncates it to
// at most maxLen runes, breaking at a word boundary.
func Excerpt(htmlSrc string, maxLen int) string {
	doc, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	// Collapse runs of whitespace left behind by block elements.
	text := strings.Join(strings.Fields(b.String()), " ")
	if maxLen <= 0 || len([]rune(text)) <= maxLen {
		return text
	}

	runes := []rune(text)[:maxLen]
	truncated := strings.TrimRight(string(runes), " ")
	if idx := strings.LastIndex(truncated, " "); idx > 0 {
		truncated = truncated[:idx]
	}
	return truncated + "..."
}
