// Package htmltext pulls the human-readable text out of HTML documents.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// VisibleText parses an HTML document and returns its text nodes joined
// by single spaces. Script, style, noscript and iframe contents are
// skipped.
func VisibleText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	return visibleText(doc), nil
}

// FromString is VisibleText for an in-memory document.
func FromString(doc string) (string, error) {
	return VisibleText(strings.NewReader(doc))
}

func visibleText(n *html.Node) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return strings.Join(parts, " ")
}
