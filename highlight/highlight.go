// Package highlight marks occurrences of a search term inside post titles and
// comment bodies.
package highlight

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Segment is a piece of text; Match is true for pieces equal to the term
// (case-insensitively).
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Split cuts text around case-insensitive literal occurrences of term.
// A blank term yields the whole text as one unmatched segment.
func Split(text, term string) []Segment {
	if text == "" {
		return nil
	}
	if strings.TrimSpace(term) == "" {
		return []Segment{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	var out []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			out = append(out, Segment{Text: text[last:loc[0]]})
		}
		out = append(out, Segment{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, Segment{Text: text[last:]})
	}
	return out
}

// HTML renders text as an escaped HTML fragment with matches wrapped in <mark>.
func HTML(text, term string) string {
	segments := Split(text, term)
	if len(segments) == 0 {
		return ""
	}

	root := &html.Node{Type: html.ElementNode, DataAtom: atom.Span, Data: "span"}
	for _, seg := range segments {
		textNode := &html.Node{Type: html.TextNode, Data: seg.Text}
		if !seg.Match {
			root.AppendChild(textNode)
			continue
		}
		mark := &html.Node{Type: html.ElementNode, DataAtom: atom.Mark, Data: "mark"}
		mark.AppendChild(textNode)
		root.AppendChild(mark)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return html.EscapeString(text)
	}
	return buf.String()
}
