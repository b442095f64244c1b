package httpfetch

import (
	"strings"

	"golang.org/x/net/html"
)

// Tags whose subtrees carry no roster content.
var skipTags = map[string]bool{
	"script": true, "style": true, "nav": true,
	"header": true, "footer": true, "aside": true,
	"noscript": true, "iframe": true,
}

// Block elements that end a line. The roster parser is line-oriented,
// so line structure must survive extraction; inline whitespace is left
// untouched for the same reason (column positions carry meaning).
var lineBreakTags = map[string]bool{
	"p": true, "div": true, "li": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"pre": true,
}

// extractText reduces an HTML document to line-oriented text.
// On a parse failure the raw input is returned unchanged: the roster
// extractor fails soft on garbage anyway.
func extractText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skipTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && lineBreakTags[n.Data] {
			sb.WriteString("\n")
		}
	}
	walk(doc)

	return trimLines(sb.String())
}

// trimLines strips trailing whitespace per line and collapses runs of
// blank lines to one.
func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
