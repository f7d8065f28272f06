package boj

import (
	"strings"

	"golang.org/x/net/html"

	"bojctl/internal/problem"
)

// ParseProblem extracts problem fields from a BOJ problem page. Missing
// sections yield empty fields, not errors; only a malformed document
// fails.
func ParseProblem(page string) (*problem.Problem, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	p := &problem.Problem{}

	if n := findByID(doc, "problem_title"); n != nil {
		p.Title = blockText(n)
	}
	if n := findByID(doc, "problem_description"); n != nil {
		p.Description = blockText(n)
	}
	if n := findByID(doc, "problem_input"); n != nil {
		p.Input = blockText(n)
	}
	if n := findByID(doc, "problem_output"); n != nil {
		p.Output = blockText(n)
	}
	if n := findByID(doc, "problem_limit"); n != nil {
		p.Limit = blockText(n)
	}

	for _, n := range findAllByClass(doc, "pre", "sampledata") {
		p.Samples = append(p.Samples, strings.TrimSpace(textContent(n)))
	}

	return p, nil
}

// findByID returns the first element with the given id attribute,
// in document order.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// findAllByClass returns every element with the given tag carrying the
// given class, in document order.
func findAllByClass(n *html.Node, tag, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// textContent concatenates every text node under n verbatim.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// blockText gathers the trimmed text of every text node under n and
// joins the non-empty pieces with newlines, so nested markup reads as
// plain text.
func blockText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, "\n")
}
