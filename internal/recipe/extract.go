package recipe

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Anchor is a link found in the source page, with an absolute Href.
type Anchor struct {
	Href string
	Text string
}

// Extract returns every anchor in the document whose resolved URL is on
// base's host. The text is the anchor's collapsed text content.
func Extract(r io.Reader, base *url.URL) ([]Anchor, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var out []Anchor
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := attr(n, "href"); href != "" {
				if u, err := base.Parse(href); err == nil && sameHost(u, base) {
					u.Fragment = ""
					out = append(out, Anchor{Href: u.String(), Text: textOf(n)})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// sameHost treats www.example.com and example.com as one site.
func sameHost(u, base *url.URL) bool {
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	trim := func(h string) string { return strings.TrimPrefix(strings.ToLower(h), "www.") }
	return trim(u.Hostname()) == trim(base.Hostname())
}
