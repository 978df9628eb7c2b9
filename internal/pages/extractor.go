package pages

import (
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// Article holds the readable content extracted from a route document.
type Article struct {
	Route       string
	Title       string
	Byline      string
	Content     string // cleaned HTML
	TextContent string // plain text
}

// Extract runs the readability pass over a route's authored document.
// The route is wrapped in a synthetic app URL because the extractor
// resolves relative references against one.
func Extract(route string) (*Article, error) {
	doc, ok := Lookup(route)
	if !ok {
		return nil, fmt.Errorf("no document for route %q", route)
	}

	base, err := url.Parse("navdeck://app" + route)
	if err != nil {
		return nil, fmt.Errorf("parsing route %q: %w", route, err)
	}

	article, err := readability.FromReader(strings.NewReader(doc), base)
	if err != nil {
		return nil, fmt.Errorf("extracting %q: %w", route, err)
	}

	out := &Article{
		Route:       route,
		Title:       article.Title,
		Byline:      article.Byline,
		Content:     article.Content,
		TextContent: article.TextContent,
	}

	// Readability can reject documents it considers too thin; the
	// authored source is already clean HTML, so use it as-is.
	if strings.TrimSpace(out.Content) == "" {
		out.Content = doc
	}

	return out, nil
}
