package pages

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
)

// Cached glamour renderer to avoid recreation on every render call.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
	rendererMu          sync.Mutex
)

// Page holds the final terminal-ready output for a route.
type Page struct {
	Route   string
	Title   string
	Content string // styled terminal text
	Links   []Link
}

// Link is a numbered hyperlink found in the page content. Links whose
// target is another route can be followed in-app.
type Link struct {
	Index int
	Text  string
	URL   string
}

// Render converts an Article's HTML into styled terminal text, numbering
// links along the way.
func Render(article *Article, width int) *Page {
	if width <= 0 {
		width = 80
	}

	contentWidth := width - 4
	if contentWidth > 100 {
		contentWidth = 100
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return &Page{
			Route:   article.Route,
			Title:   article.Title,
			Content: article.TextContent,
		}
	}

	conv := &mdConverter{}

	var md strings.Builder
	if article.Title != "" {
		md.WriteString("# " + article.Title + "\n\n")
	}
	if article.Byline != "" {
		md.WriteString("*" + article.Byline + "*\n\n")
	}

	doc.Find("body").Children().Each(func(i int, s *goquery.Selection) {
		md.WriteString(conv.convertNode(s, 0))
	})

	rendered, glamErr := renderWithGlamour(md.String(), contentWidth)
	if glamErr != nil {
		// Fallback: show the raw markdown.
		rendered = md.String()
	}

	return &Page{
		Route:   article.Route,
		Title:   article.Title,
		Content: rendered,
		Links:   conv.links,
	}
}

// renderWithGlamour renders markdown into styled terminal output, reusing
// the renderer until the width changes.
func renderWithGlamour(markdown string, width int) (string, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if cachedRenderer == nil || cachedRendererWidth != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		cachedRenderer = renderer
		cachedRendererWidth = width
	}

	return cachedRenderer.Render(markdown)
}

// mdConverter converts goquery HTML nodes to markdown.
type mdConverter struct {
	linkIndex int
	links     []Link
}

func (c *mdConverter) convertNode(s *goquery.Selection, depth int) string {
	var sb strings.Builder

	switch tag := goquery.NodeName(s); tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(strings.Repeat("#", int(tag[1]-'0')) + " " + text + "\n\n")
		}
	case "p":
		var inline strings.Builder
		c.convertInline(s, &inline)
		if text := strings.TrimSpace(inline.String()); text != "" {
			sb.WriteString(text + "\n\n")
		}
	case "a":
		sb.WriteString(c.convertLink(s))
	case "ul":
		sb.WriteString(c.convertList(s, false, depth))
	case "ol":
		sb.WriteString(c.convertList(s, true, depth))
	case "blockquote":
		sb.WriteString(c.convertBlockquote(s))
	case "pre":
		sb.WriteString(c.convertCodeBlock(s))
	case "code":
		sb.WriteString("`" + s.Text() + "`")
	case "hr":
		sb.WriteString("\n---\n\n")
	case "br":
		sb.WriteString("  \n")
	case "table":
		sb.WriteString(c.convertTable(s))
	case "strong", "b":
		sb.WriteString("**")
		c.convertInline(s, &sb)
		sb.WriteString("**")
	case "em", "i":
		sb.WriteString("*")
		c.convertInline(s, &sb)
		sb.WriteString("*")
	case "div", "article", "section", "main", "header", "footer", "span":
		s.Children().Each(func(i int, child *goquery.Selection) {
			sb.WriteString(c.convertNode(child, depth))
		})
	default:
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(text + "\n\n")
		}
	}

	return sb.String()
}

func (c *mdConverter) convertInline(s *goquery.Selection, sb *strings.Builder) {
	s.Contents().Each(func(i int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "#text":
			sb.WriteString(child.Text())
		case "a":
			sb.WriteString(c.convertLink(child))
		case "strong", "b":
			sb.WriteString("**")
			c.convertInline(child, sb)
			sb.WriteString("**")
		case "em", "i":
			sb.WriteString("*")
			c.convertInline(child, sb)
			sb.WriteString("*")
		case "code":
			sb.WriteString("`" + child.Text() + "`")
		case "br":
			sb.WriteString("  \n")
		default:
			c.convertInline(child, sb)
		}
	})
}

func (c *mdConverter) convertLink(s *goquery.Selection) string {
	href, exists := s.Attr("href")
	text := strings.TrimSpace(s.Text())
	if text == "" {
		text = href
	}
	if !exists || href == "" {
		return text
	}

	c.linkIndex++
	c.links = append(c.links, Link{
		Index: c.linkIndex,
		Text:  text,
		URL:   href,
	})

	return fmt.Sprintf("[%s](%s) **[%d]**", text, href, c.linkIndex)
}

func (c *mdConverter) convertList(s *goquery.Selection, ordered bool, depth int) string {
	var sb strings.Builder
	indent := strings.Repeat("  ", depth)
	itemNum := 0

	s.Find("> li").Each(func(i int, li *goquery.Selection) {
		itemNum++
		prefix := indent + "- "
		if ordered {
			prefix = fmt.Sprintf("%s%d. ", indent, itemNum)
		}

		var item strings.Builder
		c.convertInline(li, &item)
		sb.WriteString(prefix + strings.TrimSpace(item.String()) + "\n")

		li.ChildrenFiltered("ul, ol").Each(func(j int, child *goquery.Selection) {
			sb.WriteString(c.convertList(child, goquery.NodeName(child) == "ol", depth+1))
		})
	})

	return sb.String() + "\n"
}

func (c *mdConverter) convertBlockquote(s *goquery.Selection) string {
	var inline strings.Builder
	c.convertInline(s, &inline)
	text := strings.TrimSpace(inline.String())
	if text == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString("> " + line + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

func (c *mdConverter) convertCodeBlock(s *goquery.Selection) string {
	code := s.Find("code")

	lang := ""
	if code.Length() > 0 {
		if class, _ := code.Attr("class"); strings.Contains(class, "language-") {
			lang = strings.Fields(strings.SplitN(class, "language-", 2)[1])[0]
		}
	}

	text := s.Text()
	if code.Length() > 0 {
		text = code.Text()
	}

	return "```" + lang + "\n" + text + "\n```\n\n"
}

func (c *mdConverter) convertTable(s *goquery.Selection) string {
	var headers []string
	s.Find("thead th, thead td").Each(func(i int, th *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(th.Text()))
	})

	var rows [][]string
	s.Find("tbody tr").Each(func(i int, tr *goquery.Selection) {
		var row []string
		tr.Find("td, th").Each(func(j int, td *goquery.Selection) {
			row = append(row, strings.TrimSpace(td.Text()))
		})
		rows = append(rows, row)
	})

	numCols := len(headers)
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return ""
	}
	for len(headers) < numCols {
		headers = append(headers, "")
	}

	var sb strings.Builder
	sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	seps := make([]string, numCols)
	for i := range seps {
		seps[i] = "---"
	}
	sb.WriteString("| " + strings.Join(seps, " | ") + " |\n")
	for _, row := range rows {
		for len(row) < numCols {
			row = append(row, "")
		}
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	sb.WriteString("\n")
	return sb.String()
}
