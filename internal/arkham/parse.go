package arkham

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/dunwich/arkham-central-mcp/internal/models"
)

// Markup knowledge about arkhamcentral.com lives here and nowhere else.
// The site is a WordPress install: page bodies sit in a div with class
// "entry-content", and scenario pages hang off the /index.php/ prefix.
const (
	contentClass       = "entry-content"
	scenarioPathPrefix = "/index.php/"
)

// parseListing extracts scenario summaries from the fan-content listing page,
// in page order. Anchors outside the content region, anchors that do not
// point under /index.php/, and repeat links to the same slug are skipped.
func parseListing(page []byte, listingURL string) ([]models.ScenarioSummary, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	content := findByClass(doc, contentClass)
	if content == nil {
		return nil, nil
	}

	var (
		scenarios []models.ScenarioSummary
		seen      = map[string]bool{}
	)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			id := scenarioID(attr(n, "href"), listingURL)
			name := strings.TrimSpace(nodeText(n))
			if id != "" && name != "" && !seen[id] {
				seen[id] = true
				scenarios = append(scenarios, models.ScenarioSummary{ID: id, Name: name})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(content)

	return scenarios, nil
}

// parseContent extracts the main content region of a scenario page as raw
// HTML. Returns false when the page has no such region.
func parseContent(page []byte) (string, bool) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return "", false
	}

	content := findByClass(doc, contentClass)
	if content == nil {
		return "", false
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, content); err != nil {
		return "", false
	}
	return buf.String(), true
}

// scenarioID derives a scenario slug from an anchor href. The href must
// resolve under the /index.php/ prefix on the same host as the listing;
// the slug is the final path segment. The listing page's own slug yields "".
func scenarioID(href, listingURL string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(listingURL)
	if err != nil {
		return ""
	}
	u, err := base.Parse(href)
	if err != nil || u.Host != base.Host {
		return ""
	}
	if !strings.HasPrefix(u.Path, scenarioPathPrefix) {
		return ""
	}

	slug := lastSegment(u.Path)
	if slug == "" || slug == lastSegment(base.Path) {
		// Empty slug or a self-link back to the listing page.
		return ""
	}
	return slug
}

func lastSegment(path string) string {
	p := strings.TrimSuffix(path, "/")
	return p[strings.LastIndex(p, "/")+1:]
}

// findByClass returns the first element whose class attribute contains the
// given class name, depth-first.
func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
