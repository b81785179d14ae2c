package regions

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/siteconfig"
)

// HomePage is the page id used when a path has no trailing segment.
const HomePage = "index.html"

// CurrentPage returns the last segment of a location path, or HomePage.
func CurrentPage(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return HomePage
	}
	return path
}

// NavigationNodes builds one list item per entry, in input order. A standard
// entry is marked active when its raw url equals current.
func (r *Renderer) NavigationNodes(items []siteconfig.NavItem, current string) []*html.Node {
	nodes := make([]*html.Node, 0, len(items))
	for _, item := range items {
		var a *html.Node
		if item.IsCTA() {
			a = r.externalLink(item.URL, "btn-cta", dom.Text(item.Label))
		} else {
			class := "nav-link"
			if item.URL == current {
				class += " active"
			}
			a = dom.El("a", []html.Attribute{
				dom.Attr("href", r.URL(item.URL)),
				dom.Attr("class", class),
			}, dom.Text(item.Label))
		}
		nodes = append(nodes, dom.El("li", nil, a))
	}
	return nodes
}

// RenderNavigation fills the navigation list for the page at pagePath. It
// reports whether the target region exists.
func (r *Renderer) RenderNavigation(doc *dom.Document, items []siteconfig.NavItem, pagePath string) bool {
	list := doc.Query(SelNavigation)
	if list == nil {
		return false
	}
	dom.ReplaceChildren(list, r.NavigationNodes(items, CurrentPage(pagePath))...)
	return true
}
