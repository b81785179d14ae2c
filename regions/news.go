package regions

import (
	"golang.org/x/net/html"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/newsfeed"
)

// UnavailableNotice replaces the news panel when no items can be shown.
const UnavailableNotice = "News is currently unavailable."

// NewsNodes builds the news list, or the unavailable notice when items is
// empty.
func (r *Renderer) NewsNodes(items []newsfeed.Item) []*html.Node {
	if len(items) == 0 {
		return []*html.Node{UnavailableNode()}
	}
	list := dom.El("ul", []html.Attribute{dom.Attr("class", "news-list")})
	for _, it := range items {
		list.AppendChild(dom.El("li", nil,
			r.externalLink(it.Link, "news-link",
				dom.Text(it.Title+" "),
				dom.El("span", []html.Attribute{dom.Attr("class", "news-arrow")}, dom.Text(Arrow)),
			),
		))
	}
	return []*html.Node{list}
}

// UnavailableNode builds the static notice.
func UnavailableNode() *html.Node {
	return dom.El("p", []html.Attribute{dom.Attr("class", "news-unavailable")}, dom.Text(UnavailableNotice))
}

// RenderNews replaces the news panel. A fetch error is rendered the same way
// as an empty feed.
func (r *Renderer) RenderNews(doc *dom.Document, items []newsfeed.Item, fetchErr error) bool {
	panel := doc.Query(SelNewsFeed)
	if panel == nil {
		return false
	}
	if fetchErr != nil {
		items = nil
	}
	dom.ReplaceChildren(panel, r.NewsNodes(items)...)
	return true
}
