// Package regions turns configuration fragments into page structure.
//
// Every region has a pure builder that returns detached nodes for its input
// and a Render method that applies those nodes to a live dom.Document. Render
// methods replace the previous content of their target, so calling one twice
// leaves only the second result. A missing target is a no-op.
package regions

import (
	"golang.org/x/net/html"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/safeurl"
)

// Mount point selectors.
const (
	SelNavigation   = ".nav-links"
	SelMobileToggle = ".mobile-toggle"
	SelMobilePanel  = ".mobile-nav-panel"
	SelHeroSection  = ".hero-section"
	SelHeroHeadline = ".hero-h1"
	SelHeroSub      = ".hero-sub"
	SelHeroCTA      = ".hero-cta"
	SelSponsorGrid  = ".sponsor-grid"
	SelFooter       = ".site-footer"
	SelNewsFeed     = ".news-feed"
	SelCarousel     = ".swiper"
)

// Arrow is the directional glyph appended to outbound links.
const Arrow = "→"

// Renderer builds and applies regions. It holds no per-page state and can be
// shared between page views.
type Renderer struct {
	urls *safeurl.Sanitizer
}

// New creates a Renderer that passes every configured URL through urls. A nil
// sanitizer means the default block-list sanitizer.
func New(urls *safeurl.Sanitizer) *Renderer {
	if urls == nil {
		urls = safeurl.New()
	}
	return &Renderer{urls: urls}
}

// URL sanitizes a configured link.
func (r *Renderer) URL(raw string) string {
	return r.urls.Sanitize(raw)
}

// externalLink builds an anchor that opens in a new browsing context without a
// reference back to this page.
func (r *Renderer) externalLink(href, class string, children ...*html.Node) *html.Node {
	attrs := []html.Attribute{dom.Attr("href", r.URL(href))}
	if class != "" {
		attrs = append(attrs, dom.Attr("class", class))
	}
	attrs = append(attrs,
		dom.Attr("target", "_blank"),
		dom.Attr("rel", "noopener noreferrer"),
	)
	return dom.El("a", attrs, children...)
}
