package regions

import (
	"golang.org/x/net/html"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/siteconfig"
)

// FooterNodes builds the footer body. Only the first social entry is used and
// the social row is omitted when there is none.
func (r *Renderer) FooterNodes(footer *siteconfig.FooterContent) []*html.Node {
	if footer == nil {
		return nil
	}
	container := dom.El("div", []html.Attribute{dom.Attr("class", "container")})
	if len(footer.Socials) > 0 {
		social := footer.Socials[0]
		container.AppendChild(dom.El("div", []html.Attribute{dom.Attr("class", "footer-social")},
			r.externalLink(social.URL, "", dom.Text(social.DisplayLabel())),
		))
	}
	container.AppendChild(dom.El("p", []html.Attribute{dom.Attr("class", "copyright")},
		dom.Text("© "+footer.Copyright),
	))
	return []*html.Node{container}
}

// RenderFooter replaces the footer content. A document without footer data
// keeps its static footer.
func (r *Renderer) RenderFooter(doc *dom.Document, footer *siteconfig.FooterContent) bool {
	target := doc.Query(SelFooter)
	if target == nil || footer == nil {
		return false
	}
	dom.ReplaceChildren(target, r.FooterNodes(footer)...)
	return true
}
