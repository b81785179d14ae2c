package regions

import (
	"golang.org/x/net/html"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/siteconfig"
)

// VisitPartnerLabel is the fixed text of every sponsor link.
const VisitPartnerLabel = "Visit Partner " + Arrow

func (r *Renderer) SponsorNodes(sponsors []siteconfig.Sponsor) []*html.Node {
	nodes := make([]*html.Node, 0, len(sponsors))
	for _, s := range sponsors {
		img := dom.El("img", []html.Attribute{
			dom.Attr("src", r.URL(s.Image)),
			dom.Attr("alt", s.Name),
		})
		link := r.externalLink(s.Link, "btn-text", dom.Text(VisitPartnerLabel))
		nodes = append(nodes, dom.El("div", []html.Attribute{dom.Attr("class", "sponsor-card")}, img, link))
	}
	return nodes
}

// RenderSponsors replaces the sponsor grid with one card per sponsor.
func (r *Renderer) RenderSponsors(doc *dom.Document, sponsors []siteconfig.Sponsor) bool {
	grid := doc.Query(SelSponsorGrid)
	if grid == nil {
		return false
	}
	dom.ReplaceChildren(grid, r.SponsorNodes(sponsors)...)
	return true
}
