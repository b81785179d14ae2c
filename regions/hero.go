package regions

import (
	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/siteconfig"
)

// RenderHero writes the hero text as plain text. Each field is skipped when
// its element is absent; line-break sequences stay literal text.
func (r *Renderer) RenderHero(doc *dom.Document, hero *siteconfig.HeroContent) {
	if hero == nil {
		return
	}
	if h1 := doc.Query(SelHeroHeadline); h1 != nil {
		dom.SetText(h1, hero.Headline)
	}
	if sub := doc.Query(SelHeroSub); sub != nil {
		dom.SetText(sub, hero.Subheadline)
	}
	if cta := doc.Query(SelHeroCTA); cta != nil {
		dom.SetText(cta, hero.CTAText)
		dom.SetAttr(cta, "href", r.URL(hero.CTALink))
	}
}
