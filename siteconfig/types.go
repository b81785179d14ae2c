// Package siteconfig defines the page configuration document and loads it.
package siteconfig

// NavType distinguishes call-to-action entries from standard links.
type NavType string

const (
	NavStandard NavType = "standard"
	NavCTA      NavType = "cta"
)

// PageConfig is the top-level configuration document. Navigation and Hero are
// required; the rest may be absent.
type PageConfig struct {
	Navigation []NavItem      `json:"navigation"`
	Hero       *HeroContent   `json:"hero"`
	Sponsors   []Sponsor      `json:"sponsors"`
	Footer     *FooterContent `json:"footer"`
}

// NavItem is one navigation entry.
type NavItem struct {
	URL   string  `json:"url"`
	Label string  `json:"label"`
	Type  NavType `json:"type"`
}

// IsCTA reports whether the item renders as a call-to-action.
func (n NavItem) IsCTA() bool {
	return n.Type == NavCTA
}

// HeroContent is plain text; none of it is interpreted as markup.
type HeroContent struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink"`
}

type Sponsor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Link  string `json:"link"`
}

// FooterContent holds the footer data. Only the first social entry is rendered.
type FooterContent struct {
	Socials   []Social `json:"socials"`
	Copyright string   `json:"copyright"`
}

// DefaultSocialLabel is used when a social entry has no label.
const DefaultSocialLabel = "Instagram"

type Social struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// DisplayLabel returns the label or DefaultSocialLabel.
func (s Social) DisplayLabel() string {
	if s.Label == "" {
		return DefaultSocialLabel
	}
	return s.Label
}
