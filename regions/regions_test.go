package regions

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/newsfeed"
	"github.com/eringen/pagewire/safeurl"
	"github.com/eringen/pagewire/siteconfig"
)

const shell = `<!DOCTYPE html><html><head>
<script src="https://cdn.jsdelivr.net/npm/swiper@11/swiper-bundle.min.js"></script>
</head><body>
<header><ul class="nav-links"><li>static</li></ul><button class="mobile-toggle"><span class="bar"></span></button></header>
<section class="hero-section">
  <h1 class="hero-h1">placeholder</h1><p class="hero-sub">sub</p><a class="hero-cta" href="#">cta</a>
</section>
<div class="sponsor-grid"><div>old</div></div>
<div class="swiper"></div>
<aside class="news-feed"><p>loading</p></aside>
<main><p class="outside">content</p></main>
<footer class="site-footer">static footer</footer>
</body></html>`

type nopLogger struct{ warnings []string }

func (l *nopLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func newRenderer() *Renderer {
	return New(safeurl.New(safeurl.WithLogger(&nopLogger{})))
}

func parse(t *testing.T, s string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(s)
	require.NoError(t, err)
	return doc
}

func links(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == "a" {
			out = append(out, c)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	v, _ := dom.GetAttr(n, key)
	return v
}

func TestCurrentPage(t *testing.T) {
	tests := map[string]string{
		"/":                  HomePage,
		"":                   HomePage,
		"/about.html":        "about.html",
		"/team/members.html": "members.html",
		"/team/":             HomePage,
		"index.html":         "index.html",
	}
	for in, want := range tests {
		if got := CurrentPage(in); got != want {
			t.Errorf("CurrentPage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNavigationReplacesAndKeepsOrder(t *testing.T) {
	doc := parse(t, shell)
	r := newRenderer()

	first := []siteconfig.NavItem{{URL: "a.html", Label: "A"}, {URL: "b.html", Label: "B"}, {URL: "c.html", Label: "C"}}
	second := []siteconfig.NavItem{{URL: "y.html", Label: "Y"}, {URL: "x.html", Label: "X"}}

	require.True(t, r.RenderNavigation(doc, first, "/a.html"))
	require.True(t, r.RenderNavigation(doc, second, "/a.html"))

	list := doc.Query(SelNavigation)
	items := dom.Children(list)
	require.Len(t, items, 2)
	assert.Equal(t, "Y", dom.TextContent(items[0]))
	assert.Equal(t, "X", dom.TextContent(items[1]))
	assert.NotContains(t, dom.TextContent(list), "static")
}

func TestNavigationActiveMarker(t *testing.T) {
	doc := parse(t, shell)
	r := newRenderer()
	items := []siteconfig.NavItem{
		{URL: "index.html", Label: "Home", Type: siteconfig.NavStandard},
		{URL: "about.html", Label: "About"},
		{URL: "./index.html", Label: "Not normalized"},
	}

	r.RenderNavigation(doc, items, "/index.html")
	as := links(doc.Query(SelNavigation))
	require.Len(t, as, 3)
	assert.True(t, dom.HasClass(as[0], "active"))
	assert.True(t, dom.HasClass(as[0], "nav-link"))
	assert.False(t, dom.HasClass(as[1], "active"))
	assert.False(t, dom.HasClass(as[2], "active"))

	r.RenderNavigation(doc, items, "/")
	as = links(doc.Query(SelNavigation))
	assert.True(t, dom.HasClass(as[0], "active"), "root path maps to index.html")
}

func TestNavigationCTAAndSanitizing(t *testing.T) {
	doc := parse(t, shell)
	r := newRenderer()
	items := []siteconfig.NavItem{
		{URL: "https://apply.example", Label: "Apply", Type: siteconfig.NavCTA},
		{URL: "javascript:alert(1)", Label: "Evil"},
	}

	r.RenderNavigation(doc, items, "/")
	as := links(doc.Query(SelNavigation))
	require.Len(t, as, 2)

	assert.Equal(t, "btn-cta", attr(as[0], "class"))
	assert.Equal(t, "_blank", attr(as[0], "target"))
	assert.Equal(t, "noopener noreferrer", attr(as[0], "rel"))
	assert.Equal(t, safeurl.Placeholder, attr(as[1], "href"))
	assert.NotContains(t, doc.String(), "javascript:")
}

func TestNavigationMissingTarget(t *testing.T) {
	doc := parse(t, `<body><p>nothing</p></body>`)
	assert.False(t, newRenderer().RenderNavigation(doc, []siteconfig.NavItem{{URL: "a", Label: "a"}}, "/"))
}

func TestHeroWritesPlainText(t *testing.T) {
	doc := parse(t, shell)
	newRenderer().RenderHero(doc, &siteconfig.HeroContent{
		Headline:    "Build <em>more</em><br>together",
		Subheadline: "line one\nline two",
		CTAText:     "Join us",
		CTALink:     "vbscript:msgbox",
	})

	h1 := doc.Query(SelHeroHeadline)
	require.NotNil(t, h1.FirstChild)
	assert.Equal(t, html.TextNode, h1.FirstChild.Type)
	assert.Nil(t, h1.FirstChild.NextSibling)
	assert.Equal(t, "Build <em>more</em><br>together", dom.TextContent(h1))
	assert.Nil(t, doc.Query(".hero-h1 em"))
	assert.Equal(t, "line one\nline two", dom.TextContent(doc.Query(SelHeroSub)))

	cta := doc.Query(SelHeroCTA)
	assert.Equal(t, "Join us", dom.TextContent(cta))
	assert.Equal(t, safeurl.Placeholder, attr(cta, "href"))
}

func TestHeroMissingFields(t *testing.T) {
	doc := parse(t, `<body><h1 class="hero-h1">x</h1></body>`)
	newRenderer().RenderHero(doc, &siteconfig.HeroContent{Headline: "H", CTAText: "c"})
	assert.Equal(t, "H", dom.TextContent(doc.Query(SelHeroHeadline)))
}

func TestSponsors(t *testing.T) {
	doc := parse(t, shell)
	r := newRenderer()
	sponsors := []siteconfig.Sponsor{
		{Name: "Acme", Image: "img/acme.png", Link: "https://acme.example"},
		{Name: "Evil", Image: "data:image/svg+xml,<svg/>", Link: "JAVASCRIPT:x"},
	}

	r.RenderSponsors(doc, sponsors)
	r.RenderSponsors(doc, sponsors)

	cards := dom.Children(doc.Query(SelSponsorGrid))
	require.Len(t, cards, 2)
	img := cards[0].FirstChild
	assert.Equal(t, "img/acme.png", attr(img, "src"))
	assert.Equal(t, "Acme", attr(img, "alt"))
	a := img.NextSibling
	assert.Equal(t, VisitPartnerLabel, dom.TextContent(a))
	assert.Equal(t, "https://acme.example", attr(a, "href"))
	assert.Equal(t, "_blank", attr(a, "target"))
	assert.Equal(t, "noopener noreferrer", attr(a, "rel"))

	assert.Equal(t, safeurl.Placeholder, attr(cards[1].FirstChild, "src"))
	assert.Equal(t, safeurl.Placeholder, attr(cards[1].FirstChild.NextSibling, "href"))
}

func TestFooter(t *testing.T) {
	doc := parse(t, shell)
	r := newRenderer()
	require.True(t, r.RenderFooter(doc, &siteconfig.FooterContent{
		Socials:   []siteconfig.Social{{URL: "https://instagram.com/club"}, {URL: "https://ignored.example"}},
		Copyright: "2024 Club",
	}))

	footer := doc.Query(SelFooter)
	as := links(footer)
	require.Len(t, as, 1)
	assert.Equal(t, "https://instagram.com/club", attr(as[0], "href"))
	assert.Equal(t, siteconfig.DefaultSocialLabel, dom.TextContent(as[0]))
	assert.Equal(t, "noopener noreferrer", attr(as[0], "rel"))
	assert.Contains(t, dom.TextContent(footer), "© 2024 Club")
	assert.NotContains(t, dom.TextContent(footer), "static footer")
}

func TestFooterWithoutSocials(t *testing.T) {
	doc := parse(t, shell)
	require.NotPanics(t, func() {
		newRenderer().RenderFooter(doc, &siteconfig.FooterContent{Socials: []siteconfig.Social{}, Copyright: "2024"})
	})
	footer := doc.Query(SelFooter)
	assert.Empty(t, links(footer))
	assert.Equal(t, "© 2024", dom.TextContent(footer))
}

func TestFooterNilKeepsStatic(t *testing.T) {
	doc := parse(t, shell)
	assert.False(t, newRenderer().RenderFooter(doc, nil))
	assert.Equal(t, "static footer", dom.TextContent(doc.Query(SelFooter)))
}

func TestTransition(t *testing.T) {
	tests := []struct {
		from MenuState
		ev   MenuEvent
		want MenuState
	}{
		{MenuClosed, ToggleActivated, MenuOpen},
		{MenuOpen, ToggleActivated, MenuClosed},
		{MenuClosed, OutsideActivated, MenuClosed},
		{MenuOpen, OutsideActivated, MenuClosed},
		{MenuClosed, LinkActivated, MenuClosed},
		{MenuOpen, LinkActivated, MenuClosed},
	}
	for _, tt := range tests {
		if got := Transition(tt.from, tt.ev); got != tt.want {
			t.Errorf("Transition(%v, %d) = %v, want %v", tt.from, tt.ev, got, tt.want)
		}
	}
}

func navItems() []siteconfig.NavItem {
	return []siteconfig.NavItem{
		{URL: "index.html", Label: "Home"},
		{URL: "https://apply.example", Label: "Apply", Type: siteconfig.NavCTA},
	}
}

func TestMobileMenuBuildsPanel(t *testing.T) {
	doc := parse(t, shell)
	d := newRenderer().RenderMobileMenu(doc, navItems())
	require.NotNil(t, d)

	panels := doc.QueryAll(SelMobilePanel)
	require.Len(t, panels, 1)
	assert.Equal(t, doc.Body(), panels[0].Parent)
	as := links(panels[0])
	require.Len(t, as, 2)
	assert.False(t, dom.HasClass(as[0], "active"))
	assert.Equal(t, MenuClosed, d.State())
}

func TestMobileMenuNoToggle(t *testing.T) {
	doc := parse(t, `<body><ul class="nav-links"></ul></body>`)
	assert.Nil(t, newRenderer().RenderMobileMenu(doc, navItems()))
	assert.Nil(t, doc.Query(SelMobilePanel))
}

func TestMobileMenuToggleLocksScroll(t *testing.T) {
	doc := parse(t, shell)
	d := newRenderer().RenderMobileMenu(doc, navItems())
	toggleBar := doc.Query(".mobile-toggle .bar")

	doc.Dispatch(dom.Click, toggleBar)
	assert.Equal(t, MenuOpen, d.State())
	assert.True(t, dom.HasClass(d.Panel(), "active"))
	assert.Equal(t, "hidden", dom.Style(doc.Body(), "overflow"))

	doc.Dispatch(dom.Click, toggleBar)
	assert.Equal(t, MenuClosed, d.State())
	assert.False(t, dom.HasClass(d.Panel(), "active"))
	assert.Equal(t, "", dom.Style(doc.Body(), "overflow"))
}

func TestMobileMenuOutsideActivation(t *testing.T) {
	doc := parse(t, shell)
	d := newRenderer().RenderMobileMenu(doc, navItems())
	outside := doc.Query(".outside")

	doc.Dispatch(dom.Click, outside)
	assert.Equal(t, MenuClosed, d.State(), "closed drawer ignores outside activation")
	assert.Equal(t, "", dom.Style(doc.Body(), "overflow"))

	d.Toggle()
	require.Equal(t, MenuOpen, d.State())

	doc.Dispatch(dom.Click, d.Panel())
	assert.Equal(t, MenuOpen, d.State(), "activation inside the panel keeps it open")

	doc.Dispatch(dom.Click, outside)
	assert.Equal(t, MenuClosed, d.State())
	assert.Equal(t, "", dom.Style(doc.Body(), "overflow"))
}

func TestMobileMenuLinkCloses(t *testing.T) {
	doc := parse(t, shell)
	d := newRenderer().RenderMobileMenu(doc, navItems())
	link := links(d.Panel())[0]

	doc.Dispatch(dom.Click, link)
	assert.Equal(t, MenuClosed, d.State())

	d.Toggle()
	doc.Dispatch(dom.Click, link.FirstChild)
	assert.Equal(t, MenuClosed, d.State())
	assert.Equal(t, "", dom.Style(doc.Body(), "overflow"))
}

func TestMobileMenuRerenderReleasesPrevious(t *testing.T) {
	doc := parse(t, shell)
	r := newRenderer()

	first := r.RenderMobileMenu(doc, navItems())
	first.Toggle()
	listeners := doc.ListenerCount()

	second := r.RenderMobileMenu(doc, navItems()[:1])
	assert.Len(t, doc.QueryAll(SelMobilePanel), 1)
	assert.Equal(t, MenuClosed, first.State())
	assert.Equal(t, "", dom.Style(doc.Body(), "overflow"))
	assert.Equal(t, listeners-1, doc.ListenerCount())

	doc.Dispatch(dom.Click, doc.Query(SelMobileToggle))
	assert.Equal(t, MenuOpen, second.State())
	assert.Equal(t, MenuClosed, first.State())

	second.Release()
	assert.Equal(t, 0, doc.ListenerCount())
	assert.Equal(t, "", dom.Style(doc.Body(), "overflow"))
}

func TestNewsRendersItems(t *testing.T) {
	doc := parse(t, shell)
	items := []newsfeed.Item{
		{Title: "First", Link: "https://news.example/1"},
		{Title: "Second", Link: "data:text/html,x"},
	}
	require.True(t, newRenderer().RenderNews(doc, items, nil))

	panel := doc.Query(SelNewsFeed)
	as := links(panel)
	require.Len(t, as, 2)
	assert.Equal(t, "First "+Arrow, dom.TextContent(as[0]))
	assert.Equal(t, "_blank", attr(as[0], "target"))
	assert.Equal(t, safeurl.Placeholder, attr(as[1], "href"))
	assert.NotContains(t, dom.TextContent(panel), "loading")
}

func TestNewsEmptyShowsNotice(t *testing.T) {
	doc := parse(t, shell)
	newRenderer().RenderNews(doc, []newsfeed.Item{}, nil)

	panel := doc.Query(SelNewsFeed)
	children := dom.Children(panel)
	require.Len(t, children, 1)
	assert.Equal(t, "p", children[0].Data)
	assert.Equal(t, UnavailableNotice, dom.TextContent(panel))
	assert.Nil(t, doc.Query(".news-feed ul"))
}

func TestNewsErrorShowsNotice(t *testing.T) {
	doc := parse(t, shell)
	r := newRenderer()
	r.RenderNews(doc, []newsfeed.Item{{Title: "stale", Link: "x"}}, nil)
	r.RenderNews(doc, []newsfeed.Item{{Title: "partial", Link: "x"}}, errors.New("boom"))

	assert.Equal(t, UnavailableNotice, dom.TextContent(doc.Query(SelNewsFeed)))
}

func TestInitCarousel(t *testing.T) {
	doc := parse(t, shell)
	ok, err := InitCarousel(doc, DefaultCarouselOptions())
	require.NoError(t, err)
	assert.True(t, ok)

	opts := attr(doc.Query(SelCarousel), "data-carousel-options")
	assert.Contains(t, opts, `"slidesPerView":1`)
	assert.Contains(t, opts, `"loop":true`)
	assert.Contains(t, opts, `"1024":{"slidesPerView":3,"spaceBetween":40}`)
}

func TestInitCarouselWithoutLibrary(t *testing.T) {
	doc := parse(t, strings.Replace(shell, "https://cdn.jsdelivr.net/npm/swiper@11/swiper-bundle.min.js", "/js/slider.js", 1))

	ok, err := InitCarousel(doc, DefaultCarouselOptions())
	assert.ErrorIs(t, err, ErrCarouselLibraryMissing)
	assert.False(t, ok)
	_, hasOpts := dom.GetAttr(doc.Query(SelCarousel), "data-carousel-options")
	assert.False(t, hasOpts)
}

func TestInitCarouselWithoutMount(t *testing.T) {
	ok, err := InitCarousel(parse(t, `<body></body>`), DefaultCarouselOptions())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestClientScriptBindsDrawerAndCarousel(t *testing.T) {
	doc := parse(t, shell)
	r := newRenderer()
	require.NotNil(t, r.RenderMobileMenu(doc, []siteconfig.NavItem{{URL: "a.html", Label: "A"}}))
	_, err := InitCarousel(doc, DefaultCarouselOptions())
	require.NoError(t, err)

	assert.True(t, RenderClientScript(doc))
	assert.True(t, RenderClientScript(doc))

	scripts := doc.QueryAll("script[" + ClientScriptAttr + "]")
	require.Len(t, scripts, 1)
	assert.Same(t, doc.Body().LastChild, scripts[0])

	out := doc.String()
	assert.Contains(t, out, "new Swiper(mount.dataset.carousel, JSON.parse(mount.dataset.carouselOptions))")
	assert.Contains(t, out, `document.querySelector(".mobile-toggle")`)
	assert.Contains(t, out, `document.body.style.overflow = open ? "hidden" : ""`)
	assert.NotContains(t, out, "&amp;&amp;")
}

func TestClientScriptSkippedWithoutRegions(t *testing.T) {
	doc := parse(t, `<html><body><p>plain</p></body></html>`)
	assert.False(t, RenderClientScript(doc))
	assert.NotContains(t, doc.String(), ClientScriptAttr)
}
