package pagewire

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pagewire/safeurl"
	"github.com/eringen/pagewire/siteconfig"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapURLs lists the canonical home page followed by every standard
// navigation target on this site, without duplicates. Call-to-action entries
// and blocked or external targets are left out.
func sitemapURLs(base string, nav []siteconfig.NavItem, sanitizer *safeurl.Sanitizer) []sitemapURL {
	home := BuildURL(base)
	seen := map[string]bool{home: true}
	urls := []sitemapURL{{Loc: home}}
	for _, item := range nav {
		if item.IsCTA() || sanitizer.Sanitize(item.URL) == safeurl.Placeholder {
			continue
		}
		loc, ok := ResolveSiteURL(base, item.URL)
		if !ok || seen[loc] {
			continue
		}
		seen[loc] = true
		urls = append(urls, sitemapURL{Loc: loc})
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context, nav []siteconfig.NavItem) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  sitemapURLs(a.Config.URL, nav, a.urls),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
