package views

// Site carries the site-wide values the fallback pages need.
type Site struct {
	Name string // SiteConfig.Name
	URL  string // canonical home link
}
