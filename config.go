package pagewire

import (
	"net/http"
	"time"

	"github.com/eringen/pagewire/newsfeed"
	"github.com/eringen/pagewire/siteconfig"
)

// SiteConfig holds all configuration for a pagewire site.
type SiteConfig struct {
	Name string // Site name used on error pages (default "Site")
	URL  string // Canonical URL for the sitemap (default "http://localhost:3000")
	Addr string // Listen address (default ":3000")

	SiteDir       string // Page shells and assets; empty serves the embedded sample site
	ConfigPath    string // Configuration resource (default "data.json")
	ConfigBaseURL string // Resolve ConfigPath against this URL instead of SiteDir

	FeedURL      string        // Upstream RSS feed; empty disables the news panel
	FeedProxyURL string        // Feed-to-JSON proxy (default rss2json)
	FeedMode     string        // "proxy" (default) or "rss"
	FeedLimit    int           // Items shown (default 4)
	FeedCacheTTL time.Duration // Feed cache TTL (default 5min, negative disables)

	URLPolicy string // "blocklist" (default) or "allowlist"

	ShellCacheTTL time.Duration // Page shell cache TTL (default 1min)
	Watch         bool          // Invalidate the shell cache on SiteDir changes
	RateLimit     float64       // Page requests per second per client, 0 disables
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Site"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ConfigPath == "" {
		c.ConfigPath = siteconfig.DefaultPath
	}
	if c.FeedProxyURL == "" {
		c.FeedProxyURL = newsfeed.DefaultProxyURL
	}
	if c.FeedMode == "" {
		c.FeedMode = string(newsfeed.ModeProxy)
	}
	if c.FeedLimit <= 0 {
		c.FeedLimit = newsfeed.DefaultLimit
	}
	if c.FeedCacheTTL == 0 {
		c.FeedCacheTTL = 5 * time.Minute
	}
	if c.ShellCacheTTL == 0 {
		c.ShellCacheTTL = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithHTTPClient sets the client used for outbound fetches (remote
// configuration and the news feed).
func WithHTTPClient(c *http.Client) Option {
	return func(a *App) {
		a.httpClient = c
	}
}

// WithFeedSource replaces the news feed source built from the configuration.
func WithFeedSource(src newsfeed.Source) Option {
	return func(a *App) {
		a.feed = src
	}
}
