// Package pagewire serves a small marketing site whose navigation, hero,
// sponsors, footer and news panel are populated from a JSON configuration
// document on every page view.
//
// Page shells are plain HTML files. For each request pagewire parses the
// shell, loads the configuration, runs the region renderers against the
// parsed document and writes the result.
package pagewire

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/pagewire/newsfeed"
	"github.com/eringen/pagewire/regions"
	"github.com/eringen/pagewire/safeurl"
	"github.com/eringen/pagewire/siteconfig"
)

// App is the central pagewire application. It wires together the shell
// cache, configuration loader, region renderers, middleware and routes.
type App struct {
	Config     SiteConfig
	Echo       *echo.Echo
	Shells     *ShellCache
	Controller *Controller

	site         fs.FS
	urls         *safeurl.Sanitizer
	loader       *siteconfig.Loader
	feed         newsfeed.Source
	httpClient   *http.Client
	watcher      *fsnotify.Watcher
	customRoutes []func(*App)
}

// New creates a new pagewire App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:     cfg,
		Echo:       echo.New(),
		httpClient: http.DefaultClient,
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(log.INFO)

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup builds the site filesystem, loader, controller, middleware and
// routes without starting the server.
func (a *App) Setup() error {
	logger := a.Echo.Logger

	if a.Config.SiteDir != "" {
		info, err := os.Stat(a.Config.SiteDir)
		if err != nil {
			return fmt.Errorf("pagewire: site dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("pagewire: site dir %s is not a directory", a.Config.SiteDir)
		}
		a.site = os.DirFS(a.Config.SiteDir)
	} else {
		site, err := EmbeddedSite()
		if err != nil {
			return fmt.Errorf("pagewire: embedded site: %w", err)
		}
		a.site = site
	}

	policy, err := safeurl.ParsePolicy(a.Config.URLPolicy)
	if err != nil {
		return fmt.Errorf("pagewire: %w", err)
	}
	a.urls = safeurl.New(safeurl.WithPolicy(policy), safeurl.WithLogger(logger))

	loader, err := a.newLoader()
	if err != nil {
		return err
	}
	a.loader = loader

	if a.feed == nil && a.Config.FeedURL != "" {
		client := newsfeed.NewClient(a.Config.FeedURL,
			newsfeed.WithHTTPClient(a.httpClient),
			newsfeed.WithProxy(a.Config.FeedProxyURL),
			newsfeed.WithMode(newsfeed.Mode(a.Config.FeedMode)),
			newsfeed.WithLimit(a.Config.FeedLimit),
		)
		if a.Config.FeedCacheTTL > 0 {
			a.feed = newsfeed.NewCache(client, a.Config.FeedCacheTTL)
		} else {
			a.feed = client
		}
	}

	a.Shells = NewShellCache(a.site, a.Config.ShellCacheTTL)
	a.Controller = NewController(loader, regions.New(a.urls), a.feed, logger)

	if a.Config.Watch && a.Config.SiteDir != "" {
		w, err := watchSite(a.Config.SiteDir, a.Shells, logger)
		if err != nil {
			return fmt.Errorf("pagewire: watch: %w", err)
		}
		a.watcher = w
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// newLoader resolves the configuration resource either against the remote
// ConfigBaseURL or against the site filesystem through a file transport.
func (a *App) newLoader() (*siteconfig.Loader, error) {
	opts := []siteconfig.LoaderOption{siteconfig.WithLogger(a.Echo.Logger)}
	if a.Config.ConfigBaseURL != "" {
		base, err := url.Parse(a.Config.ConfigBaseURL)
		if err != nil {
			return nil, fmt.Errorf("pagewire: config base url: %w", err)
		}
		opts = append(opts, siteconfig.WithBaseURL(base), siteconfig.WithHTTPClient(a.httpClient))
	} else {
		opts = append(opts,
			siteconfig.WithBaseURL(&url.URL{Scheme: "file", Path: "/"}),
			siteconfig.WithHTTPClient(&http.Client{Transport: http.NewFileTransport(http.FS(a.site))}),
		)
	}
	return siteconfig.NewLoader(a.Config.ConfigPath, opts...), nil
}

// Start sets up the app and runs the server until it stops.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/healthz", handleHealth)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/*", a.handleSite)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.watcher != nil {
		a.watcher.Close()
	}
	return a.Echo.Close()
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
