package pagewire

import (
	"context"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/newsfeed"
	"github.com/eringen/pagewire/regions"
	"github.com/eringen/pagewire/siteconfig"
)

// Logger is the diagnostic sink shared by the controller. echo.Logger
// satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// ConfigLoader produces the page configuration for one page view.
type ConfigLoader interface {
	Load(ctx context.Context) (*siteconfig.PageConfig, error)
}

// Outcome records what happened during one page view. None of its errors
// prevent the page from being served.
type Outcome struct {
	Config      *siteconfig.PageConfig
	ConfigErr   error
	FeedErr     error
	CarouselErr error
	Drawer      *regions.Drawer
	Landing     bool
}

// Controller orchestrates a page view: configuration first, then the regions
// gated on it, with the carousel and the news feed handled independently.
type Controller struct {
	loader   ConfigLoader
	regions  *regions.Renderer
	feed     newsfeed.Source
	carousel regions.CarouselOptions
	log      Logger
}

// NewController creates a Controller. feed may be nil to leave the news panel
// untouched.
func NewController(loader ConfigLoader, r *regions.Renderer, feed newsfeed.Source, log Logger) *Controller {
	return &Controller{
		loader:   loader,
		regions:  r,
		feed:     feed,
		carousel: regions.DefaultCarouselOptions(),
		log:      log,
	}
}

// WithCarouselOptions replaces the options handed to the carousel library.
func (c *Controller) WithCarouselOptions(opts regions.CarouselOptions) *Controller {
	c.carousel = opts
	return c
}

type feedResult struct {
	items []newsfeed.Item
	err   error
}

// Start runs one page view against doc. The feed fetch runs concurrently with
// the configuration load; all document writes happen on the calling goroutine.
func (c *Controller) Start(ctx context.Context, doc *dom.Document, pagePath string) Outcome {
	var feedDone chan feedResult
	if c.feed != nil && doc.Exists(regions.SelNewsFeed) {
		feedDone = make(chan feedResult, 1)
		go func() {
			items, err := c.feed.Items(ctx)
			feedDone <- feedResult{items: items, err: err}
		}()
	}

	out := Outcome{Landing: doc.Exists(regions.SelHeroSection)}
	cfg, err := c.loader.Load(ctx)
	if err != nil {
		out.ConfigErr = err
	} else {
		out.Config = cfg
		c.renderConfig(doc, cfg, pagePath, &out)
	}

	if _, err := regions.InitCarousel(doc, c.carousel); err != nil {
		c.log.Warnf("carousel skipped: %v", err)
		out.CarouselErr = err
	}

	if feedDone != nil {
		res := <-feedDone
		if res.err != nil {
			c.log.Warnf("news feed unavailable: %v", res.err)
		}
		c.regions.RenderNews(doc, res.items, res.err)
		out.FeedErr = res.err
	}

	regions.RenderClientScript(doc)
	return out
}

func (c *Controller) renderConfig(doc *dom.Document, cfg *siteconfig.PageConfig, pagePath string, out *Outcome) {
	c.regions.RenderNavigation(doc, cfg.Navigation, pagePath)
	out.Drawer = c.regions.RenderMobileMenu(doc, cfg.Navigation)
	c.regions.RenderFooter(doc, cfg.Footer)

	if out.Landing {
		c.regions.RenderHero(doc, cfg.Hero)
		c.regions.RenderSponsors(doc, cfg.Sponsors)
	}
}
