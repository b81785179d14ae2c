package pagewire

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/regions"
	"github.com/eringen/pagewire/views"
)

// handleSite renders *.html page shells through the controller and serves
// every other path as a static asset from the site filesystem.
func (a *App) handleSite(c echo.Context) error {
	name, ok := sitePath(c.Param("*"))
	if !ok {
		return echo.ErrNotFound
	}
	if !isPage(name) {
		return echo.StaticFileHandler(name, a.site)(c)
	}

	doc, out, err := a.populate(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.ErrNotFound
		}
		return err
	}
	if out.ConfigErr != nil {
		c.Logger().Warnf("%s rendered from static markup: %v", name, out.ConfigErr)
	}
	return RenderDocument(c, doc)
}

// RenderPage populates the named page shell and writes the resulting markup
// to w, as a page view of /name would.
func (a *App) RenderPage(ctx context.Context, name string, w io.Writer) (Outcome, error) {
	doc, out, err := a.populate(ctx, name)
	if err != nil {
		return out, err
	}
	defer doc.Release()
	return out, doc.Render(ctx, w)
}

func (a *App) populate(ctx context.Context, name string) (*dom.Document, Outcome, error) {
	raw, err := a.Shells.Get(name)
	if err != nil {
		return nil, Outcome{}, err
	}
	doc, err := dom.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, Outcome{}, fmt.Errorf("pagewire: parse %s: %w", name, err)
	}
	return doc, a.Controller.Start(ctx, doc, "/"+name), nil
}

// sitePath maps a request wildcard to a clean, slash-free relative name.
// Directory paths resolve to their index page.
func sitePath(raw string) (string, bool) {
	name := path.Clean("/" + raw)
	if strings.HasSuffix(raw, "/") || name == "/" {
		name = path.Join(name, regions.HomePage)
	}
	name = strings.TrimPrefix(name, "/")
	if !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}

func isPage(name string) bool {
	return strings.EqualFold(path.Ext(name), ".html")
}

func (a *App) handleSitemap(c echo.Context) error {
	cfg, err := a.loader.Load(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "configuration unavailable").SetInternal(err)
	}
	return a.renderSitemap(c, cfg.Navigation)
}

// handleRobots generates robots.txt from the canonical site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", BuildURL(a.Config.URL, "sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) siteInfo() views.Site {
	return views.Site{Name: a.Config.Name, URL: a.Config.URL}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteInfo()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.siteInfo()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
