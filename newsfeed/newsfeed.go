// Package newsfeed retrieves the latest syndicated items shown in the news
// panel, either through a feed-to-JSON proxy or straight from an RSS feed.
package newsfeed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

const (
	// DefaultProxyURL converts an RSS feed into {"status","items":[{title,link}]}.
	DefaultProxyURL = "https://api.rss2json.com/v1/api.json"
	// DefaultLimit is the number of items shown in the panel.
	DefaultLimit = 4

	maxBodyBytes = 2 << 20
)

// Mode selects how the feed is retrieved.
type Mode string

const (
	ModeProxy Mode = "proxy"
	ModeRSS   Mode = "rss"
)

var (
	// ErrStatus wraps a non-success response status.
	ErrStatus = errors.New("newsfeed: unexpected status")
	// ErrProxy is returned when the proxy reports a failure in its body.
	ErrProxy = errors.New("newsfeed: proxy error")
)

// Item is one feed entry. Title is plain text.
type Item struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Source yields the current feed items.
type Source interface {
	Items(ctx context.Context) ([]Item, error)
}

// Client fetches a fixed upstream feed. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	feedURL string
	proxy   string
	mode    Mode
	limit   int
	text    *bluemonday.Policy
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client (default http.DefaultClient).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithProxy sets the feed-to-JSON proxy endpoint.
func WithProxy(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.proxy = endpoint
		}
	}
}

// WithMode selects proxy or direct RSS retrieval.
func WithMode(m Mode) Option {
	return func(c *Client) {
		if m != "" {
			c.mode = m
		}
	}
}

// WithLimit bounds the number of returned items.
func WithLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limit = n
		}
	}
}

// NewClient creates a Client for the upstream feedURL.
func NewClient(feedURL string, opts ...Option) *Client {
	c := &Client{
		http:    http.DefaultClient,
		feedURL: feedURL,
		proxy:   DefaultProxyURL,
		mode:    ModeProxy,
		limit:   DefaultLimit,
		text:    bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Items performs one retrieval and returns at most the configured number of
// items, in feed order.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	var (
		items []Item
		err   error
	)
	switch c.mode {
	case ModeRSS:
		items, err = c.fetchRSS(ctx)
	default:
		items, err = c.fetchProxy(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]Item, 0, min(len(items), c.limit))
	for _, it := range items {
		if len(out) == c.limit {
			break
		}
		out = append(out, Item{Title: c.plainText(it.Title), Link: strings.TrimSpace(it.Link)})
	}
	return out, nil
}

type proxyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Items   []Item `json:"items"`
}

func (c *Client) proxyURL() (string, error) {
	u, err := url.Parse(c.proxy)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("rss_url", c.feedURL)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) fetchProxy(ctx context.Context) ([]Item, error) {
	target, err := c.proxyURL()
	if err != nil {
		return nil, fmt.Errorf("newsfeed: proxy url: %w", err)
	}
	body, err := c.get(ctx, target, "application/json")
	if err != nil {
		return nil, err
	}
	var resp proxyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("newsfeed: decode proxy response: %w", err)
	}
	if resp.Status != "" && resp.Status != "ok" {
		return nil, fmt.Errorf("%w: %s %s", ErrProxy, resp.Status, resp.Message)
	}
	return resp.Items, nil
}

func (c *Client) fetchRSS(ctx context.Context) ([]Item, error) {
	body, err := c.get(ctx, c.feedURL, "application/rss+xml, application/xml")
	if err != nil {
		return nil, err
	}
	var feed rssXML
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("newsfeed: decode rss: %w", err)
	}
	items := make([]Item, 0, len(feed.Channel.Items))
	for _, it := range feed.Channel.Items {
		items = append(items, Item{Title: it.Title, Link: it.Link})
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, target, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("newsfeed: build request: %w", err)
	}
	req.Header.Set("Accept", accept)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsfeed: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d from %s", ErrStatus, resp.StatusCode, target)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("newsfeed: read body: %w", err)
	}
	return body, nil
}

// plainText drops any markup a feed title carries.
func (c *Client) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(c.text.Sanitize(s)))
}
