package siteconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/gommon/log"
)

const (
	// DefaultPath is the configuration resource, relative to the page.
	DefaultPath = "data.json"
	// CacheBustParam carries the request timestamp so caches never answer.
	CacheBustParam = "v"

	defaultMaxBytes = 1 << 20
)

// Logger is the diagnostic sink for load failures.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// Loader retrieves and validates the configuration document. Each Load is a
// single attempt with no retry.
type Loader struct {
	client   *http.Client
	resource string
	base     *url.URL
	now      func() time.Time
	log      Logger
	maxBytes int64
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets the client used for the fetch (default http.DefaultClient).
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		l.client = c
	}
}

// WithBaseURL resolves a relative resource against base.
func WithBaseURL(base *url.URL) LoaderOption {
	return func(l *Loader) {
		l.base = base
	}
}

// WithClock replaces time.Now for the cache-busting parameter.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) {
		l.now = now
	}
}

// WithLogger sets the diagnostic sink.
func WithLogger(lg Logger) LoaderOption {
	return func(l *Loader) {
		l.log = lg
	}
}

// NewLoader creates a Loader for resource. An empty resource means DefaultPath.
func NewLoader(resource string, opts ...LoaderOption) *Loader {
	if resource == "" {
		resource = DefaultPath
	}
	l := &Loader{
		client:   http.DefaultClient,
		resource: resource,
		now:      time.Now,
		maxBytes: defaultMaxBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = log.New("siteconfig")
	}
	return l
}

// Load fetches, parses and validates the document. Any failure is reported to
// the logger and returned as a *FetchError, *ParseError or *ValidationError.
func (l *Loader) Load(ctx context.Context) (*PageConfig, error) {
	cfg, err := l.load(ctx)
	if err != nil {
		l.log.Errorf("Error loading config: %v", err)
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) load(ctx context.Context) (*PageConfig, error) {
	target, err := l.requestURL()
	if err != nil {
		return nil, &FetchError{URL: l.resource, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return nil, &FetchError{URL: target, StatusCode: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > l.maxBytes {
		return nil, &ParseError{Err: fmt.Errorf("document exceeds %d bytes", l.maxBytes)}
	}
	return Decode(bytes.NewReader(body))
}

// requestURL resolves the resource and appends the cache-busting parameter.
func (l *Loader) requestURL() (string, error) {
	u, err := url.Parse(l.resource)
	if err != nil {
		return "", err
	}
	if l.base != nil {
		u = l.base.ResolveReference(u)
	}
	q := u.Query()
	q.Set(CacheBustParam, strconv.FormatInt(l.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Decode parses and validates a configuration document from r.
func Decode(r io.Reader) (*PageConfig, error) {
	var cfg PageConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, &ParseError{Err: errTrailingData}
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var errTrailingData = errors.New("unexpected data after top-level value")

// Validate checks that the required top-level fields are present.
func Validate(cfg *PageConfig) error {
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.Navigation, validation.NotNil),
		validation.Field(&cfg.Hero, validation.NotNil),
	)
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return &ValidationError{Err: err}
	}
	fields := make([]string, 0, len(errs))
	for name := range errs {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return &ValidationError{Fields: fields, Err: err}
}
