// Package dom is the thin mutable layer between region renderers and a parsed
// HTML page. A Document belongs to a single page view and must only be used
// from one goroutine.
package dom

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document wraps a parsed page with selector lookup, event dispatch and
// ownership of teardown callbacks.
type Document struct {
	root *html.Node
	body *html.Node

	listeners []*listener
	nextID    uint64
	owners    map[string]func()
}

// Parse reads an HTML page. Missing html/head/body elements are synthesized
// by the parser, so Body never returns nil for a parsed Document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{
		root:   root,
		body:   compile("body").MatchFirst(root),
		owners: make(map[string]func()),
	}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(bytes.NewBufferString(s))
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Body returns the body element.
func (d *Document) Body() *html.Node { return d.body }

// Query returns the first element matching selector, or nil when none does or
// the selector is invalid.
func (d *Document) Query(selector string) *html.Node {
	sel := compile(selector)
	if sel == nil {
		return nil
	}
	return sel.MatchFirst(d.root)
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) []*html.Node {
	sel := compile(selector)
	if sel == nil {
		return nil
	}
	return sel.MatchAll(d.root)
}

// Exists reports whether any element matches selector.
func (d *Document) Exists(selector string) bool {
	return d.Query(selector) != nil
}

// Render writes the serialized document. It makes a Document usable wherever
// a templ.Component is expected.
func (d *Document) Render(_ context.Context, w io.Writer) error {
	return html.Render(w, d.root)
}

// String serializes the document.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}
	return buf.String()
}

// Own registers release as the teardown for key. A previous owner of the same
// key is released first.
func (d *Document) Own(key string, release func()) {
	if prev, ok := d.owners[key]; ok {
		delete(d.owners, key)
		prev()
	}
	d.owners[key] = release
}

// Release tears down every owner and drops all listeners.
func (d *Document) Release() {
	owners := d.owners
	d.owners = make(map[string]func())
	for _, release := range owners {
		release()
	}
	d.listeners = nil
}

var selectors sync.Map // string -> cascadia.Selector

func compile(selector string) cascadia.Selector {
	if v, ok := selectors.Load(selector); ok {
		return v.(cascadia.Selector)
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	selectors.Store(selector, sel)
	return sel
}
