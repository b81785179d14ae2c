package regions

import (
	"golang.org/x/net/html"

	"github.com/eringen/pagewire/dom"
	"github.com/eringen/pagewire/siteconfig"
)

// MenuState is the visibility of the mobile drawer.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// MenuEvent is an input to the drawer state machine.
type MenuEvent int

const (
	ToggleActivated MenuEvent = iota
	OutsideActivated
	LinkActivated
)

// Transition is the drawer state machine. Outside and link activations only
// ever close an open drawer.
func Transition(s MenuState, ev MenuEvent) MenuState {
	switch ev {
	case ToggleActivated:
		if s == MenuOpen {
			return MenuClosed
		}
		return MenuOpen
	case OutsideActivated, LinkActivated:
		return MenuClosed
	}
	return s
}

const menuOwner = "mobile-menu"

// MobilePanel builds the off-canvas panel holding one link per entry. Entries
// are never marked active.
func (r *Renderer) MobilePanel(items []siteconfig.NavItem) *html.Node {
	list := dom.El("ul", []html.Attribute{dom.Attr("class", "mobile-drawer-list")})
	for _, item := range items {
		var a *html.Node
		if item.IsCTA() {
			a = r.externalLink(item.URL, "mobile-cta", dom.Text(item.Label))
		} else {
			a = dom.El("a", []html.Attribute{dom.Attr("href", r.URL(item.URL))}, dom.Text(item.Label))
		}
		list.AppendChild(dom.El("li", nil, a))
	}
	return dom.El("div", []html.Attribute{dom.Attr("class", "mobile-nav-panel")}, list)
}

// RenderMobileMenu appends the drawer panel to the body and wires the toggle,
// link and outside activations. It returns nil when the page has no toggle
// control. Rendering again replaces the panel and releases the previous
// drawer's subscriptions.
func (r *Renderer) RenderMobileMenu(doc *dom.Document, items []siteconfig.NavItem) *Drawer {
	toggle := doc.Query(SelMobileToggle)
	if toggle == nil {
		return nil
	}
	for _, old := range doc.QueryAll(SelMobilePanel) {
		dom.Remove(old)
	}

	d := &Drawer{
		doc:    doc,
		panel:  r.MobilePanel(items),
		toggle: toggle,
	}
	doc.Own(menuOwner, d.Release)
	doc.Body().AppendChild(d.panel)

	for _, li := range dom.Children(d.panel.FirstChild) {
		link := li.FirstChild
		d.cancels = append(d.cancels, doc.Listen(link, dom.Click, func(*dom.Event) {
			d.apply(LinkActivated)
		}))
	}
	d.cancels = append(d.cancels,
		doc.Listen(toggle, dom.Click, func(e *dom.Event) {
			e.StopPropagation()
			d.apply(ToggleActivated)
		}),
		doc.Listen(nil, dom.Click, func(e *dom.Event) {
			if dom.Contains(d.panel, e.Target) || dom.Contains(d.toggle, e.Target) {
				return
			}
			d.apply(OutsideActivated)
		}),
	)
	return d
}

// Drawer is a rendered mobile menu bound to one document.
type Drawer struct {
	doc      *dom.Document
	panel    *html.Node
	toggle   *html.Node
	state    MenuState
	cancels  []func()
	released bool
}

// State returns the current visibility.
func (d *Drawer) State() MenuState { return d.state }

// Panel returns the panel element.
func (d *Drawer) Panel() *html.Node { return d.panel }

// Toggle flips the drawer as a toggle activation would.
func (d *Drawer) Toggle() { d.apply(ToggleActivated) }

// Close closes an open drawer.
func (d *Drawer) Close() { d.apply(LinkActivated) }

func (d *Drawer) apply(ev MenuEvent) {
	next := Transition(d.state, ev)
	if next == d.state {
		return
	}
	d.state = next
	body := d.doc.Body()
	if next == MenuOpen {
		dom.AddClass(d.panel, "active")
		dom.SetStyle(body, "overflow", "hidden")
		return
	}
	dom.RemoveClass(d.panel, "active")
	dom.SetStyle(body, "overflow", "")
}

// Release closes the drawer and removes its subscriptions. It is idempotent.
func (d *Drawer) Release() {
	if d.released {
		return
	}
	d.Close()
	d.released = true
	for _, cancel := range d.cancels {
		cancel()
	}
	d.cancels = nil
}
