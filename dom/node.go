package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr builds an attribute for El.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// El builds a detached element.
func El(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// Text builds a detached text node. Its content is escaped on render.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// GetAttr returns the value of key on n.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets key on n, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes key from n.
func RemoveAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

func classes(n *html.Node) []string {
	v, _ := GetAttr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether n carries class c.
func HasClass(n *html.Node, c string) bool {
	for _, have := range classes(n) {
		if have == c {
			return true
		}
	}
	return false
}

// AddClass adds c to n once.
func AddClass(n *html.Node, c string) {
	if HasClass(n, c) {
		return
	}
	SetAttr(n, "class", strings.Join(append(classes(n), c), " "))
}

// RemoveClass drops c from n.
func RemoveClass(n *html.Node, c string) {
	var kept []string
	for _, have := range classes(n) {
		if have != c {
			kept = append(kept, have)
		}
	}
	if len(kept) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// ReplaceChildren detaches every child of n and appends children in order.
func ReplaceChildren(n *html.Node, children ...*html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		n.AppendChild(c)
	}
}

// SetText replaces the children of n with a single text node.
func SetText(n *html.Node, s string) {
	ReplaceChildren(n, Text(s))
}

// TextContent concatenates the text nodes below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return b.String()
}

// Remove detaches n from its parent.
func Remove(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Contains reports whether n is ancestor or one of its descendants.
func Contains(ancestor, n *html.Node) bool {
	if ancestor == nil {
		return false
	}
	for c := n; c != nil; c = c.Parent {
		if c == ancestor {
			return true
		}
	}
	return false
}

// Children returns the element children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Style returns the inline style value of prop on n.
func Style(n *html.Node, prop string) string {
	for _, decl := range styleDecls(n) {
		if decl[0] == prop {
			return decl[1]
		}
	}
	return ""
}

// SetStyle sets an inline style property. An empty value removes it.
func SetStyle(n *html.Node, prop, value string) {
	decls := styleDecls(n)
	var out []string
	found := false
	for _, decl := range decls {
		if decl[0] == prop {
			found = true
			if value == "" {
				continue
			}
			decl[1] = value
		}
		out = append(out, decl[0]+": "+decl[1])
	}
	if !found && value != "" {
		out = append(out, prop+": "+value)
	}
	if len(out) == 0 {
		RemoveAttr(n, "style")
		return
	}
	SetAttr(n, "style", strings.Join(out, "; "))
}

func styleDecls(n *html.Node) [][2]string {
	raw, _ := GetAttr(n, "style")
	var decls [][2]string
	for _, part := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		decls = append(decls, [2]string{k, strings.TrimSpace(v)})
	}
	return decls
}
