package pagewire

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments. Directory-like results get a
// trailing slash; paths ending in a file name do not.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if path.Ext(u.Path) == "" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// ResolveSiteURL resolves a navigation target against the canonical base. It
// reports false for targets on another host or with a non-http scheme.
func ResolveSiteURL(base, ref string) (string, bool) {
	b, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", false
	}
	if b.Path == "" {
		b.Path = "/"
	}
	u := b.ResolveReference(r)
	if u.Scheme != b.Scheme || u.Host != b.Host {
		return "", false
	}
	u.Fragment = ""
	return u.String(), true
}
