// Package safeurl classifies hyperlink targets taken from site configuration
// and replaces unsafe ones with a neutral placeholder before they reach a page.
package safeurl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/labstack/gommon/log"
)

// Placeholder is written in place of any rejected URL.
const Placeholder = "#"

// Policy selects how candidates are judged.
type Policy int

const (
	// BlockList rejects the javascript:, data: and vbscript: schemes and keeps
	// everything else unchanged.
	BlockList Policy = iota
	// AllowList keeps relative URLs and URLs whose scheme is explicitly allowed.
	AllowList
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case BlockList:
		return "blocklist"
	case AllowList:
		return "allowlist"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a configuration value to a Policy. Empty means BlockList.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blocklist", "block":
		return BlockList, nil
	case "allowlist", "allow":
		return AllowList, nil
	}
	return BlockList, fmt.Errorf("safeurl: unknown policy %q", s)
}

// Logger receives a warning for every blocked URL.
type Logger interface {
	Warnf(format string, args ...interface{})
}

var (
	blockedScheme = regexp.MustCompile(`(?i)^[\s\x00-\x1f]*(?:javascript|data|vbscript):`)
	leadingScheme = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.\-]*):`)
	ignoredInURL  = strings.NewReplacer("\t", "", "\n", "", "\r", "")
)

// DefaultAllowedSchemes is the scheme set used by AllowList when none is given.
var DefaultAllowedSchemes = []string{"http", "https", "mailto", "tel"}

// Sanitizer applies one Policy. It is safe for concurrent use.
type Sanitizer struct {
	policy  Policy
	allowed map[string]struct{}
	log     Logger
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithPolicy selects the policy (default BlockList).
func WithPolicy(p Policy) Option {
	return func(s *Sanitizer) {
		s.policy = p
	}
}

// WithAllowedSchemes replaces the AllowList scheme set.
func WithAllowedSchemes(schemes ...string) Option {
	return func(s *Sanitizer) {
		s.allowed = schemeSet(schemes)
	}
}

// WithLogger sets the diagnostic sink for blocked URLs.
func WithLogger(l Logger) Option {
	return func(s *Sanitizer) {
		s.log = l
	}
}

// New creates a Sanitizer. Without options it uses the BlockList policy and
// logs through a gommon logger prefixed "safeurl".
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{
		policy:  BlockList,
		allowed: schemeSet(DefaultAllowedSchemes),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.New("safeurl")
	}
	return s
}

// Policy reports the active policy.
func (s *Sanitizer) Policy() Policy {
	return s.policy
}

// Sanitize returns candidate unchanged when it is acceptable under the active
// policy and Placeholder otherwise.
func (s *Sanitizer) Sanitize(candidate string) string {
	if s.allows(candidate) {
		return candidate
	}
	s.log.Warnf("blocked unsafe url %q", truncate(candidate, 64))
	return Placeholder
}

// SanitizeValue coerces v to text and sanitizes it. A nil value is the empty string.
func (s *Sanitizer) SanitizeValue(v interface{}) string {
	if v == nil {
		return s.Sanitize("")
	}
	if str, ok := v.(string); ok {
		return s.Sanitize(str)
	}
	return s.Sanitize(fmt.Sprint(v))
}

func (s *Sanitizer) allows(candidate string) bool {
	switch s.policy {
	case AllowList:
		m := leadingScheme.FindStringSubmatch(ignoredInURL.Replace(strings.TrimLeftFunc(candidate, isControlOrSpace)))
		if m == nil {
			return true
		}
		_, ok := s.allowed[strings.ToLower(m[1])]
		return ok
	default:
		return !blockedScheme.MatchString(candidate)
	}
}

var std = New()

// Sanitize applies the default BlockList sanitizer.
func Sanitize(candidate string) string {
	return std.Sanitize(candidate)
}

func schemeSet(schemes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(schemes))
	for _, sc := range schemes {
		sc = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(sc), ":"))
		if sc != "" {
			set[sc] = struct{}{}
		}
	}
	return set
}

func isControlOrSpace(r rune) bool {
	return r <= ' '
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
