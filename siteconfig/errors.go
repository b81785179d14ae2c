package siteconfig

import (
	"fmt"
	"strings"
)

// FetchError reports a transport failure or a non-success response status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("siteconfig: fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("siteconfig: fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a body that is not a well-formed configuration document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("siteconfig: parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError lists the required top-level fields that were missing.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("siteconfig: missing required field(s): %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return e.Err }
