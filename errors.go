package dper

import (
	"fmt"
)

// ValidationError is returned when a record in a peer document is invalid.
// Value holds the offending literal as it appeared in the input.
type ValidationError struct {
	Peer   string
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Peer != "" {
		msg = fmt.Sprintf("peer '%s': %s", e.Peer, msg)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// DuplicateZoneError is returned when more than one peer defines the same zone.
type DuplicateZoneError struct {
	Zone   string
	First  string
	Second string
}

func (e *DuplicateZoneError) Error() string {
	return fmt.Sprintf("zone %s defined by both '%s' and '%s'", e.Zone, e.First, e.Second)
}

// HTTPStatusError is returned by the HTTP loader when the server responds with
// a status other than 2xx or 304.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("got unexpected status code %d from %s", e.StatusCode, e.URL)
}
