package domain

import "strings"

// Location is a concrete path plus raw query, as supplied by a history provider.
type Location struct {
	Path     string `json:"path"`
	RawQuery string `json:"query,omitempty"`
}

// ParseLocation splits a URL such as "/user/Alice?tab=posts" into path and query.
// Fragments are discarded.
func ParseLocation(url string) Location {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	path, query, _ := strings.Cut(url, "?")
	return Location{Path: path, RawQuery: query}
}

// String joins path and query back into a URL.
func (l Location) String() string {
	if l.RawQuery == "" {
		return l.Path
	}
	return l.Path + "?" + l.RawQuery
}
