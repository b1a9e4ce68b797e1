package ports

import "github.com/aretw0/voie/pkg/domain"

// History abstracts a browser-like location stack.
type History interface {
	// Location returns the current location.
	Location() domain.Location

	// Push appends url as a new entry and notifies listeners.
	Push(url string)

	// Replace swaps the current entry for url and notifies listeners.
	Replace(url string)

	// Listen registers fn for every location change (push, replace, back, forward).
	// It is not invoked for the location current at registration time.
	Listen(fn func(domain.Location)) (unlisten func())

	// CreateHref turns an application URL into a link target (base prefixes, hash routing).
	CreateHref(url string) string
}
