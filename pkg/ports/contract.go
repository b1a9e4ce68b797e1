package ports

import (
	"sync"
	"testing"

	"github.com/aretw0/voie/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunHistoryContract runs a suite of tests to verify that a History implementation
// adheres to the defined interface contract. newHistory must return a fresh
// history positioned at "/".
func RunHistoryContract(t *testing.T, newHistory func() History) {
	t.Run("Push Updates Location", func(t *testing.T) {
		h := newHistory()
		h.Push("/users/list?page=2")

		loc := h.Location()
		assert.Equal(t, "/users/list", loc.Path)
		assert.Equal(t, "page=2", loc.RawQuery)
	})

	t.Run("Replace Updates Location", func(t *testing.T) {
		h := newHistory()
		h.Push("/a")
		h.Replace("/b")
		assert.Equal(t, "/b", h.Location().Path)
	})

	t.Run("Listeners Notified", func(t *testing.T) {
		h := newHistory()

		var mu sync.Mutex
		var seen []string
		unlisten := h.Listen(func(loc domain.Location) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, loc.String())
		})

		h.Push("/one")
		h.Replace("/two?x=1")

		mu.Lock()
		assert.Equal(t, []string{"/one", "/two?x=1"}, seen)
		mu.Unlock()

		unlisten()
		h.Push("/three")

		mu.Lock()
		defer mu.Unlock()
		assert.Len(t, seen, 2, "no notifications after unlisten")
	})

	t.Run("CreateHref", func(t *testing.T) {
		h := newHistory()
		href := h.CreateHref("/users")
		require.NotEmpty(t, href)
		assert.Contains(t, href, "/users")
	})
}
