package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/voie/pkg/domain"
)

// ValidateStates follows every static redirect and reports dead targets and
// static redirect cycles. Dynamic redirects are only checkable at runtime and
// are skipped.
func ValidateStates(states []*domain.State) error {
	byName := make(map[string]*domain.State, len(states))
	for _, s := range states {
		byName[s.Name()] = s
	}

	var errors []string
	cycles := make(map[string]bool)

	for _, start := range states {
		visited := map[string]bool{start.Name(): true}
		chain := []string{start.Name()}
		current := start

		for {
			r := current.Redirect()
			if r.Kind() != domain.RedirectName && r.Kind() != domain.RedirectNamed {
				break
			}
			target := r.Name()
			next, ok := byName[target]
			if !ok {
				errors = append(errors, fmt.Sprintf("Missing redirect target: '%s' -> '%s'", current.Name(), target))
				break
			}
			if visited[target] {
				loop := append(chain[slices.Index(chain, target):], target)
				// Report each loop once, whichever state leads into it.
				key := loopKey(loop[:len(loop)-1])
				if !cycles[key] {
					cycles[key] = true
					errors = append(errors, fmt.Sprintf("Redirect cycle: %s", strings.Join(loop, " -> ")))
				}
				break
			}
			chain = append(chain, target)
			visited[target] = true
			current = next
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

func loopKey(names []string) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}
