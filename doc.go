/*
Package voie is a hierarchical, URL-addressable state engine.

An application is modelled as a tree of named states ("users", "users.list",
"users.show"). Each state may declare a path fragment, accepted params with
defaults, a redirect to a default sub-state, and enter/leave hooks. Navigation
between two states tears down the part of the active chain that is not shared
with the destination (leaf to root) and sets up the rest (root to leaf),
reusing common ancestors whose params did not change.

# Concept

The active chain is a linked list of Contexts, one per entered state, each
carrying params and data inherited from its parent. The Engine keeps a history
provider in sync with the leaf context: every navigation records the state URL,
and history changes (back, forward, external pushes) are matched back to a
state and navigated to.

# Usage

	eng, err := voie.New(
		voie.WithStates(
			domain.StateSpec{Name: "app", Path: "/"},
			domain.StateSpec{Name: "users", Parent: "app", Path: "users", Redirect: domain.RedirectTo("users.list")},
			domain.StateSpec{Name: "users.list", Path: "list"},
			domain.StateSpec{Name: "users.show", Path: "/user/:id", Enter: loadUser},
		),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Match the current location and follow history changes.
	if err := eng.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer eng.Stop()

	// Navigate programmatically.
	err = eng.Go(ctx, domain.Target{Name: "users.show", Params: domain.Params{"id": "42"}})

Only one transition runs at a time: calling Go while another is in flight
fails immediately with domain.ErrTransitionInProgress.
*/
package voie
