/*
Package domain contains the core models of the voie state engine.

It defines the state tree and the runtime records built while navigating it.
The package is pure: no I/O, no history binding and no rendering, following the
hexagonal layout used by the rest of the module.

# Key Entities

  - State: a named node of the tree, with an optional path fragment, parameter
    defaults, a redirect and Enter/Leave/HandleError hooks.
  - Context: one entered state in the active chain, linked to its parent.
  - Redirect: a variant naming the next destination (name, name+params or func).
  - Transition: the read-only view of an in-flight navigation handed to redirect funcs.
*/
package domain
