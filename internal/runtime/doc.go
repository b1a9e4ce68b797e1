// Package runtime implements the transition engine: the state registry, the
// Manager owning the active context chain, and the transition algorithm that
// tears down and sets up contexts between two states.
package runtime
