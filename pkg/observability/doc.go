/*
Package observability provides tools for monitoring the voie engine.

It turns engine lifecycle events into Prometheus metrics and structured audit
logs, both exposed as domain.LifecycleHooks so they can be combined with
domain.Combine and passed to voie.WithLifecycleHooks.
*/
package observability
