/*
Package ports defines the driven ports (interfaces) of the voie engine.

These interfaces decouple the state engine from the collaborators it consumes,
so the core never touches a browser, a terminal or a view toolkit directly.

# Key Interfaces

  - History: supplies the current location and receives formatted URLs.
  - Renderer: mounts a view for a committed context and disposes it on teardown.
  - DefinitionLoader: produces state specs from an external source (files, memory).
*/
package ports
