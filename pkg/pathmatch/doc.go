/*
Package pathmatch compiles URL path patterns into matchers and formatters.

A pattern is a slash-separated list of segments. A segment is either a literal
("users"), a named capture (":id") or an optional named capture (":tab?").

	p, err := pathmatch.Compile("/user/:name/:tab?")
	params, ok := p.Match("/user/Alice")      // {"name": "Alice"}, true
	path, err := p.Format(map[string]any{"name": "Bob", "tab": "posts"})
	// "/user/Bob/posts"

Query strings are handled separately by EncodeQuery and ParseQuery; path
captures never appear in an encoded query.
*/
package pathmatch
