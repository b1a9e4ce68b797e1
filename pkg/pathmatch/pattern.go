package pathmatch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

type segment struct {
	literal  string
	name     string
	optional bool
}

func (s segment) isParam() bool { return s.name != "" }

// Pattern is a compiled path pattern. It is immutable and safe for concurrent use.
type Pattern struct {
	raw      string
	segments []segment
	names    []string
}

// Compile parses pattern. A pattern not starting with "/" is treated as absolute anyway.
func Compile(pattern string) (*Pattern, error) {
	p := &Pattern{raw: pattern}
	seen := make(map[string]bool)

	for _, part := range split(pattern) {
		if !strings.HasPrefix(part, ":") {
			p.segments = append(p.segments, segment{literal: part})
			continue
		}

		name := strings.TrimPrefix(part, ":")
		optional := strings.HasSuffix(name, "?")
		name = strings.TrimSuffix(name, "?")

		if !validName(name) {
			return nil, &PatternError{Pattern: pattern, Reason: fmt.Sprintf("bad capture name in segment %q", part)}
		}
		if seen[name] {
			return nil, &PatternError{Pattern: pattern, Reason: fmt.Sprintf("duplicate capture %q", name)}
		}
		seen[name] = true

		p.segments = append(p.segments, segment{name: name, optional: optional})
		p.names = append(p.names, name)
	}
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source pattern.
func (p *Pattern) String() string { return p.raw }

// Names returns capture names in declaration order.
func (p *Pattern) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Match extracts captures from pathname. Values are unescaped but otherwise raw;
// an absent optional capture is not present in the result.
func (p *Pattern) Match(pathname string) (map[string]string, bool) {
	parts := split(pathname)
	params := make(map[string]string, len(p.names))
	if !p.match(parts, 0, 0, params) {
		return nil, false
	}
	return params, true
}

func (p *Pattern) match(parts []string, si, pi int, params map[string]string) bool {
	if si == len(p.segments) {
		return pi == len(parts)
	}
	seg := p.segments[si]

	if seg.optional {
		if pi < len(parts) {
			if value, err := url.PathUnescape(parts[pi]); err == nil {
				params[seg.name] = value
				if p.match(parts, si+1, pi+1, params) {
					return true
				}
				delete(params, seg.name)
			}
		}
		return p.match(parts, si+1, pi, params)
	}

	if pi >= len(parts) {
		return false
	}
	if !seg.isParam() {
		return parts[pi] == seg.literal && p.match(parts, si+1, pi+1, params)
	}

	value, err := url.PathUnescape(parts[pi])
	if err != nil {
		return false
	}
	params[seg.name] = value
	if p.match(parts, si+1, pi+1, params) {
		return true
	}
	delete(params, seg.name)
	return false
}

// Format serializes params into a concrete path. Keys that are not captures are ignored.
func (p *Pattern) Format(params map[string]any) (string, error) {
	var sb strings.Builder
	for _, seg := range p.segments {
		if !seg.isParam() {
			sb.WriteString("/")
			sb.WriteString(seg.literal)
			continue
		}

		value, ok := params[seg.name]
		s := ""
		if ok && value != nil {
			str, err := cast.ToStringE(value)
			if err != nil {
				str = fmt.Sprint(value)
			}
			s = str
		}
		if s == "" {
			if seg.optional {
				continue
			}
			return "", &MissingParamError{Pattern: p.raw, Name: seg.name}
		}
		sb.WriteString("/")
		sb.WriteString(url.PathEscape(s))
	}

	if sb.Len() == 0 {
		return "/", nil
	}
	return sb.String(), nil
}

// split breaks a path into non-empty segments, so "", "/" and "//" all yield none
// and a trailing slash is ignored.
func split(path string) []string {
	raw := strings.Split(path, "/")
	parts := make([]string, 0, len(raw))
	for _, r := range raw {
		if r != "" {
			parts = append(parts, r)
		}
	}
	return parts
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
