package pathmatch

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// EncodeQuery serializes params into a query string without the leading "?".
// Nil values and excluded keys are dropped, slices become repeated keys and
// keys are sorted.
func EncodeQuery(params map[string]any, exclude ...string) string {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	values := url.Values{}
	for key, value := range params {
		if skip[key] || value == nil {
			continue
		}
		for _, s := range toStrings(value) {
			values.Add(key, s)
		}
	}
	return values.Encode()
}

// ParseQuery parses a raw query (with or without "?"). A key occurring once maps
// to a string, a repeated key maps to a []string in original order. Keys named
// in lists always map to a []string, so one-element slices survive a round trip
// through EncodeQuery.
func ParseQuery(raw string, lists ...string) (map[string]any, error) {
	raw = strings.TrimPrefix(raw, "?")
	values, err := url.ParseQuery(raw)

	list := make(map[string]bool, len(lists))
	for _, name := range lists {
		list[name] = true
	}

	out := make(map[string]any, len(values))
	for key, vs := range values {
		if len(vs) == 1 && !list[key] {
			out[key] = vs[0]
			continue
		}
		out[key] = append([]string(nil), vs...)
	}
	if err != nil {
		return out, fmt.Errorf("parse query: %w", err)
	}
	return out, nil
}

// IsList reports whether value encodes as repeated query keys.
func IsList(value any) bool {
	rv := reflect.ValueOf(value)
	return (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8
}

func toStrings(value any) []string {
	if IsList(value) {
		rv := reflect.ValueOf(value)
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			if elem == nil {
				continue
			}
			out = append(out, stringify(elem))
		}
		return out
	}
	return []string{stringify(value)}
}

func stringify(value any) string {
	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return s
}
