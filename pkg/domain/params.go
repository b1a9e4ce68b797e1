package domain

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Params maps parameter names to values. Values extracted from URLs are strings
// (or []string for repeated query keys); programmatic values may be any type.
type Params map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a copy of p overridden by each of others in order.
func (p Params) Merge(others ...Params) Params {
	out := p.Clone()
	for _, o := range others {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// NormalizeParam converts a value to its URL form: nil stays nil, slices become
// []string and any scalar becomes a string.
func NormalizeParam(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			if elem == nil {
				continue
			}
			out = append(out, toString(elem))
		}
		return out
	}
	return toString(v)
}

// ParamsEqual compares two values after normalization, so "1" equals 1 and
// []any{1, 2} equals []string{"1", "2"}.
func ParamsEqual(a, b any) bool {
	return reflect.DeepEqual(NormalizeParam(a), NormalizeParam(b))
}

func toString(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}
