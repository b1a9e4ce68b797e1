package pathmatch_test

import (
	"testing"

	"github.com/aretw0/voie/pkg/pathmatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuery(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]any
		exclude []string
		want    string
	}{
		{"Empty", nil, nil, ""},
		{"Scalars Sorted", map[string]any{"b": 2, "a": true}, nil, "a=true&b=2"},
		{"Nil Dropped", map[string]any{"a": nil, "b": "x"}, nil, "b=x"},
		{"Repeated Keys", map[string]any{"tags": []string{"one", "two"}}, nil, "tags=one&tags=two"},
		{"Any Slice", map[string]any{"ids": []any{1, nil, 3}}, nil, "ids=1&ids=3"},
		{"Empty Slice Dropped", map[string]any{"tags": []string{}}, nil, ""},
		{"Path Captures Stripped", map[string]any{"userName": "Alice", "collapsed": true}, []string{"userName"}, "collapsed=true"},
		{"Escaping", map[string]any{"q": "a b&c"}, nil, "q=a+b%26c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathmatch.EncodeQuery(tt.params, tt.exclude...))
		})
	}
}

func TestParseQuery(t *testing.T) {
	got, err := pathmatch.ParseQuery("?collapsed=true&section=any&tags=foo&tags=bar")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"collapsed": "true",
		"section":   "any",
		"tags":      []string{"foo", "bar"},
	}, got)

	_, err = pathmatch.ParseQuery("a=%zz")
	assert.Error(t, err)
}

func TestQuery_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
	}{
		{"Scalars And Slice", map[string]any{
			"collapsed": "false",
			"q":         "hello world",
			"tags":      []string{"z", "a", "m"},
		}},
		{"Single Element Slice", map[string]any{"tags": []string{"only"}, "q": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathmatch.ParseQuery(pathmatch.EncodeQuery(tt.params), "tags")
			require.NoError(t, err)
			assert.Equal(t, tt.params, got)
		})
	}
}

func TestParseQuery_ListKeys(t *testing.T) {
	got, err := pathmatch.ParseQuery("tags=only&q=x", "tags", "missing")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"tags": []string{"only"}, "q": "x"}, got)
}

func TestIsList(t *testing.T) {
	assert.True(t, pathmatch.IsList([]string{}))
	assert.True(t, pathmatch.IsList([]any{1}))
	assert.False(t, pathmatch.IsList("tags"))
	assert.False(t, pathmatch.IsList([]byte("raw")))
	assert.False(t, pathmatch.IsList(nil))
}
