package domain_test

import (
	"testing"

	"github.com/aretw0/voie/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestParamsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"Same Strings", "a", "a", true},
		{"String And Int", "1", 1, true},
		{"String And Bool", "true", true, true},
		{"Different", "1", 2, false},
		{"Both Nil", nil, nil, true},
		{"Nil And Empty String", nil, "", false},
		{"Slices", []any{1, 2}, []string{"1", "2"}, true},
		{"Slice Order", []string{"1", "2"}, []string{"2", "1"}, false},
		{"Slice And Scalar", []string{"1"}, "1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParamsEqual(tt.a, tt.b))
		})
	}
}

func TestParams_Merge(t *testing.T) {
	base := domain.Params{"a": 1, "b": 2}
	got := base.Merge(domain.Params{"b": 3}, domain.Params{"c": 4})

	assert.Equal(t, domain.Params{"a": 1, "b": 3, "c": 4}, got)
	assert.Equal(t, domain.Params{"a": 1, "b": 2}, base, "receiver must not change")

	var empty domain.Params
	assert.NotNil(t, empty.Clone())
}

func TestParseLocation(t *testing.T) {
	loc := domain.ParseLocation("/user/Alice?tab=posts#top")
	assert.Equal(t, domain.Location{Path: "/user/Alice", RawQuery: "tab=posts"}, loc)
	assert.Equal(t, "/user/Alice?tab=posts", loc.String())
	assert.Equal(t, "/", domain.ParseLocation("/").String())
}
