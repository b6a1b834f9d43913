package repository

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	cases := []struct {
		name   string
		search string
		want   string
	}{
		{"empty matches everything", "", "%%"},
		{"plain", "ali", "%ali%"},
		{"quote stays literal", "' OR '1'='1", "%' OR '1'='1%"},
		{"percent escaped", "100%", "%100!%%"},
		{"underscore escaped", "a_b", "%a!_b%"},
		{"escape char doubled", "hey!", "%hey!!%"},
		{"backslash untouched", `a\b`, `%a\b%`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ContainsPattern(tc.search))
		})
	}
}

func TestPageNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Page
		want Page
	}{
		{"zero limit gets default", Page{Limit: 0, Offset: 0}, Page{Limit: DefaultLimit, Offset: 0}},
		{"negative limit gets default", Page{Limit: -5, Offset: 10}, Page{Limit: DefaultLimit, Offset: 10}},
		{"valid window untouched", Page{Limit: 100, Offset: 75}, Page{Limit: 100, Offset: 75}},
		{"huge offset untouched", Page{Limit: 1, Offset: math.MaxInt - 1}, Page{Limit: 1, Offset: math.MaxInt - 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPageNormalize_RejectsNegativeOffset(t *testing.T) {
	for _, off := range []int{-1, -3, math.MinInt} {
		_, err := Page{Limit: 10, Offset: off}.Normalize()
		assert.ErrorIs(t, err, ErrInvalidPage, "offset=%d", off)
	}
}
