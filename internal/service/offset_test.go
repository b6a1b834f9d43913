package service

import (
	"math"
	"testing"
)

func TestOffset(t *testing.T) {
	cases := []struct {
		page, pageSize int
		want           int
		ok             bool
	}{
		{1, 25, 0, true},
		{2, 25, 25, true},
		{3, 100, 200, true},
		{math.MaxInt, 1, math.MaxInt - 1, true},
		{math.MaxInt/2 + 1, 2, math.MaxInt - 1, true},
		{math.MaxInt, 2, 0, false},
		{math.MaxInt, 100, 0, false},
		{math.MaxInt/100 + 2, 100, 0, false},
		{0, 25, 0, false},
		{1, 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := offset(tc.page, tc.pageSize)
		if got != tc.want || ok != tc.ok {
			t.Errorf("offset(%d, %d) = (%d, %v); want (%d, %v)", tc.page, tc.pageSize, got, ok, tc.want, tc.ok)
		}
	}
}
