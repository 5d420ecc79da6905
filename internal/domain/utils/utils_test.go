package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1999-05-21", "1999-05-21"},
		{"21-05-1999", "1999-05-21"},
		{"1999/05/21", "1999-05-21"},
		{"21/05/1999", "1999-05-21"},
		{"May 21, 1999", "May 21, 1999"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.in), "input %q", tt.in)
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		page, perPage int
		offset, limit int
	}{
		{0, 0, 0, 10},
		{1, 10, 0, 10},
		{2, 10, 10, 10},
		{3, 5, 10, 5},
		{-1, -5, 0, 1},
		{2, 1, 1, 1},
	}
	for _, tt := range tests {
		offset, limit := Pagination(tt.page, tt.perPage)
		assert.Equal(t, tt.offset, offset, "page=%d per_page=%d", tt.page, tt.perPage)
		assert.Equal(t, tt.limit, limit, "page=%d per_page=%d", tt.page, tt.perPage)
	}
}
