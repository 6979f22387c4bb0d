package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Go 1.23 Released!", "go-1-23-released"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"already-a-slug", "already-a-slug"},
		{"ÀçcÉnts stripped", "c-nts-stripped"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.title))
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-06-13")
	assert.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	d, err = parseDate("2024-06-13T10:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = parseDate("13/06/2024")
	assert.Error(t, err)
}
