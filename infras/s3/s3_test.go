package s3

import (
	"testing"

	"tavola/config"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		key    string
		want   string
	}{
		{name: "plain", domain: "https://cdn.example.com", key: "calendars/BK1.ics", want: "https://cdn.example.com/calendars/BK1.ics"},
		{name: "trailing slash", domain: "https://cdn.example.com/", key: "reviews/a.png", want: "https://cdn.example.com/reviews/a.png"},
		{name: "leading slash key", domain: "https://cdn.example.com", key: "/reviews/a.png", want: "https://cdn.example.com/reviews/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicURL(tt.domain, tt.key))
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	assert.Nil(t, New(&config.Config{}, nil))
}
