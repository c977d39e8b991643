package openseadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseThrottle(t *testing.T) {
	tests := []struct {
		name          string
		detail        string
		wantSeconds   int
		wantThrottled bool
	}{
		{
			name:          "throttle com tempo informado",
			detail:        "Request was throttled. Expected available in 7 seconds.",
			wantSeconds:   7,
			wantThrottled: true,
		},
		{
			name:          "throttle no singular",
			detail:        "Request was throttled. Expected available in 1 second.",
			wantSeconds:   1,
			wantThrottled: true,
		},
		{
			name:          "throttle sem tempo usa o padrão",
			detail:        "Request was throttled.",
			wantSeconds:   DefaultRetryAfterSeconds,
			wantThrottled: true,
		},
		{
			name:          "tempo zero usa o padrão",
			detail:        "Request was throttled. Expected available in 0 seconds.",
			wantSeconds:   DefaultRetryAfterSeconds,
			wantThrottled: true,
		},
		{
			name:          "detail vazio",
			detail:        "",
			wantThrottled: false,
		},
		{
			name:          "outro erro da API",
			detail:        "Invalid API key",
			wantThrottled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seconds, throttled := ParseThrottle(tt.detail)
			assert.Equal(t, tt.wantThrottled, throttled)
			assert.Equal(t, tt.wantSeconds, seconds)
		})
	}
}
