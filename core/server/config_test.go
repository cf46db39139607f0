package server_test

import (
	"testing"
	"time"

	"pseudo-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_VerifyCacheTTL(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"Default", 300, 5 * time.Minute},
		{"Zero disables caching", 0, 0},
		{"Negative disables caching", -1, 0},
		{"One second", 1, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{VerifyCacheSeconds: tt.seconds}
			assert.Equal(t, tt.want, c.VerifyCacheTTL())
		})
	}
}
