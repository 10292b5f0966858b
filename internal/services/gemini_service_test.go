package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"quota exhausted", errors.New("googleapi: Error 429: quota exceeded for model"), true},
		{"service unavailable", errors.New("rpc error: code 503 Service Unavailable"), true},
		{"timeout", errors.New("context deadline exceeded: request timeout"), true},
		{"connection reset", errors.New("read tcp: connection reset by peer"), true},
		{"invalid api key", errors.New("API key not valid. Please pass a valid API key"), false},
		{"bad request", errors.New("invalid argument: contents must not be empty"), false},
		{"mixed case", errors.New("RATE LIMIT hit on upstream"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err))
		})
	}
}
