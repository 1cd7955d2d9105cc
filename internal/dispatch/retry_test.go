package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Decide_Backoff(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 5}

	tests := []struct {
		attempt int
		retry   bool
		delay   time.Duration
	}{
		{attempt: 0, retry: true, delay: 1 * time.Second},
		{attempt: 1, retry: true, delay: 2 * time.Second},
		{attempt: 2, retry: true, delay: 4 * time.Second},
		{attempt: 3, retry: true, delay: 8 * time.Second},
		{attempt: 4, retry: true, delay: 16 * time.Second},
		{attempt: 5, retry: false},
		{attempt: 6, retry: false},
	}

	for _, tt := range tests {
		d := policy.Decide(tt.attempt)
		assert.Equal(t, tt.retry, d.Retry, "attempt %d", tt.attempt)
		assert.Equal(t, tt.delay, d.Delay, "attempt %d", tt.attempt)
	}
}

func TestRetryPolicy_Decide_ZeroMaxRetries(t *testing.T) {
	policy := RetryPolicy{MaxRetries: 0}

	d := policy.Decide(0)
	assert.False(t, d.Retry)
	assert.Zero(t, d.Delay)
}
