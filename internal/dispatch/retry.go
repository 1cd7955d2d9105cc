package dispatch

import (
	"math"
	"time"
)

// backoffBase is the exponent base for retry delays, in seconds.
const backoffBase = 2

// Decision is the outcome of the retry policy for one failed attempt:
// either re-enqueue after Delay, or settle the notification as failed.
type Decision struct {
	Retry bool
	Delay time.Duration
}

// RetryPolicy decides whether a failed delivery attempt is retried.
// It is a pure function of the attempt counter carried by the job queue;
// nothing about attempts is stored on the notification record.
type RetryPolicy struct {
	MaxRetries int
}

// Decide returns the next step after a failure on the given attempt.
// Attempts are zero-based, so delays grow 1s, 2s, 4s, ... until the ceiling.
func (p RetryPolicy) Decide(attempt int) Decision {
	if attempt >= p.MaxRetries {
		return Decision{}
	}

	delay := time.Duration(math.Pow(backoffBase, float64(attempt))) * time.Second

	return Decision{Retry: true, Delay: delay}
}
