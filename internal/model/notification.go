package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a notification.
//
// Transitions only move forward: pending -> (sent | retrying | failed),
// retrying -> (sent | retrying | failed). Sent and failed are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusSent     Status = "sent"
	StatusRetrying Status = "retrying"
	StatusFailed   Status = "failed"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusSent || s == StatusFailed
}

// Channel is a delivery medium through which a notification reaches a user.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
	ChannelInApp Channel = "in_app"
)

// ParseChannel validates a raw channel name against the fixed channel set.
func ParseChannel(s string) (Channel, error) {
	switch c := Channel(s); c {
	case ChannelEmail, ChannelSMS, ChannelPush, ChannelInApp:
		return c, nil
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

// Notification represents a notification entity in the system.
type Notification struct {
	ID        uuid.UUID  `json:"id"`                // external identifier, stable across delivery attempts
	UserID    int64      `json:"user_id"`           // owning user
	Title     string     `json:"title"`             // short subject line
	Message   string     `json:"message"`           // body text
	Channels  []Channel  `json:"channels"`          // requested channels, order preserved, immutable after creation
	Status    Status     `json:"status"`            // current lifecycle state
	CreatedAt time.Time  `json:"created_at"`        // timestamp when the notification was created
	SentAt    *time.Time `json:"sent_at,omitempty"` // set if and only if status is "sent"
}
