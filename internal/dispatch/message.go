package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/notifyx/notifyx/internal/model"
)

// Message is the rendered, channel-specific payload handed to a sender.
// To is empty for channels addressed by user id rather than a destination
// field (push, in_app).
type Message struct {
	NotificationID uuid.UUID
	UserID         int64
	To             string
	Subject        string
	Body           string
}

// Sender attempts delivery of a rendered message over one channel.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// ChannelError reports which channel a delivery attempt died on.
type ChannelError struct {
	Channel model.Channel
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("channel %s: %v", e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}
