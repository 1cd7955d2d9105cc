// Package inapp publishes in-app notification events to a per-user Redis
// topic. Delivery is fire-and-forget: connected clients receive the event
// through the websocket relay, nobody acknowledges it.
package inapp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/notifyx/notifyx/internal/dispatch"
)

// Event is the payload published to a user's notification topic.
type Event struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	NotificationID string `json:"notification_id"`
}

// Topic returns the pub/sub topic carrying a user's in-app notifications.
func Topic(userID int64) string {
	return fmt.Sprintf("notifications:user:%d", userID)
}

// Sender publishes notification events over Redis pub/sub.
type Sender struct {
	rdb *redis.Client
}

func NewSender(rdb *redis.Client) *Sender {
	return &Sender{rdb: rdb}
}

func (s *Sender) Send(ctx context.Context, msg dispatch.Message) error {
	event := Event{
		Type:           "notification",
		Title:          msg.Subject,
		Message:        msg.Body,
		NotificationID: msg.NotificationID.String(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := s.rdb.Publish(ctx, Topic(msg.UserID), body).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}
