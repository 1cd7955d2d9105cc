package push

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/dispatch"
)

// Sender is a stub: push delivery is not wired to a provider yet.
// It accepts the call and performs no delivery.
//
// TODO: integrate FCM once device tokens are stored per user.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(_ context.Context, msg dispatch.Message) error {
	zlog.Logger.Info().
		Str("notification_id", msg.NotificationID.String()).
		Int64("user_id", msg.UserID).
		Msg("push channel is a no-op stub, nothing delivered")

	return nil
}
