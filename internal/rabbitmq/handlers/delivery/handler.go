package delivery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/dispatch"
	"github.com/notifyx/notifyx/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/delivery/mock.go -package=mocks
type dispatchEngine interface {
	Deliver(ctx context.Context, id uuid.UUID, attempt int) dispatch.Outcome
}

// Handler turns consumed queue jobs into dispatch engine invocations.
type Handler struct {
	engine dispatchEngine
}

func NewHandler(engine dispatchEngine) *Handler {
	return &Handler{
		engine: engine,
	}
}

// HandleJob waits out the job's backoff delay, then runs the delivery attempt.
func (h *Handler) HandleJob(ctx context.Context, job queue.DeliveryJob) {
	if wait := time.Until(job.NotBefore); wait > 0 {
		zlog.Logger.Info().Str("id", job.ID.String()).Dur("wait", wait).Msg("job delayed for backoff")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	outcome := h.engine.Deliver(ctx, job.ID, job.Attempt)

	zlog.Logger.Info().
		Str("id", job.ID.String()).
		Int("attempt", job.Attempt).
		Str("outcome", string(outcome)).
		Msg("delivery attempt finished")
}
