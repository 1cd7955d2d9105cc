package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/model"
	"github.com/notifyx/notifyx/internal/rabbitmq/queue"
	notifrepo "github.com/notifyx/notifyx/internal/repository/notification"
	userrepo "github.com/notifyx/notifyx/internal/repository/user"
)

//go:generate mockgen -source=engine.go -destination=../mocks/dispatch/mock.go -package=mocks

type notificationStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
	UpdateStatusIfActive(ctx context.Context, id uuid.UUID, status model.Status) error
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
}

type userDirectory interface {
	GetByID(ctx context.Context, strategy retry.Strategy, id int64) (model.User, error)
}

type jobPublisher interface {
	Publish(job queue.DeliveryJob, strategy retry.Strategy) error
}

type metricsSink interface {
	ObserveDelivery(channel model.Channel, status string, elapsed time.Duration)
	IncPending()
	DecPending()
	Flush()
}

// Outcome is the result of one delivery attempt, as seen by the worker.
type Outcome string

const (
	OutcomeSent     Outcome = "sent"
	OutcomeRetrying Outcome = "retrying"
	OutcomeFailed   Outcome = "failed"
	OutcomeSkipped  Outcome = "skipped"   // record already terminal, duplicate job
	OutcomeNotFound Outcome = "not_found" // record missing, job acknowledged
)

// Engine executes delivery attempts: it loads the notification, fans out to
// every requested channel in order, and settles the lifecycle transition.
type Engine struct {
	store    notificationStore
	users    userDirectory
	senders  map[model.Channel]Sender
	queue    jobPublisher
	metrics  metricsSink
	policy   RetryPolicy
	strategy retry.Strategy
}

// NewEngine creates a dispatch engine over an explicit set of collaborators.
func NewEngine(
	store notificationStore,
	users userDirectory,
	senders map[model.Channel]Sender,
	q jobPublisher,
	metrics metricsSink,
	policy RetryPolicy,
	strategy retry.Strategy,
) *Engine {
	return &Engine{
		store:    store,
		users:    users,
		senders:  senders,
		queue:    q,
		metrics:  metrics,
		policy:   policy,
		strategy: strategy,
	}
}

// Deliver runs a single delivery attempt for the given notification.
//
// The record is re-read from the store on every attempt, so a duplicate job
// for an already settled notification becomes a no-op. The attempt counter is
// the one carried by the queue message, never the record.
func (e *Engine) Deliver(ctx context.Context, id uuid.UUID, attempt int) Outcome {
	n, err := e.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("notification not found, acknowledging job")
			// the job was counted when it was enqueued; settle the gauge
			// even though there is no record left to update
			e.metrics.DecPending()
			e.metrics.Flush()
			return OutcomeNotFound
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to load notification")
		return e.settleFailure(ctx, id, attempt)
	}

	if n.Status.IsTerminal() {
		zlog.Logger.Info().Str("id", id.String()).Str("status", string(n.Status)).Msg("notification already settled, skipping")
		return OutcomeSkipped
	}

	u, err := e.users.GetByID(ctx, e.strategy, n.UserID)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Int64("user_id", n.UserID).Msg("user not found, failing notification")
			e.markStatus(ctx, id, model.StatusFailed)
			e.metrics.DecPending()
			e.metrics.Flush()
			return OutcomeFailed
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to resolve user")
		return e.settleFailure(ctx, id, attempt)
	}

	if err := e.fanOut(ctx, n, u); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Int("attempt", attempt).Msg("delivery attempt failed")
		return e.settleFailure(ctx, id, attempt)
	}

	if err := e.store.MarkSent(ctx, id, time.Now().UTC()); err != nil {
		if errors.Is(err, notifrepo.ErrTerminalState) {
			zlog.Logger.Info().Str("id", id.String()).Msg("notification settled concurrently")
		} else {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification sent")
		}
	}

	e.metrics.DecPending()
	e.metrics.Flush()

	zlog.Logger.Info().Str("id", id.String()).Int("attempt", attempt).Msg("notification sent")

	return OutcomeSent
}

// fanOut attempts delivery over every requested channel in stored order.
// The first channel failure aborts the rest of the pass; channels that
// already succeeded are not undone.
func (e *Engine) fanOut(ctx context.Context, n model.Notification, u model.User) error {
	for _, ch := range n.Channels {
		sender, ok := e.senders[ch]
		if !ok {
			// fail closed instead of silently skipping: an unknown channel here
			// means creation-time validation let something through
			e.metrics.ObserveDelivery(ch, "failure", 0)
			return &ChannelError{Channel: ch, Err: errors.New("no sender registered")}
		}

		msg, err := render(n, u, ch)

		start := time.Now()
		if err == nil {
			err = sender.Send(ctx, msg)
		}
		elapsed := time.Since(start)

		if err != nil {
			e.metrics.ObserveDelivery(ch, "failure", elapsed)
			return &ChannelError{Channel: ch, Err: err}
		}

		e.metrics.ObserveDelivery(ch, "success", elapsed)
		zlog.Logger.Info().Str("id", n.ID.String()).Str("channel", string(ch)).Msg("channel delivery succeeded")
	}

	return nil
}

// settleFailure applies the retry policy after a failed attempt: either mark
// the record retrying and re-enqueue with backoff, or fail it for good.
// The attempt is over either way, so the in-flight gauge drops here; a retry
// bumps it back up once the follow-up job is actually enqueued.
func (e *Engine) settleFailure(ctx context.Context, id uuid.UUID, attempt int) Outcome {
	e.metrics.DecPending()
	e.metrics.Flush()

	decision := e.policy.Decide(attempt)

	if !decision.Retry {
		zlog.Logger.Warn().Str("id", id.String()).Int("attempt", attempt).Msg("retries exhausted, failing notification")
		e.markStatus(ctx, id, model.StatusFailed)
		return OutcomeFailed
	}

	e.markStatus(ctx, id, model.StatusRetrying)

	job := queue.DeliveryJob{
		ID:        id,
		Attempt:   attempt + 1,
		NotBefore: time.Now().Add(decision.Delay),
	}

	if err := e.queue.Publish(job, e.strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to re-enqueue delivery job")
		return OutcomeRetrying
	}

	e.metrics.IncPending()

	zlog.Logger.Info().Str("id", id.String()).Int("attempt", attempt).Dur("delay", decision.Delay).Msg("delivery re-enqueued")

	return OutcomeRetrying
}

func (e *Engine) markStatus(ctx context.Context, id uuid.UUID, status model.Status) {
	if err := e.store.UpdateStatusIfActive(ctx, id, status); err != nil {
		if errors.Is(err, notifrepo.ErrTerminalState) {
			zlog.Logger.Info().Str("id", id.String()).Msg("notification settled concurrently")
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Str("status", string(status)).Msg("failed to update notification status")
	}
}

// render builds the channel-specific message. A missing destination field is
// a delivery failure for that channel only, surfaced like any send error.
func render(n model.Notification, u model.User, ch model.Channel) (Message, error) {
	msg := Message{NotificationID: n.ID, UserID: n.UserID}

	switch ch {
	case model.ChannelEmail:
		if u.Email == "" {
			return Message{}, errors.New("user has no email address")
		}
		msg.To = u.Email
		msg.Subject = n.Title
		msg.Body = n.Title + "\n\n" + n.Message
	case model.ChannelSMS:
		if u.Phone == "" {
			return Message{}, errors.New("user has no phone number")
		}
		msg.To = u.Phone
		msg.Body = n.Title + "\n" + n.Message
	case model.ChannelPush, model.ChannelInApp:
		msg.Subject = n.Title
		msg.Body = n.Message
	default:
		return Message{}, errors.New("no rendering for channel")
	}

	return msg, nil
}
