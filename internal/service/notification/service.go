package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/model"
	"github.com/notifyx/notifyx/internal/rabbitmq/queue"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type jobPublisher interface {
	Publish(job queue.DeliveryJob, strategy retry.Strategy) error
}

type notificationRepository interface {
	Create(context.Context, model.Notification) (uuid.UUID, error)
	GetByID(context.Context, uuid.UUID) (model.Notification, error)
	GetByUserID(context.Context, int64) ([]model.Notification, error)
}

type pendingGauge interface {
	IncPending()
}

// Service is the producer-facing surface: it persists notifications and hands
// them off to the asynchronous delivery pipeline.
type Service struct {
	repo    notificationRepository
	queue   jobPublisher
	metrics pendingGauge
}

func NewService(repo notificationRepository, queue jobPublisher, metrics pendingGauge) *Service {
	return &Service{repo: repo, queue: queue, metrics: metrics}
}

// Create persists the notification with status pending and enqueues the first
// delivery job. A publish failure is logged, not returned: the record exists
// and stays pending, delivery just never starts until it is re-enqueued.
func (s *Service) Create(ctx context.Context, strategy retry.Strategy, n model.Notification) (uuid.UUID, error) {
	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create notification: %w", err)
	}

	job := queue.DeliveryJob{ID: id, Attempt: 0}

	if err := s.queue.Publish(job, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish delivery job")
		return id, nil
	}

	s.metrics.IncPending()

	return id, nil
}

// GetByID returns the stored record, channels deserialized, latest committed
// status included.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

// GetByUserID returns all notifications owned by a user.
func (s *Service) GetByUserID(ctx context.Context, userID int64) ([]model.Notification, error) {
	notifications, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user notifications: %w", err)
	}

	return notifications, nil
}
