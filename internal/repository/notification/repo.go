package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/notifyx/notifyx/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoNotificationsFound = errors.New("no notifications found")

	// ErrTerminalState is returned when a conditional status update matched no
	// rows because the notification is already sent or failed. Duplicate queue
	// deliveries hit this path instead of overwriting a terminal status.
	ErrTerminalState = errors.New("notification already in terminal state")
)

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notification and returns its external identifier.
func (r *Repository) Create(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	channels, err := json.Marshal(n.Channels)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal channels: %w", err)
	}

	query := `
		INSERT INTO notifications (
		    notification_id, user_id, title, message, channels, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING notification_id;
    `

	id := uuid.New()
	err = r.db.Master.QueryRowContext(
		ctx, query, id, n.UserID, n.Title, n.Message, string(channels), model.StatusPending,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// GetByID retrieves a notification by its external identifier.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		SELECT notification_id, user_id, title, message, channels, status, created_at, sent_at
		FROM notifications
		WHERE notification_id = $1;
    `

	n, err := scanNotification(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetByUserID retrieves all notifications belonging to a user, newest first.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]model.Notification, error) {
	query := `
		SELECT notification_id, user_id, title, message, channels, status, created_at, sent_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if len(notifications) == 0 {
		return nil, ErrNoNotificationsFound
	}

	return notifications, nil
}

// UpdateStatusIfActive moves a notification to the given status unless it has
// already reached a terminal one. The condition closes the lost-update race
// between two workers holding duplicate deliveries of the same job.
func (r *Repository) UpdateStatusIfActive(ctx context.Context, id uuid.UUID, status model.Status) error {
	query := `
		UPDATE notifications
		SET status = $1
		WHERE notification_id = $2 AND status NOT IN ('sent', 'failed');
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTerminalState
	}

	return nil
}

// MarkSent settles a notification as delivered, recording the send timestamp.
// Like UpdateStatusIfActive, it is a no-op for terminal notifications.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	query := `
		UPDATE notifications
		SET status = 'sent', sent_at = $1
		WHERE notification_id = $2 AND status NOT IN ('sent', 'failed');
    `

	res, err := r.db.ExecContext(ctx, query, sentAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTerminalState
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(row rowScanner) (model.Notification, error) {
	var (
		n        model.Notification
		channels string
		sentAt   sql.NullTime
	)

	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &channels, &n.Status, &n.CreatedAt, &sentAt)
	if err != nil {
		return model.Notification{}, err
	}

	if err := json.Unmarshal([]byte(channels), &n.Channels); err != nil {
		return model.Notification{}, fmt.Errorf("unmarshal channels: %w", err)
	}

	if sentAt.Valid {
		n.SentAt = &sentAt.Time
	}

	return n, nil
}
