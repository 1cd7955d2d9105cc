package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/notifyx/notifyx/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	n := model.Notification{
		UserID:   42,
		Title:    "Order shipped",
		Message:  "Your order is on the way",
		Channels: []model.Channel{model.ChannelEmail, model.ChannelSMS},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notifications (
		    notification_id, user_id, title, message, channels, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING notification_id;
    `)).
		WithArgs(sqlmock.AnyArg(), n.UserID, n.Title, n.Message, `["email","sms"]`, string(model.StatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(notificationID))

	id, err := repo.Create(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	createdAt := time.Now()
	sentAt := createdAt.Add(time.Second)

	rows := sqlmock.NewRows([]string{
		"notification_id", "user_id", "title", "message", "channels", "status", "created_at", "sent_at",
	}).AddRow(id, int64(42), "Hi", "There", `["email"]`, "sent", createdAt, sentAt)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT notification_id, user_id, title, message, channels, status, created_at, sent_at
		FROM notifications
		WHERE notification_id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(rows)

	n, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, n.ID)
	assert.Equal(t, int64(42), n.UserID)
	assert.Equal(t, []model.Channel{model.ChannelEmail}, n.Channels)
	assert.Equal(t, model.StatusSent, n.Status)
	if assert.NotNil(t, n.SentAt) {
		assert.WithinDuration(t, sentAt, *n.SentAt, time.Millisecond)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT notification_id, user_id, title, message, channels, status, created_at, sent_at
		FROM notifications
		WHERE notification_id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"notification_id", "user_id", "title", "message", "channels", "status", "created_at", "sent_at",
		}))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID(t *testing.T) {
	repo, mock := setupMockDB(t)

	first := uuid.New()
	second := uuid.New()
	createdAt := time.Now()

	rows := sqlmock.NewRows([]string{
		"notification_id", "user_id", "title", "message", "channels", "status", "created_at", "sent_at",
	}).
		AddRow(first, int64(42), "Second", "Newest", `["push"]`, "pending", createdAt, nil).
		AddRow(second, int64(42), "First", "Oldest", `["in_app"]`, "failed", createdAt.Add(-time.Hour), nil)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT notification_id, user_id, title, message, channels, status, created_at, sent_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `)).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	notifications, err := repo.GetByUserID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Len(t, notifications, 2)
	assert.Equal(t, first, notifications[0].ID)
	assert.Nil(t, notifications[0].SentAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT notification_id, user_id, title, message, channels, status, created_at, sent_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC;
    `)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"notification_id", "user_id", "title", "message", "channels", "status", "created_at", "sent_at",
		}))

	_, err := repo.GetByUserID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNoNotificationsFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusIfActive(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = $1
		WHERE notification_id = $2 AND status NOT IN ('sent', 'failed');
    `)).
		WithArgs(string(model.StatusRetrying), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatusIfActive(context.Background(), id, model.StatusRetrying)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusIfActive_Terminal(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = $1
		WHERE notification_id = $2 AND status NOT IN ('sent', 'failed');
    `)).
		WithArgs(string(model.StatusFailed), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatusIfActive(context.Background(), id, model.StatusFailed)
	assert.ErrorIs(t, err, ErrTerminalState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSent(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	sentAt := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = 'sent', sent_at = $1
		WHERE notification_id = $2 AND status NOT IN ('sent', 'failed');
    `)).
		WithArgs(sentAt, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSent(context.Background(), id, sentAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSent_Terminal(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	sentAt := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = 'sent', sent_at = $1
		WHERE notification_id = $2 AND status NOT IN ('sent', 'failed');
    `)).
		WithArgs(sentAt, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), id, sentAt)
	assert.ErrorIs(t, err, ErrTerminalState)
	assert.NoError(t, mock.ExpectationsWereMet())
}
