package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/api/dto"
	"github.com/notifyx/notifyx/internal/api/respond"
	"github.com/notifyx/notifyx/internal/config"
	"github.com/notifyx/notifyx/internal/model"
	"github.com/notifyx/notifyx/internal/repository/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notifService interface {
	Create(ctx context.Context, strategy retry.Strategy, n model.Notification) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
	GetByUserID(ctx context.Context, userID int64) ([]model.Notification, error)
}

type Handler struct {
	service   notifService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s notifService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create accepts a notification, persists it as pending and queues delivery.
// The response returns immediately; delivery happens asynchronously.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateNotificationRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	channels := make([]model.Channel, 0, len(req.Channels))
	for _, raw := range req.Channels {
		ch, err := model.ParseChannel(raw)
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("rejected channel list")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		channels = append(channels, ch)
	}

	notif := model.Notification{
		UserID:   req.UserID,
		Title:    req.Title,
		Message:  req.Message,
		Channels: channels,
		Status:   model.StatusPending,
	}

	id, err := h.service.Create(c.Request.Context(), h.cfg.Retry, notif)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", notif.Title).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// Get returns the stored record with its latest committed status.
func (h *Handler) Get(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	notif, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", idStr).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to get notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notif)
}

// GetByUser returns all notifications owned by a user.
func (h *Handler) GetByUser(c *ginext.Context) {
	userIDStr := c.Param("id")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userIDStr).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	notifications, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, notification.ErrNoNotificationsFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no notifications found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("user_id", userIDStr).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}
