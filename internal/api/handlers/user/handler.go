package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/api/dto"
	"github.com/notifyx/notifyx/internal/api/respond"
	"github.com/notifyx/notifyx/internal/config"
	"github.com/notifyx/notifyx/internal/model"
	"github.com/notifyx/notifyx/internal/repository/user"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/user/mock.go -package=mocks
type userService interface {
	Create(ctx context.Context, u model.User) (int64, error)
	GetByID(ctx context.Context, strategy retry.Strategy, id int64) (model.User, error)
}

type Handler struct {
	service   userService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(s userService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create registers a recipient with their delivery destinations.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateUserRequest

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

	u := model.User{
		Email:    req.Email,
		Phone:    req.Phone,
		FullName: req.FullName,
		Active:   true,
	}

	id, err := h.service.Create(c.Request.Context(), u)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("email", req.Email).Msg("failed to create user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// Get returns a user by identifier.
func (h *Handler) Get(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("user not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to get user")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, u)
}
