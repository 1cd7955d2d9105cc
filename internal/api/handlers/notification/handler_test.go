package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/notifyx/notifyx/internal/api/dto"
	"github.com/notifyx/notifyx/internal/config"
	mocks "github.com/notifyx/notifyx/internal/mocks/api/handlers/notification"
	"github.com/notifyx/notifyx/internal/model"
	notifrepo "github.com/notifyx/notifyx/internal/repository/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotifService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotifService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.CreateNotificationRequest{
		UserID:   42,
		Title:    "Order shipped",
		Message:  "Your order is on the way",
		Channels: []string{"email", "in_app"},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Create(
			gomock.Any(),
			cfg.Retry,
			gomock.AssignableToTypeOf(model.Notification{}),
		).Return(uuid.New(), nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_InvalidBody(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_MissingTitle(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.CreateNotificationRequest{
		UserID:   42,
		Message:  "No title here",
		Channels: []string{"email"},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_UnknownChannel(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.CreateNotificationRequest{
		UserID:   42,
		Title:    "Hi",
		Message:  "There",
		Channels: []string{"carrier_pigeon"},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_EmptyChannels(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.CreateNotificationRequest{
		UserID:  42,
		Title:   "Hi",
		Message: "There",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Get_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(model.Notification{ID: id, Status: model.StatusSent}, nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(model.Notification{}, notifrepo.ErrNotificationNotFound)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Get_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/not-a-uuid", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetByUser_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/42/notifications", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	mockService.EXPECT().
		GetByUserID(gomock.Any(), int64(42)).
		Return([]model.Notification{{ID: uuid.New()}}, nil)

	handler.GetByUser(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetByUser_NoneFound(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/7/notifications", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	mockService.EXPECT().
		GetByUserID(gomock.Any(), int64(7)).
		Return(nil, notifrepo.ErrNoNotificationsFound)

	handler.GetByUser(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
