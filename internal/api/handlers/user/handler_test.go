package user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/notifyx/notifyx/internal/api/dto"
	"github.com/notifyx/notifyx/internal/config"
	mocks "github.com/notifyx/notifyx/internal/mocks/api/handlers/user"
	"github.com/notifyx/notifyx/internal/model"
	userrepo "github.com/notifyx/notifyx/internal/repository/user"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockuserService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockuserService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	reqBody := dto.CreateUserRequest{
		Email:    "user@example.com",
		Phone:    "+15550001111",
		FullName: "Test User",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Create(gomock.Any(), gomock.AssignableToTypeOf(model.User{})).
		Return(int64(42), nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Create_InvalidEmail(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.CreateUserRequest{Email: "not-an-email"}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Get_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	mockService.EXPECT().
		GetByID(gomock.Any(), cfg.Retry, int64(42)).
		Return(model.User{ID: 42, Email: "user@example.com"}, nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/7", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	mockService.EXPECT().
		GetByID(gomock.Any(), cfg.Retry, int64(7)).
		Return(model.User{}, userrepo.ErrUserNotFound)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
