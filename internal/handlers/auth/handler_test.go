package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkease/infras/otel/mocks"
	authMocks "parkease/internal/domains/auth/mocks"
	"parkease/internal/domains/auth/model/dto"
	"parkease/internal/handlers/auth"
	"parkease/shared/constant"
	"parkease/shared/failure"
)

func setupRouter(t *testing.T) (*authMocks.MockAuth, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := authMocks.NewMockAuth(ctrl)
	handler := auth.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestHandler_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(dto.AuthUserResponse{
				ID:    "USER001",
				Email: "jane@example.com",
				Role:  constant.RoleUser,
				Name:  "Jane Doe",
			}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"secret123"}`))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var res dto.AuthResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, constant.ResponseMsgLoginSuccess, res.Message)
		assert.NotNil(t, res.User)
		assert.Equal(t, "USER001", res.User.ID)
	})

	t.Run("bad credentials reply 200 with success false", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(dto.AuthUserResponse{}, failure.Unauthorized(constant.ResponseMsgInvalidCredentials))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"wrong"}`))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var res dto.AuthResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, constant.ResponseMsgInvalidCredentials, res.Message)
		assert.Nil(t, res.User)
	})

	t.Run("internal error stays 500", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(dto.AuthUserResponse{}, failure.InternalError(assert.AnError))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"secret123"}`))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, router := setupRouter(t)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":`))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(dto.AuthUserResponse{
				ID:    "USER001",
				Email: "jane@example.com",
				Role:  constant.RoleUser,
				Name:  constant.DefaultUserName,
			}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"jane@example.com","password":"secret123"}`))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var res dto.AuthResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, constant.ResponseMsgRegisterSuccess, res.Message)
		assert.NotNil(t, res.User)
		assert.Equal(t, "USER001", res.User.ID)
	})

	t.Run("duplicate email replies 400", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(dto.AuthUserResponse{}, failure.BadRequestFromString(constant.ResponseMsgEmailInUse))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"taken@example.com","password":"secret123"}`))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var res dto.AuthResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, constant.ResponseMsgEmailInUse, res.Message)
	})

	t.Run("invalid email rejected before the service", func(t *testing.T) {
		_, router := setupRouter(t)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"not-an-email","password":"secret123"}`))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
