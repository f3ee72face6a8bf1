package booking_test

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
	"parkease/internal/domains/booking/model/dto"
	serviceMocks "parkease/internal/domains/booking/service/mocks"
	"parkease/internal/handlers/booking"
	"parkease/shared/constant"
	"parkease/shared/failure"
	"parkease/transport/http/response"
)

func setupRouter(t *testing.T) (*serviceMocks.MockBooking, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockBooking(ctrl)
	handler := booking.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestHandler_CreateBooking(t *testing.T) {
	requestBody := `{"userId":"USER007","locationName":"Downtown Garage","startTime":"2026-09-01T10:00:00","duration":2,"price":15.50}`

	t.Run("successful booking", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(int64(42), nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings/create", strings.NewReader(requestBody))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var res dto.CreateBookingResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, constant.ResponseMsgBookingConfirmed, res.Message)
		assert.Equal(t, int64(42), res.BookingID)
	})

	t.Run("unknown user replies 400", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(int64(0), failure.BadRequestFromString(constant.ResponseMsgUserNotFound))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings/create", strings.NewReader(requestBody))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var res response.Envelope
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, constant.ResponseMsgUserNotFound, res.Message)
	})

	t.Run("missing fields rejected before the service", func(t *testing.T) {
		_, router := setupRouter(t)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings/create", strings.NewReader(`{"userId":"USER007"}`))

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Run("successful cancellation", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Cancel(gomock.Any(), int64(42)).
			Return(nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings/cancel/42", nil)

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var res response.Envelope
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.Equal(t, constant.ResponseMsgBookingCancelled, res.Message)
	})

	t.Run("unknown booking replies 404", func(t *testing.T) {
		mockService, router := setupRouter(t)

		mockService.EXPECT().
			Cancel(gomock.Any(), int64(999)).
			Return(failure.NotFound(constant.ResponseMsgBookingNotFound))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings/cancel/999", nil)

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var res response.Envelope
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, constant.ResponseMsgBookingNotFound, res.Message)
	})

	t.Run("non-numeric id replies 404", func(t *testing.T) {
		_, router := setupRouter(t)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/bookings/cancel/abc", nil)

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
