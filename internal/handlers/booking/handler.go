package booking

import (
	"net/http"
	"parkease/infras/otel"
	"parkease/internal/domains/booking/model/dto"
	"parkease/internal/domains/booking/service"
	"parkease/shared/constant"
	"parkease/shared/failure"
	"parkease/shared/validator"
	"parkease/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateBooking)
		routerGroup.Post("/cancel/{id}", handler.CancelBooking)
	})
}

// CreateBooking reserves a parking spot for a user.
// @Summary Create a booking
// @Description Reserve a parking spot. The user is addressed by display id (USER001 style) and the start time is a zone-less ISO-8601 date-time.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} dto.CreateBookingResponse "Booking confirmed"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bookings/create [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created for user " + req.UserID)

	response.WithJSON(writer, http.StatusOK, dto.CreateBookingResponse{
		Success:   true,
		Message:   constant.ResponseMsgBookingConfirmed,
		BookingID: id,
	})
}

// CancelBooking cancels a booking by id.
// @Summary Cancel a booking
// @Description Mark the booking as cancelled. Cancelling an already cancelled booking succeeds.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Envelope "Booking cancelled"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/bookings/cancel/{id} [post]
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.NotFound(constant.ResponseMsgBookingNotFound))

		return
	}

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithSuccess(writer, constant.ResponseMsgBookingCancelled)
}
