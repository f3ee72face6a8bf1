package user

import (
	"net/http"
	"parkease/infras/otel"
	bookingService "parkease/internal/domains/booking/service"
	"parkease/internal/domains/user/service"
	"parkease/shared/constant"
	"parkease/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.User
	bookingService bookingService.Booking
	otel           otel.Otel
}

func New(service service.User, bookingService bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		bookingService: bookingService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/user", func(routerGroup chi.Router) {
		routerGroup.Get("/{identifier}", handler.GetProfile)
		routerGroup.Get("/{identifier}/bookings", handler.GetBookings)
	})
}

// GetProfile returns the profile for the given email.
// @Summary Get user profile
// @Tags User
// @Produce json
// @Param identifier path string true "User email"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/user/{identifier} [get]
func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	email := chi.URLParam(request, constant.RequestParamIdentifier)

	profile, err := handler.service.GetProfile(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, profile)
}

// GetBookings lists the bookings owned by the given user.
// @Summary Get user bookings
// @Description List bookings by display id, falling back to email lookup for older clients. An unknown user yields an empty array, not a 404.
// @Tags User
// @Produce json
// @Param identifier path string true "User display id or email"
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} response.Envelope
// @Router /api/user/{identifier}/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	identifier := chi.URLParam(request, constant.RequestParamIdentifier)

	bookings, err := handler.bookingService.ListForUser(ctx, identifier)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list user bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}
