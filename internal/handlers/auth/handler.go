package auth

import (
	"net/http"
	"parkease/infras/otel"
	"parkease/internal/domains/auth/model/dto"
	"parkease/internal/domains/auth/service"
	"parkease/shared/constant"
	"parkease/shared/failure"
	"parkease/shared/validator"
	"parkease/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/register", handler.Register)
	})
}

// Login authenticates a user by email and password.
// @Summary Log in
// @Description Authenticate with email and password. A failed login replies 200 with success=false so the frontend can render the message inline.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.AuthResponse
// @Failure 500 {object} response.Envelope
// @Router /api/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login")

		// Bad credentials stay a 200 so the frontend reads the message from
		// the body instead of the transport error path.
		if failure.GetCode(err) == http.StatusUnauthorized {
			response.WithFailure(writer, http.StatusOK, err.Error())

			return
		}

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: constant.ResponseMsgLoginSuccess,
		User:    &user,
	})
}

// Register creates a new account.
// @Summary Register
// @Description Register a new account. The admin code grants the admin role when it matches the configured secret.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/auth/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User registered with id " + user.ID)

	response.WithJSON(writer, http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: constant.ResponseMsgRegisterSuccess,
		User:    &user,
	})
}
