package service

import (
	"context"
	"fmt"
	"parkease/config"
	"parkease/infras/kafka"
	"parkease/infras/otel"
	"parkease/internal/domains/booking/model"
	"parkease/internal/domains/booking/model/dto"
	"parkease/internal/domains/booking/repository"
	userModel "parkease/internal/domains/user/model"
	userRepo "parkease/internal/domains/user/repository"
	"parkease/shared"
	"parkease/shared/cache"
	"parkease/shared/constant"
	gDto "parkease/shared/dto"
	"parkease/shared/failure"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheListBooking = "booking:list"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	Cancel(ctx context.Context, id int64) error
	ListForUser(ctx context.Context, identifier string) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(repo repository.Booking, userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, shared.FilterByField(req.UserID, userModel.FieldCustomID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return 0, failure.BadRequestFromString(constant.ResponseMsgUserNotFound) // nolint:wrapcheck
	}

	startTime, err := req.ParseStartTime()
	if err != nil {
		log.Warn().Err(err).Str("startTime", req.StartTime).Msg("unparseable booking start time")

		return 0, failure.BadRequestFromString(constant.ResponseMsgInvalidTimeFormat) // nolint:wrapcheck
	}

	booking := req.ToModel(user.ID, startTime, req.UserID)

	id, err = s.repo.InsertReturningID(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id
	booking.UserCustomID = user.CustomID
	booking.UserEmail = user.Email

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheListBooking)
		s.publishEvent(c, dto.NewBookingEvent(dto.EventBookingCreated, booking))
	}()

	return id, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound(constant.ResponseMsgBookingNotFound) // nolint:wrapcheck
	}

	// Cancellation is idempotent: a cancelled booking stays cancelled.
	update := dto.UpdateBookingStatusRequest{Status: constant.BookingStatusCancelled}

	updatedFields := shared.TransformFields(update, constant.ContextGuest)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = constant.BookingStatusCancelled

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheListBooking)
		s.publishEvent(c, dto.NewBookingEvent(dto.EventBookingCancelled, booking))
	}()

	return nil
}

func (s *serviceImpl) ListForUser(ctx context.Context, identifier string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheListBooking, identifier)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldStartTime,
		SortDir: gDto.SortDirDesc,
	}

	bookings, err := s.repo.GetAll(ctx, params, shared.FilterByField(identifier, userModel.FieldCustomID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	// Older clients pass the account email where the display id belongs.
	if len(bookings) == 0 && strings.Contains(identifier, constant.EmailIndicatorChar) {
		bookings, err = s.repo.GetAll(ctx, params, shared.FilterByField(identifier, userModel.FieldEmail, userModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get bookings by email")

			return res, fmt.Errorf("failed to get bookings by email: %w", err)
		}
	}

	res = dto.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event dto.BookingEvent) {
	if len(s.cfg.Kafka.Brokers) == 0 {
		return
	}

	_, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publishBookingEvent")
	defer scope.End()

	message := kafka.Message{
		Key:   strconv.FormatInt(event.BookingID, 10),
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", event.Event).Msg("failed to publish booking event")
		scope.TraceError(err)
	}
}
