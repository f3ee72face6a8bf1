package service

import (
	"context"
	"fmt"
	"parkease/config"
	"parkease/infras/otel"
	"parkease/internal/domains/user/model"
	"parkease/internal/domains/user/model/dto"
	"parkease/internal/domains/user/repository"
	"parkease/shared"
	"parkease/shared/cache"
	"parkease/shared/constant"
	"parkease/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfile = "user:profile"
)

type User interface {
	GetProfile(ctx context.Context, email string) (dto.ProfileResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context, email string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProfile, email)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user profile")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByField(email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return res, failure.NotFound(constant.ResponseMsgUserNotFound) // nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user profile to cache")
		}
	}()

	return res, nil
}
