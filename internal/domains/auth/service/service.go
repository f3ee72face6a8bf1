package service

import (
	"context"
	"fmt"
	"parkease/config"
	"parkease/infras/otel"
	"parkease/infras/postgres"
	"parkease/internal/domains/auth/model/dto"
	userModel "parkease/internal/domains/user/model"
	userRepo "parkease/internal/domains/user/repository"
	"parkease/shared"
	"parkease/shared/constant"
	"parkease/shared/failure"
	"parkease/shared/password"
	"strings"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthUserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthUserResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := shared.FilterByField(req.Email, userModel.FieldEmail, userModel.TableName)

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString(constant.ResponseMsgEmailInUse) // nolint:wrapcheck
	}

	role := constant.RoleUser
	if req.AdminCode == s.cfg.App.AdminCode {
		role = constant.RoleAdmin
	}

	storedPassword := req.Password
	if !s.cfg.App.LegacyPlaintextPasswords {
		storedPassword, err = password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return res, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	user := req.ToUserModel(constant.ContextGuest, storedPassword, role)

	id, err := s.userRepo.InsertReturningID(ctx, user)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(constant.ResponseMsgEmailInUse) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = id
	customID := formatCustomID(role, id)

	if err := s.writeBackCustomID(ctx, id, customID); err != nil {
		// The user row exists without a display id; the next successful
		// login repairs it.
		log.Warn().Err(err).Int64("id", id).Msg("failed to persist display id, deferring to login backfill")
	} else {
		user.CustomID = &customID
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthUserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := shared.FilterByField(req.Email, userModel.FieldEmail, userModel.TableName)

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown email and wrong password collapse into the same outcome so the
	// response never reveals which one failed.
	if user.ID == 0 {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized(constant.ResponseMsgInvalidCredentials) // nolint:wrapcheck
	}

	if err := s.verifyPassword(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(constant.ResponseMsgInvalidCredentials) // nolint:wrapcheck
	}

	if user.CustomID == nil || *user.CustomID == constant.Empty {
		customID := formatCustomID(user.Role, user.ID)

		if err := s.writeBackCustomID(ctx, user.ID, customID); err != nil {
			log.Warn().Err(err).Int64("id", user.ID).Msg("failed to backfill display id")
		} else {
			user.CustomID = &customID
		}
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) verifyPassword(candidate, stored string) error {
	if s.cfg.App.LegacyPlaintextPasswords {
		return password.VerifyPlaintext(candidate, stored) // nolint:wrapcheck
	}

	return password.Verify(candidate, stored) // nolint:wrapcheck
}

func (s *serviceImpl) writeBackCustomID(ctx context.Context, id int64, customID string) error {
	updatedFields := shared.TransformFields(dto.UpdateCustomIDRequest{CustomID: customID}, customID)

	return s.userRepo.Update(ctx, updatedFields, shared.FilterByID(id, userModel.FieldID, userModel.TableName)) // nolint:wrapcheck
}

// formatCustomID derives the display id from the DB-assigned serial key, so
// it is unique by construction. Widths grow past three digits untruncated
// (USER001, USER012, USER1234).
func formatCustomID(role string, id int64) string {
	prefix := constant.CustomIDPrefixUser
	if strings.EqualFold(role, constant.RoleAdmin) {
		prefix = constant.CustomIDPrefixAdmin
	}

	return fmt.Sprintf("%s%03d", prefix, id)
}
