package service

import (
	"context"
	"salondash/infras/otel"
	"salondash/internal/domains/profile/model/dto"
	"salondash/internal/domains/profile/repository"
	"salondash/shared/constant"
	"salondash/shared/validator"

	"github.com/rs/zerolog/log"
)

type Profile interface {
	Get(ctx context.Context) (dto.ProfileResponse, error)
	Update(ctx context.Context, req dto.UpdateProfileRequest) (dto.ProfileResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	repo repository.Profile
	otel otel.Otel
}

func New(repo repository.Profile, otel otel.Otel) Profile {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	profile, err := s.repo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, err
	}

	res.FromModel(profile)

	return res, nil
}

// Update sends the changed fields. When the backend echoes no profile it is read again.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfileRequest) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	updated, err := s.repo.Update(ctx, req.ToBody())
	if err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return res, err
	}

	if updated == nil {
		return s.Get(ctx)
	}

	res.FromModel(*updated)

	return res, nil
}

// ChangePassword checks the new password locally before the backend sees it.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	if err = s.repo.ChangePassword(ctx, req.ToBody()); err != nil {
		log.Error().Err(err).Msg("failed to change password")

		return err
	}

	return nil
}
