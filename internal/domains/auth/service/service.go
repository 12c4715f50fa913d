package service

import (
	"context"
	"encoding/json"
	"fmt"
	"salondash/config"
	"salondash/infras/jwt"
	"salondash/infras/otel"
	"salondash/internal/domains/auth/model/dto"
	"salondash/internal/domains/auth/repository"
	"salondash/shared/constant"
	"salondash/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Persist(ctx context.Context, token string, user json.RawMessage) (dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	IsAuthenticated(ctx context.Context, sessionID string) (bool, error)
	Me(ctx context.Context, sessionID string) (dto.MeResponse, error)
	Token(ctx context.Context, sessionID string) (string, error)
}

type serviceImpl struct {
	sessions   repository.Session
	upstream   repository.Upstream
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(sessions repository.Session, upstream repository.Upstream, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		sessions:   sessions,
		upstream:   upstream,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) sessionTTL() int {
	return s.cfg.JWT.AccessExpireMin * 60
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	result, err := s.upstream.Login(ctx, req.Email, req.Password)
	if err != nil {
		return res, err
	}

	return s.persist(ctx, result.Token, result.User, req.Email)
}

// Persist stores token and user as a new session and issues its dashboard token.
func (s *serviceImpl) Persist(ctx context.Context, token string, user json.RawMessage) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Persist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if token == "" {
		return res, failure.BadRequestFromString("token is required") //nolint:wrapcheck
	}

	return s.persist(ctx, token, user, "")
}

func (s *serviceImpl) persist(ctx context.Context, token string, user json.RawMessage, email string) (res dto.LoginResponse, err error) {
	session := dto.NewSession(uuid.NewString(), token, user, email)
	session.Email = session.UserEmail()

	if err = s.sessions.Save(ctx, session, s.sessionTTL()); err != nil {
		log.Error().Err(err).Msg("failed to persist session")

		return res, fmt.Errorf("failed to persist session: %w", err)
	}

	issued, err := s.jwtService.Issue(session.ID, session.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")

		if delErr := s.sessions.Delete(ctx, session.ID); delErr != nil {
			log.Error().Err(delErr).Str("session_id", session.ID).Msg("failed to drop orphan session")
		}

		return res, fmt.Errorf("failed to issue session token: %w", err)
	}

	log.Info().Str("session_id", session.ID).Str("email", session.Email).Msg("owner logged in")

	res.FromToken(issued, session.User)

	return res, nil
}

// Logout clears the persisted credentials. Logging out twice is not an error.
func (s *serviceImpl) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if sessionID == "" {
		return nil
	}

	if err = s.sessions.Delete(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	log.Info().Str("session_id", sessionID).Msg("owner logged out")

	return nil
}

// IsAuthenticated is true while a token is persisted. The token is not checked upstream.
func (s *serviceImpl) IsAuthenticated(ctx context.Context, sessionID string) (bool, error) {
	token, err := s.Token(ctx, sessionID)
	if err != nil {
		if failure.IsUnauthorized(err) {
			return false, nil
		}

		return false, err
	}

	return token != "", nil
}

func (s *serviceImpl) Me(ctx context.Context, sessionID string) (res dto.MeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return res, err
	}

	res.FromModel(session)

	return res, nil
}

// Token returns the backend bearer token of a session.
func (s *serviceImpl) Token(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if session.Token == "" {
		return "", failure.Unauthorized(constant.MessageSessionExpired) //nolint:wrapcheck
	}

	return session.Token, nil
}
