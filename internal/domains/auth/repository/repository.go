package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/domains/auth/model"
	"salondash/shared"
	"salondash/shared/cache"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

// Session persists dashboard sessions.
type Session interface {
	Save(ctx context.Context, session model.Session, ttlSeconds int) error
	Get(ctx context.Context, id string) (model.Session, error)
	Delete(ctx context.Context, id string) error
}

// Upstream checks owner credentials against the salon backend.
type Upstream interface {
	Login(ctx context.Context, email, password string) (model.LoginResult, error)
}

type sessionImpl struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func NewSession(cache cache.RedisCache, otel otel.Otel) Session {
	return &sessionImpl{
		cache: cache,
		otel:  otel,
	}
}

func sessionKey(id string) string {
	return shared.BuildCacheKey(model.CacheKeyPrefix, id)
}

func (r *sessionImpl) Save(ctx context.Context, session model.Session, ttlSeconds int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Save(ctx, sessionKey(session.ID), session, ttlSeconds); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

// Get returns the session or an unauthorized failure when it is gone.
func (r *sessionImpl) Get(ctx context.Context, id string) (res model.Session, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Get")
	defer scope.End()

	if id == "" {
		return res, failure.Unauthorized(constant.MessageSessionExpired) //nolint:wrapcheck
	}

	if err = r.cache.Get(ctx, sessionKey(id), &res); err != nil {
		if cache.IsMiss(err) {
			return res, failure.Unauthorized(constant.MessageSessionExpired) //nolint:wrapcheck
		}

		scope.TraceError(err)

		return res, fmt.Errorf("failed to read session: %w", err)
	}

	return res, nil
}

func (r *sessionImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Delete(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

type upstreamImpl struct {
	client ownerapi.Client
	otel   otel.Otel
}

// NewUpstream takes a client with no session accessor; login calls are anonymous.
func NewUpstream(client ownerapi.Client, otel otel.Otel) Upstream {
	return &upstreamImpl{
		client: client,
		otel:   otel,
	}
}

func (r *upstreamImpl) Login(ctx context.Context, email, password string) (res model.LoginResult, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".upstream.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.client.Do(ctx, ownerapi.Request{
		Method:    http.MethodPost,
		Path:      model.LoginPath,
		Body:      map[string]string{"email": strings.TrimSpace(email), "password": password},
		Anonymous: true,
	}, &res)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("owner login rejected")

		return res, fmt.Errorf("owner login: %w", err)
	}

	if res.Token == "" {
		return res, failure.BadGateway("login succeeded but no token was returned") //nolint:wrapcheck
	}

	return res, nil
}
