package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"salondash/config"
	"salondash/infras/jwt"
	jwtMocks "salondash/infras/jwt/mocks"
	"salondash/infras/otel/mocks"
	authMocks "salondash/internal/domains/auth/mocks"
	"salondash/internal/domains/auth/model"
	"salondash/internal/domains/auth/model/dto"
	"salondash/internal/domains/auth/service"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"salondash/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	sessions *authMocks.MockSession
	upstream *authMocks.MockUpstream
	jwt      *jwtMocks.MockJWT
	svc      service.Auth
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.JWT.AccessExpireMin = 60

	f := fixture{
		sessions: authMocks.NewMockSession(ctrl),
		upstream: authMocks.NewMockUpstream(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.sessions, f.upstream, cfg, mocks.NewOtel(), f.jwt)

	return f
}

func issuedToken() *jwt.Token {
	return &jwt.Token{
		AccessToken: "dashboard-token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		ExpiresAt:   timezone.Now().Add(time.Hour),
	}
}

func TestAuthService_Login(t *testing.T) {
	user := json.RawMessage(`{"id":7,"email":"owner@salon.test","name":"Ana"}`)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "owner@salon.test", Password: "secret"},
			setupMock: func(f fixture) {
				f.upstream.EXPECT().
					Login(gomock.Any(), "owner@salon.test", "secret").
					Return(model.LoginResult{Token: "backend-token", User: user}, nil)

				f.sessions.EXPECT().
					Save(gomock.Any(), gomock.Any(), 3600).
					DoAndReturn(func(_ context.Context, s model.Session, _ int) error {
						assert.NotEmpty(t, s.ID)
						assert.Equal(t, "backend-token", s.Token)
						assert.Equal(t, "owner@salon.test", s.Email)

						return nil
					})

				f.jwt.EXPECT().
					Issue(gomock.Any(), "owner@salon.test").
					Return(issuedToken(), nil)
			},
		},
		{
			name: "rejected credentials",
			req:  dto.LoginRequest{Email: "owner@salon.test", Password: "wrong"},
			setupMock: func(f fixture) {
				f.upstream.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.LoginResult{}, failure.Unauthorized("Invalid credentials"))
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  true,
		},
		{
			name: "session store unavailable",
			req:  dto.LoginRequest{Email: "owner@salon.test", Password: "secret"},
			setupMock: func(f fixture) {
				f.upstream.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.LoginResult{Token: "backend-token", User: user}, nil)

				f.sessions.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("redis down"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name: "token signing fails drops the session",
			req:  dto.LoginRequest{Email: "owner@salon.test", Password: "secret"},
			setupMock: func(f fixture) {
				f.upstream.EXPECT().
					Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.LoginResult{Token: "backend-token", User: user}, nil)

				f.sessions.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.jwt.EXPECT().
					Issue(gomock.Any(), gomock.Any()).
					Return(nil, jwt.ErrInvalidClaim)

				f.sessions.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "dashboard-token", res.AccessToken)
			assert.Equal(t, "Bearer", res.TokenType)
			assert.JSONEq(t, string(user), string(res.User))
		})
	}
}

func TestAuthService_Persist(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Persist(context.Background(), "", nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("stores token and user as given", func(t *testing.T) {
		f := newFixture(t)
		user := json.RawMessage(`{"email":"owner@salon.test"}`)

		f.sessions.EXPECT().
			Save(gomock.Any(), gomock.Any(), 3600).
			DoAndReturn(func(_ context.Context, s model.Session, _ int) error {
				assert.Equal(t, "backend-token", s.Token)
				assert.Equal(t, "owner@salon.test", s.Email)

				return nil
			})
		f.jwt.EXPECT().Issue(gomock.Any(), "owner@salon.test").Return(issuedToken(), nil)

		res, err := f.svc.Persist(context.Background(), "backend-token", user)

		require.NoError(t, err)
		assert.Equal(t, "dashboard-token", res.AccessToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("empty session is a no-op", func(t *testing.T) {
		f := newFixture(t)

		assert.NoError(t, f.svc.Logout(context.Background(), ""))
	})

	t.Run("clears the stored session", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

		assert.NoError(t, f.svc.Logout(context.Background(), "sess-1"))
	})

	t.Run("store failure is reported", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(errors.New("redis down"))

		assert.Error(t, f.svc.Logout(context.Background(), "sess-1"))
	})
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	tests := []struct {
		name    string
		session model.Session
		getErr  error
		want    bool
		wantErr bool
	}{
		{name: "token present", session: model.Session{ID: "sess-1", Token: "backend-token"}, want: true},
		{name: "session expired", getErr: failure.Unauthorized(constant.MessageSessionExpired)},
		{name: "empty token", session: model.Session{ID: "sess-1"}},
		{name: "store failure", getErr: errors.New("redis down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(tt.session, tt.getErr)

			got, err := f.svc.IsAuthenticated(context.Background(), "sess-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	f := newFixture(t)
	created := timezone.Now().Truncate(time.Second)

	f.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(model.Session{
		ID:        "sess-1",
		Token:     "backend-token",
		User:      json.RawMessage(`{"email":"owner@salon.test"}`),
		CreatedAt: created,
	}, nil)

	res, err := f.svc.Me(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.True(t, res.Authenticated)
	assert.Equal(t, "owner@salon.test", res.Email)
	assert.Equal(t, timezone.Format(created, constant.DateFormat), res.Since)
}

func TestAuthService_Token(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(model.Session{ID: "sess-1"}, nil)

	_, err := f.svc.Token(context.Background(), "sess-1")

	require.Error(t, err)
	assert.True(t, failure.IsUnauthorized(err))
}
