package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"salondash/config"
	"salondash/infras/jwt"
	jwtMocks "salondash/infras/jwt/mocks"
	"salondash/infras/otel/mocks"
	authMocks "salondash/internal/domains/auth/mocks"
	"salondash/internal/domains/auth/model"
	authService "salondash/internal/domains/auth/service"
	"salondash/permissions"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"salondash/transport/http/middleware"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	jwt      *jwtMocks.MockJWT
	sessions *authMocks.MockSession
	router   chi.Router
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := authFixture{
		jwt:      jwtMocks.NewMockJWT(ctrl),
		sessions: authMocks.NewMockSession(ctrl),
	}

	svc := authService.New(f.sessions, authMocks.NewMockUpstream(ctrl), &config.Config{}, mocks.NewOtel(), f.jwt)
	mw := middleware.NewAuthMiddleware(f.jwt, svc, mocks.NewOtel(), permissions.Get())

	ok := func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ := r.Context().Value(constant.ContextKeySessionID).(string)
		w.Header().Set("X-Session", sessionID)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(group chi.Router) {
		group.Use(mw.Auth)
		group.Post("/auth/login", ok)
		group.Get("/bookings/{id}", ok)
	})

	f.router = router

	return f
}

func TestAuth_PublicRouteSkipsToken(t *testing.T) {
	f := newAuthFixture(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Session"))
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		setupMock     func(f authFixture)
		expectedCode  int
		expectSession string
	}{
		{
			name:         "missing header",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed header",
			header:       "Token abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer abc",
			setupMock: func(f authFixture) {
				f.jwt.EXPECT().Validate("abc").Return(nil, jwt.ErrExpiredToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "session gone",
			header: "Bearer abc",
			setupMock: func(f authFixture) {
				f.jwt.EXPECT().Validate("abc").Return(&jwt.Claims{SessionID: "s1"}, nil)
				f.sessions.EXPECT().Get(gomock.Any(), "s1").Return(model.Session{}, failure.Unauthorized(constant.MessageSessionExpired))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "valid session",
			header: "Bearer abc",
			setupMock: func(f authFixture) {
				f.jwt.EXPECT().Validate("abc").Return(&jwt.Claims{SessionID: "s1", Email: "owner@salon.test"}, nil)
				f.sessions.EXPECT().Get(gomock.Any(), "s1").Return(model.Session{ID: "s1", Token: "backend"}, nil)
			},
			expectedCode:  http.StatusOK,
			expectSession: "s1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b1", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectSession, rec.Header().Get("X-Session"))

			if tt.expectedCode == http.StatusUnauthorized {
				assert.Equal(t, constant.LoginPath, rec.Header().Get(constant.ResponseHeaderRedirect))
			}
		})
	}
}
