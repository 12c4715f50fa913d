package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"salondash/config"
	"salondash/infras/jwt"
	jwtMocks "salondash/infras/jwt/mocks"
	"salondash/infras/otel/mocks"
	authMocks "salondash/internal/domains/auth/mocks"
	"salondash/internal/domains/auth/model"
	authService "salondash/internal/domains/auth/service"
	"salondash/internal/handlers/auth"
	"salondash/internal/workspace"
	"salondash/shared/constant"
	"salondash/shared/timezone"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	sessions *authMocks.MockSession
	jwt      *jwtMocks.MockJWT
	registry *workspace.Registry
	router   chi.Router
}

func newFixture(t *testing.T, sessionID string) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.JWT.AccessExpireMin = 60

	f := fixture{
		sessions: authMocks.NewMockSession(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
		registry: workspace.NewRegistry(cfg, nil, nil, nil),
	}
	t.Cleanup(f.registry.Shutdown)

	svc := authService.New(f.sessions, authMocks.NewMockUpstream(ctrl), cfg, mocks.NewOtel(), f.jwt)
	handler := auth.New(svc, f.registry, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessionID != "" {
				r = r.WithContext(workspace.WithSessionID(r.Context(), sessionID))
			}

			next.ServeHTTP(w, r)
		})
	})
	handler.Router(router)

	f.router = router

	return f
}

func TestHandler_Persist(t *testing.T) {
	f := newFixture(t, "")

	f.sessions.EXPECT().Save(gomock.Any(), gomock.Any(), 3600).Return(nil)
	f.jwt.EXPECT().Issue(gomock.Any(), "owner@salon.test").Return(&jwt.Token{
		AccessToken: "dash",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		ExpiresAt:   timezone.Now().Add(time.Hour),
	}, nil)

	body := `{"token":"backend","user":{"email":"owner@salon.test","name":"Owner"}}`
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/session", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "dash", res.Data.AccessToken)
}

func TestHandler_Persist_MissingToken(t *testing.T) {
	f := newFixture(t, "")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/session", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Logout(t *testing.T) {
	f := newFixture(t, "s1")
	f.registry.Get("s1")

	f.sessions.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"`+constant.LoginPath+`"`)
	assert.Equal(t, 0, f.registry.Len())

	f.registry.Get("s1")
	assert.Equal(t, 0, f.registry.Len())
}

func TestHandler_Me(t *testing.T) {
	f := newFixture(t, "s1")

	f.sessions.EXPECT().Get(gomock.Any(), "s1").Return(model.Session{
		ID:    "s1",
		Token: "backend",
		Email: "owner@salon.test",
	}, nil)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	assert.Contains(t, rec.Body.String(), "owner@salon.test")
}
