package ownerapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"salondash/infras/otel/mocks"
	"salondash/infras/ownerapi"
	apiMocks "salondash/infras/ownerapi/mocks"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingsPayload struct {
	Bookings []struct {
		ID   int    `json:"id"`
		Name string `json:"customer_name"`
	} `json:"bookings"`
}

func newClient(t *testing.T, handler http.HandlerFunc, accessor ownerapi.SessionAccessor) *ownerapi.HTTPClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return ownerapi.NewClient(srv.URL+"/", srv.Client(), accessor, ownerapi.NewMetrics(nil), mocks.NewOtel())
}

func TestDo_SendsBearerAndDecodesEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	accessor := apiMocks.NewMockSessionAccessor(ctrl)
	accessor.EXPECT().Token(gomock.Any()).Return("tok-123", nil)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get(constant.RequestHeaderAuthorization))
		assert.Equal(t, "/api/owner/bookings", r.URL.Path)
		assert.Equal(t, "confirmed", r.URL.Query().Get("status"))

		_, _ = w.Write([]byte(`{"ok":true,"bookings":[{"id":7,"customer_name":"Mia"}]}`))
	}, accessor)

	var out bookingsPayload
	err := client.Do(context.Background(), ownerapi.Request{
		Method: http.MethodGet,
		Path:   "/api/owner/bookings",
		Query:  url.Values{"status": []string{"confirmed"}},
	}, &out)

	require.NoError(t, err)
	require.Len(t, out.Bookings, 1)
	assert.Equal(t, "Mia", out.Bookings[0].Name)
}

func TestDo_UnauthorizedCallsHookOnceAndSkipsBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	accessor := apiMocks.NewMockSessionAccessor(ctrl)
	accessor.EXPECT().Token(gomock.Any()).Return("stale", nil)
	accessor.EXPECT().OnUnauthorized(gomock.Any()).Times(1)

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":true,"bookings":[{"id":1,"customer_name":"Ghost"}]}`))
	}, accessor)

	var out bookingsPayload
	err := client.Do(context.Background(), ownerapi.Request{Method: http.MethodGet, Path: "/api/owner/bookings"}, &out)

	require.Error(t, err)
	assert.True(t, failure.IsUnauthorized(err))
	assert.Equal(t, constant.MessageSessionExpired, err.Error())
	assert.Empty(t, out.Bookings)
}

func TestDo_AnonymousUnauthorizedDoesNotLogout(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(constant.RequestHeaderAuthorization))

		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error":"Invalid credentials"}`))
	}, nil)

	err := client.Do(context.Background(), ownerapi.Request{
		Method:    http.MethodPost,
		Path:      "/api/owner/auth/login",
		Body:      map[string]string{"email": "a@b.c", "password": "x"},
		Anonymous: true,
	}, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestDo_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	accessor := apiMocks.NewMockSessionAccessor(ctrl)
	accessor.EXPECT().Token(gomock.Any()).Return("tok", nil)

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, accessor)

	err := client.Do(context.Background(), ownerapi.Request{Method: http.MethodGet, Path: "/api/owner/offers"}, nil)

	assert.Equal(t, http.StatusTooManyRequests, failure.GetCode(err))
	assert.Equal(t, constant.MessageRateLimited, err.Error())
}

func TestDo_EnvelopeFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		code    int
		message string
	}{
		{
			name:    "ok false on 200",
			status:  http.StatusOK,
			body:    `{"ok":false,"error":"Slot taken","details":"14:00 is booked"}`,
			code:    http.StatusBadGateway,
			message: "Slot taken: 14:00 is booked",
		},
		{
			name:    "validation error",
			status:  http.StatusBadRequest,
			body:    `{"ok":false,"error":"Invalid date"}`,
			code:    http.StatusBadRequest,
			message: "Invalid date",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"ok":false,"error":"Booking not found"}`,
			code:    http.StatusNotFound,
			message: "Booking not found",
		},
		{
			name:    "server error without body",
			status:  http.StatusInternalServerError,
			body:    ``,
			code:    http.StatusBadGateway,
			message: "Request failed with status 500",
		},
		{
			name:    "html error page",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			code:    http.StatusBadGateway,
			message: "unexpected response from server (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accessor := apiMocks.NewMockSessionAccessor(ctrl)
			accessor.EXPECT().Token(gomock.Any()).Return("tok", nil)

			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, accessor)

			err := client.Do(context.Background(), ownerapi.Request{Method: http.MethodGet, Path: "/api/owner/bookings"}, nil)

			require.Error(t, err)
			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestDo_MissingTokenNeverHitsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	accessor := apiMocks.NewMockSessionAccessor(ctrl)
	accessor.EXPECT().Token(gomock.Any()).Return("", nil)

	var hits atomic.Int32
	client := newClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}, accessor)

	err := client.Do(context.Background(), ownerapi.Request{Method: http.MethodGet, Path: "/api/owner/profile"}, nil)

	assert.True(t, failure.IsUnauthorized(err))
	assert.Zero(t, hits.Load())
}

func TestDo_EncodesBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	accessor := apiMocks.NewMockSessionAccessor(ctrl)
	accessor.EXPECT().Token(gomock.Any()).Return("tok", nil)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, constant.ContentTypeJSON, r.Header.Get(constant.RequestHeaderContentType))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "confirmed", body["status"])

		_, _ = w.Write([]byte(`{"ok":true}`))
	}, accessor)

	err := client.Do(context.Background(), ownerapi.Request{
		Method: http.MethodPatch,
		Path:   "/api/owner/bookings/3",
		Body:   map[string]string{"status": "confirmed"},
	}, nil)

	assert.NoError(t, err)
}

func TestDo_Unreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	accessor := apiMocks.NewMockSessionAccessor(ctrl)
	accessor.EXPECT().Token(gomock.Any()).Return("tok", nil)

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client := ownerapi.NewClient(base, http.DefaultClient, accessor, nil, mocks.NewOtel())
	err := client.Do(context.Background(), ownerapi.Request{Method: http.MethodGet, Path: "/api/owner/profile"}, nil)

	assert.True(t, ownerapi.IsNetworkError(err))
}
