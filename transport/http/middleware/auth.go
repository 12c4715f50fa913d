package middleware

import (
	"context"
	"errors"
	"net/http"
	"salondash/infras/jwt"
	"salondash/infras/otel"
	authService "salondash/internal/domains/auth/service"
	"salondash/permissions"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"salondash/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Auth guards the dashboard routes behind a session token.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	sessions   authService.Auth
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthMiddleware(jwtService jwt.JWT, sessions authService.Auth, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		jwtService: jwtService,
		sessions:   sessions,
		otel:       otel,
		permission: permissions,
	}
}

// Auth validates the session token and checks the session still holds a backend token.
// Public routes pass through untouched.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		method := request.Method
		path := request.URL.Path

		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.Routes != nil {
			if pattern := rctx.Routes.Find(chi.NewRouteContext(), method, request.URL.Path); pattern != "" {
				path = pattern
			}
		}

		if m.permission.IsPublic(path, method) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.Validate(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = constant.MessageSessionExpired
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.SessionID == "" {
			log.Error().Msg("JWT claims: SessionID is empty")

			err := failure.Unauthorized("Invalid token claims")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		authenticated, err := m.sessions.IsAuthenticated(ctx, claims.SessionID)
		if err != nil {
			log.Error().Err(err).Str("session_id", claims.SessionID).Msg("failed to look up session")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if !authenticated {
			err := failure.Unauthorized(constant.MessageSessionExpired)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeySessionID, claims.SessionID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.SetAttribute("session.id", claims.SessionID)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
