package workspace

import (
	"context"
	authService "salondash/internal/domains/auth/service"
	"salondash/shared/constant"
	"salondash/shared/failure"

	"github.com/rs/zerolog/log"
)

// SessionID reads the session id the auth middleware put on ctx.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeySessionID).(string)

	return id
}

// WithSessionID returns a copy of ctx bound to a session.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constant.ContextKeySessionID, sessionID)
}

// Accessor hands the ownerapi client the backend token of the session on ctx and ends the
// session when the backend rejects it.
type Accessor struct {
	auth     authService.Auth
	registry *Registry
}

func NewAccessor(auth authService.Auth) *Accessor {
	return &Accessor{
		auth: auth,
	}
}

// Attach binds the registry whose workspaces close when a session expires. The registry is
// built on top of the client the accessor serves, so it arrives after construction.
func (a *Accessor) Attach(registry *Registry) {
	a.registry = registry
}

func (a *Accessor) Token(ctx context.Context) (string, error) {
	sessionID := SessionID(ctx)
	if sessionID == "" {
		return "", failure.Unauthorized(constant.MessageSessionExpired) //nolint:wrapcheck
	}

	return a.auth.Token(ctx, sessionID) //nolint:wrapcheck
}

// OnUnauthorized logs the session out once, however many requests saw the 401.
func (a *Accessor) OnUnauthorized(ctx context.Context) {
	sessionID := SessionID(ctx)
	if sessionID == "" {
		return
	}

	if a.registry != nil && !a.registry.Expire(sessionID) {
		return
	}

	log.Warn().Str("session_id", sessionID).Msg("salon backend rejected the session token")

	if err := a.auth.Logout(context.WithoutCancel(ctx), sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to clear expired session")
	}
}
