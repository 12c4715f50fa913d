package dto

import (
	"encoding/json"
	"salondash/infras/jwt"
	"salondash/internal/domains/auth/model"
	"salondash/shared/constant"
	"salondash/shared/timezone"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PersistRequest stores an already obtained backend token, the login(token, user) contract.
type PersistRequest struct {
	Token string          `json:"token" validate:"required"`
	User  json.RawMessage `json:"user"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int64           `json:"expires_in"`
	ExpiresAt   string          `json:"expires_at"`
	User        json.RawMessage `json:"user,omitempty"`
}

func (l *LoginResponse) FromToken(token *jwt.Token, user json.RawMessage) {
	l.AccessToken = token.AccessToken
	l.TokenType = token.TokenType
	l.ExpiresIn = token.ExpiresIn
	l.ExpiresAt = timezone.Format(token.ExpiresAt, constant.DateFormat)
	l.User = user
}

type MeResponse struct {
	Authenticated bool            `json:"authenticated"`
	Email         string          `json:"email,omitempty"`
	User          json.RawMessage `json:"user,omitempty"`
	Since         string          `json:"since,omitempty"`
}

func (m *MeResponse) FromModel(session model.Session) {
	m.Authenticated = session.Token != ""
	m.Email = session.UserEmail()
	m.User = session.User

	if !session.CreatedAt.IsZero() {
		m.Since = timezone.Format(session.CreatedAt, constant.DateFormat)
	}
}

type LogoutResponse struct {
	Redirect string `json:"redirect"`
}

// NewSession builds the persisted record for a fresh login.
func NewSession(id, token string, user json.RawMessage, email string) model.Session {
	return model.Session{
		ID:        id,
		Token:     token,
		User:      user,
		Email:     email,
		CreatedAt: timezone.Now().Truncate(time.Second),
	}
}
