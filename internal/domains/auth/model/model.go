package model

import (
	"encoding/json"
	"time"
)

const (
	EntityName      = "session"
	CacheKeyPrefix  = "session"
	LoginPath       = "/api/owner/auth/login"
	ProfileEmailKey = "email"
)

// Session is what the dashboard persists for a logged in owner: the salon backend token and
// the user object it returned, kept verbatim.
type Session struct {
	ID        string          `json:"id"`
	Token     string          `json:"token"`
	User      json.RawMessage `json:"user,omitempty"`
	Email     string          `json:"email"`
	CreatedAt time.Time       `json:"created_at"`
}

// LoginResult is the salon backend answer to a credential check.
type LoginResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// UserEmail reads the email field of the stored user object, if any.
func (s Session) UserEmail() string {
	if s.Email != "" {
		return s.Email
	}

	var probe map[string]any
	if err := json.Unmarshal(s.User, &probe); err != nil {
		return ""
	}

	email, _ := probe[ProfileEmailKey].(string)

	return email
}
