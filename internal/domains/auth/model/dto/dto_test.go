package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salondash/infras/jwt"
	"salondash/internal/domains/auth/model"
	"salondash/internal/domains/auth/model/dto"
)

func TestLoginResponse_FromToken(t *testing.T) {
	token := &jwt.Token{
		AccessToken: "signed",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	var response dto.LoginResponse
	response.FromToken(token, json.RawMessage(`{"id":1}`))

	assert.Equal(t, "signed", response.AccessToken)
	assert.Equal(t, int64(3600), response.ExpiresIn)
	assert.NotEmpty(t, response.ExpiresAt)
	assert.JSONEq(t, `{"id":1}`, string(response.User))
}

func TestMeResponse_FromModel(t *testing.T) {
	session := dto.NewSession("sid", "tok", json.RawMessage(`{"email":"owner@salon.test","name":"Lena"}`), "")

	var me dto.MeResponse
	me.FromModel(session)

	assert.True(t, me.Authenticated)
	assert.Equal(t, "owner@salon.test", me.Email)
	assert.NotEmpty(t, me.Since)
}

func TestSession_UserEmail(t *testing.T) {
	assert.Equal(t, "x@y.z", model.Session{Email: "x@y.z", User: json.RawMessage(`{"email":"other"}`)}.UserEmail())
	assert.Empty(t, model.Session{User: json.RawMessage(`not json`)}.UserEmail())
}
