package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexaidhq/lexaid-backend/internal/middleware"
	"github.com/lexaidhq/lexaid-backend/internal/models"
)

// doAuthed runs a handler behind the gate with the given access token.
func (e *testEnv) doAuthed(method, token string, body interface{}, handler http.HandlerFunc) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	wrapped := middleware.JWTAuth(e.jwtService, e.repo)(handler)

	r := httptest.NewRequest(method, "/api/users/me", reader)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, r)
	return w
}

func TestGetCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "Test User", "test@example.com", "password123")

	token, err := env.jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	w := env.doAuthed(http.MethodGet, token, nil, env.userHandler.GetCurrentUser)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)

	var got models.User
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, user.Email, got.Email)
	assert.Empty(t, got.PasswordHash)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "Test User", "test@example.com", "password123")

	token, err := env.jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	w := env.doAuthed(http.MethodPost, token, map[string]string{
		"current_password": "password123",
		"new_password":     "password456",
	}, env.userHandler.ChangePassword)

	assert.Equal(t, http.StatusOK, w.Code)

	// The old password no longer authenticates; the new one does.
	loginOld := postJSON(env.authHandler.Login, map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, loginOld.Code)

	loginNew := postJSON(env.authHandler.Login, map[string]string{
		"email":    "test@example.com",
		"password": "password456",
	})
	assert.Equal(t, http.StatusOK, loginNew.Code)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "Test User", "test@example.com", "password123")

	token, err := env.jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	w := env.doAuthed(http.MethodPost, token, map[string]string{
		"current_password": "wrong-password",
		"new_password":     "password456",
	}, env.userHandler.ChangePassword)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "invalid_credentials", resp.Error.Code)
}

func TestDeleteCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "Test User", "test@example.com", "password123")

	token, err := env.jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	w := env.doAuthed(http.MethodDelete, token, nil, env.userHandler.DeleteCurrentUser)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The still-valid token now fails at the identity check.
	after := env.doAuthed(http.MethodGet, token, nil, env.userHandler.GetCurrentUser)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
	resp := decodeEnvelope(t, after)
	assert.Equal(t, "AUTH_002", resp.Error.Code)
}
