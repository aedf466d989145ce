package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"message": message,
		"data":    data,
		"error":   status >= 400,
	})
}

func TestHydrateWithoutTokenIsNoop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a token")
	}))
	defer server.Close()

	c := New(server.URL)
	s := NewSession(c)

	require.NoError(t, s.Hydrate(context.Background()))
	assert.Nil(t, s.User())
}

func TestHydrateInvalidTokenClearsSilently(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stale-token", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusUnauthorized, "Invalid or expired token", nil)
	}))
	defer server.Close()

	store := &MemoryTokenStore{}
	require.NoError(t, store.Save("stale-token"))

	c := New(server.URL, WithTokenStore(store))
	s := NewSession(c)

	// Silent logout: no error, no user, token gone
	require.NoError(t, s.Hydrate(context.Background()))
	assert.Nil(t, s.User())
	token, _ := store.Load()
	assert.Empty(t, token)
}

func TestHydrateValidToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/me", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "Authenticated", map[string]interface{}{
			"id":       "u1",
			"username": "GamerPro123",
			"email":    "gamer@example.com",
		})
	}))
	defer server.Close()

	store := &MemoryTokenStore{}
	require.NoError(t, store.Save("good-token"))

	c := New(server.URL, WithTokenStore(store))
	s := NewSession(c)

	require.NoError(t, s.Hydrate(context.Background()))
	require.NotNil(t, s.User())
	assert.Equal(t, "GamerPro123", s.User().Username)
}

func TestLoginSavesTokenAndUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gamer@example.com", req.Email)

		writeEnvelope(w, http.StatusOK, "Login successful", map[string]interface{}{
			"user":  map[string]interface{}{"id": "u1", "username": "GamerPro123"},
			"token": "fresh-token",
		})
	}))
	defer server.Close()

	store := &MemoryTokenStore{}
	c := New(server.URL, WithTokenStore(store))
	s := NewSession(c)

	user, err := s.Login(context.Background(), LoginRequest{Email: "gamer@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "GamerPro123", user.Username)

	token, _ := store.Load()
	assert.Equal(t, "fresh-token", token)
	assert.NotNil(t, s.User())
}

func TestLoginRejectionSurfacesAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "Invalid email or password", nil)
	}))
	defer server.Close()

	s := NewSession(New(server.URL))

	_, err := s.Login(context.Background(), LoginRequest{Email: "x@y.z", Password: "wrong"})
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Reason, "Invalid email or password")
	assert.Nil(t, s.User())
}

func TestLogoutClearsState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			writeEnvelope(w, http.StatusOK, "Login successful", map[string]interface{}{
				"user":  map[string]interface{}{"id": "u1", "username": "GamerPro123"},
				"token": "tok",
			})
		case "/api/v1/auth/logout":
			writeEnvelope(w, http.StatusOK, "logged out", nil)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	store := &MemoryTokenStore{}
	s := NewSession(New(server.URL, WithTokenStore(store)))

	_, err := s.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "p"})
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background()))
	assert.Nil(t, s.User())
	token, _ := store.Load()
	assert.Empty(t, token)
}

func TestGoogleAuthURL(t *testing.T) {
	c := New("https://api.cocmarket.gg")
	s := NewSession(c)
	assert.Equal(t, "https://api.cocmarket.gg/api/v1/auth/google", s.GoogleAuthURL())
}
