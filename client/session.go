package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// User is the public profile the API returns for the session owner.
type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Provider       string   `json:"provider"`
	Location       string   `json:"location"`
	Avatar         *string  `json:"avatar,omitempty"`
	TrustScore     float64  `json:"trust_score"`
	TotalSales     int      `json:"total_sales"`
	TotalPurchases int      `json:"total_purchases"`
	IsVerified     bool     `json:"is_verified"`
	Badges         []string `json:"badges"`
	DisplayName    *string  `json:"display_name,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	MemberSince    string   `json:"member_since"`
}

// RegisterRequest creates a credential account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location,omitempty"`
}

// LoginRequest authenticates a credential account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	DisplayName     *string `json:"display_name,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Avatar          *string `json:"avatar,omitempty"`
	LocationDisplay *string `json:"location_display,omitempty"`
}

type authPayload struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Session owns the authenticated identity: the persisted token plus the
// current user. One session per process; inject it wherever auth is needed
// instead of reading ambient globals.
type Session struct {
	client *Client

	mu   sync.RWMutex
	user *User
}

func NewSession(c *Client) *Session {
	return &Session{client: c}
}

// User returns the current user, or nil when logged out.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Hydrate restores the session from the persisted token. An invalid or
// expired token clears local state silently: the user is simply logged out,
// no error is surfaced.
func (s *Session) Hydrate(ctx context.Context) error {
	token, err := s.client.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	var user User
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) && (svcErr.Status == http.StatusUnauthorized || svcErr.Status == http.StatusForbidden) {
			_ = s.client.tokens.Clear()
			s.setUser(nil)
			return nil
		}
		return err
	}

	s.setUser(&user)
	return nil
}

// Register creates an account and logs the new user in.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var payload authPayload
	if _, err := s.client.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &payload); err != nil {
		return nil, asAuthError(err)
	}
	if err := s.client.tokens.Save(payload.Token); err != nil {
		return nil, err
	}
	s.setUser(&payload.User)
	return &payload.User, nil
}

// Login authenticates with email and password.
func (s *Session) Login(ctx context.Context, req LoginRequest) (*User, error) {
	var payload authPayload
	if _, err := s.client.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &payload); err != nil {
		return nil, asAuthError(err)
	}
	if err := s.client.tokens.Save(payload.Token); err != nil {
		return nil, err
	}
	s.setUser(&payload.User)
	return &payload.User, nil
}

// GoogleAuthURL is where a browser should be sent to start the federated
// login flow; the API redirects back to the storefront when done.
func (s *Session) GoogleAuthURL() string {
	return s.client.BaseURL() + "/auth/google"
}

// Logout clears the session locally and best-effort notifies the API.
func (s *Session) Logout(ctx context.Context) error {
	_, _ = s.client.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	s.setUser(nil)
	return s.client.tokens.Clear()
}

// Me fetches the current user from the API, refreshing the cached copy.
func (s *Session) Me(ctx context.Context) (*User, error) {
	var user User
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, asAuthError(err)
	}
	s.setUser(&user)
	return &user, nil
}

// UpdateProfile applies a partial profile edit.
func (s *Session) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var user User
	if _, err := s.client.doJSON(ctx, http.MethodPatch, "/auth/profile", nil, update, &user); err != nil {
		return nil, asAuthError(err)
	}
	s.setUser(&user)
	return &user, nil
}

func (s *Session) setUser(u *User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// asAuthError converts 401/403 service errors into AuthError so callers can
// show them inline; everything else passes through untouched.
func asAuthError(err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Status == http.StatusUnauthorized || svcErr.Status == http.StatusForbidden) {
		return &AuthError{Reason: svcErr.Message}
	}
	return err
}
