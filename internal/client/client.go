// Package client is an HTTP client for the travel listings API. It
// implements the session kit's provider and role-source interfaces so a
// local session store can be driven by the remote service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/session"
)

// Client talks to the travel listings API. It remembers the bearer token of
// the last successful sign-in and presents it on authenticated calls.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken primes the client with a previously persisted token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignIn authenticates against the API and remembers the returned token.
func (c *Client) SignIn(ctx context.Context, email, password string) (session.Identity, error) {
	body := map[string]string{"email": email, "password": password}

	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", body, &payload); err != nil {
		return session.Identity{}, err
	}

	c.SetToken(payload.Token)
	return session.Identity{
		UserID: payload.User.ID,
		Email:  payload.User.Email,
		Token:  payload.Token,
	}, nil
}

// SignUp registers an account and signs it in.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (session.Identity, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", body, &payload); err != nil {
		return session.Identity{}, err
	}

	return c.SignIn(ctx, email, password)
}

// SignOut revokes the token server-side. The local token is kept on failure
// so the caller's session state stays consistent with the server's.
func (c *Client) SignOut(ctx context.Context, token string) error {
	if err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

type sessionPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Session validates the held token. A rejected or absent token yields a
// zero identity with a nil error: not signed in is an empty result.
func (c *Client) Session(ctx context.Context, token string) (session.Identity, error) {
	if token == "" {
		return session.Identity{}, nil
	}

	var payload sessionPayload
	err := c.do(ctx, http.MethodGet, "/v1/session", nil, &payload)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusUnauthorized {
			return session.Identity{}, nil
		}
		return session.Identity{}, err
	}

	return session.Identity{UserID: payload.UserID, Email: payload.Email, Token: token}, nil
}

// RoleByID returns the resolved role of the signed-in user. The API resolves
// the role server-side from the session token; the id is the local store's
// key and must match the remote identity.
func (c *Client) RoleByID(ctx context.Context, userID string) (string, error) {
	var payload sessionPayload
	if err := c.do(ctx, http.MethodGet, "/v1/session", nil, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRoleLookup, err)
	}
	if payload.UserID != userID {
		return "", fmt.Errorf("%w: session belongs to another user", domain.ErrRoleLookup)
	}
	return payload.Role, nil
}

// Listings returns the catalog together with the caller's primary action.
func (c *Client) Listings(ctx context.Context) ([]domain.Listing, session.Action, error) {
	var payload struct {
		Listings      []domain.Listing `json:"listings"`
		PrimaryAction session.Action   `json:"primary_action"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/listings", nil, &payload); err != nil {
		return nil, "", err
	}
	return payload.Listings, payload.PrimaryAction, nil
}

// Bookings returns the signed-in user's bookings.
func (c *Client) Bookings(ctx context.Context) ([]domain.Booking, error) {
	var payload struct {
		Bookings []domain.Booking `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/bookings", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Bookings, nil
}

// CreateBooking books a listing.
func (c *Client) CreateBooking(ctx context.Context, listingID string, from, to time.Time, numGuests int) (*domain.Booking, error) {
	body := map[string]any{
		"listing_id": listingID,
		"from":       from,
		"to":         to,
		"num_guests": numGuests,
	}
	var booking domain.Booking
	if err := c.do(ctx, http.MethodPost, "/v1/bookings", body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.code, e.msg)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&envelope)
		return &statusError{code: res.StatusCode, msg: envelope.Error}
	}

	if out != nil && res.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
