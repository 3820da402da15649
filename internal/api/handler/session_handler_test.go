package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/session"
)

func TestSessionHandler_Current_Admin(t *testing.T) {
	handler := NewSessionHandler()

	c, rec := newTestContext(t, http.MethodGet, "/v1/session", "")
	c.Set("user_id", "u1")
	c.Set("email", "admin@example.com")
	c.Set("session", session.Session{UserID: "u1", Role: "admin"})

	if err := handler.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		UserID  string   `json:"user_id"`
		Role    string   `json:"role"`
		State   string   `json:"state"`
		Actions []string `json:"actions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Role != "admin" || resp.State != "admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}

	found := false
	for _, a := range resp.Actions {
		if a == string(session.ActionViewAnalytics) {
			found = true
		}
	}
	if !found {
		t.Fatalf("admin session missing analytics action: %v", resp.Actions)
	}
}

func TestSessionHandler_Current_UnresolvedRole(t *testing.T) {
	handler := NewSessionHandler()

	c, rec := newTestContext(t, http.MethodGet, "/v1/session", "")
	c.Set("user_id", "u1")
	c.Set("email", "someone@example.com")
	c.Set("session", session.Session{UserID: "u1"})

	if err := handler.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		State   string   `json:"state"`
		Actions []string `json:"actions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.State != "unresolved" {
		t.Fatalf("expected unresolved state, got %q", resp.State)
	}
	for _, a := range resp.Actions {
		if a == string(session.ActionViewAnalytics) || a == string(session.ActionBookListing) {
			t.Fatalf("unresolved session granted privileged action %s", a)
		}
	}
}

func TestSessionHandler_Current_MissingClaims(t *testing.T) {
	handler := NewSessionHandler()

	c, _ := newTestContext(t, http.MethodGet, "/v1/session", "")

	err := handler.Current(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
