package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/session"
)

// SessionHandler exposes the resolved session snapshot so clients can render
// navigation without duplicating the gate rules.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

type sessionResponse struct {
	UserID  string           `json:"user_id"`
	Email   string           `json:"email"`
	Role    string           `json:"role"`
	State   string           `json:"state"`
	Actions []session.Action `json:"actions"`
}

// Current returns the authenticated identity, its resolved role, and the
// set of actions the navigation gate enables for it.
//
// @Summary      Current session
// @Tags         session
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	sess := ctxSession(c)
	return c.JSON(http.StatusOK, sessionResponse{
		UserID:  sess.UserID,
		Email:   email,
		Role:    sess.Role,
		State:   sess.State().String(),
		Actions: session.VisibleActions(sess),
	})
}
