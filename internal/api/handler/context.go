package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// ctxSession returns the session injected by the Session middleware. Its
// absence means the route was registered outside the gate.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get("session").(*domain.Session)
	if sess == nil || !sess.Authenticated {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
