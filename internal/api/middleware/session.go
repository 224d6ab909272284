package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/graviti/shiptracker/internal/core/domain"
)

// SessionCookie carries the signed session token between requests.
const SessionCookie = "shiptracker_session"

// Authenticator resolves a session token to its session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Session gates a route on a live session and injects it into the context
// under "session". Page requests without one are sent to the login form;
// other methods get a 401.
func Session(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := sessionToken(c.Request())
			if token == "" {
				return deny(c)
			}

			sess, err := auth.Authenticate(c.Request().Context(), token)
			if errors.Is(err, domain.ErrSessionNotFound) {
				ClearSessionCookie(c)
				return deny(c)
			}
			if err != nil {
				return err
			}

			c.Set("session", sess)
			c.Set("username", sess.Username)
			return next(c)
		}
	}
}

// sessionToken prefers an Authorization bearer token over the cookie.
func sessionToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if ck, err := r.Cookie(SessionCookie); err == nil {
		return ck.Value
	}
	return ""
}

func deny(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodGet, http.MethodHead:
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "login required")
}

// SetSessionCookie stores token in an HttpOnly cookie that lives for maxAge
// seconds.
func SetSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie in the browser.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
