package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/api/metrics"
	"github.com/graviti/shiptracker/internal/api/middleware"
	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/ports"
)

const loginFailedMessage = "Invalid username or password. Please try again."

type AuthHandler struct {
	authService ports.AuthService
	cookieTTL   time.Duration
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL, logger: logger}
}

type loginRequest struct {
	Username string `form:"username" validate:"required,max=128"`
	Password string `form:"password" validate:"required,max=256"`
}

type loginView struct {
	Username string
	Error    string
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	p := newPage(nil, TemplateLogin, "Login to Ships Data Analysis")
	p.Body = loginView{}
	return c.Render(http.StatusOK, TemplateLogin, p)
}

// Login verifies the submitted credentials and opens a session. A rejected
// login re-renders the form with a message; there is no lockout.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return h.loginFailed(c, http.StatusBadRequest, req.Username, "invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		return h.loginFailed(c, http.StatusBadRequest, req.Username, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return h.loginFailed(c, http.StatusUnauthorized, req.Username, loginFailedMessage)
	}
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	middleware.SetSessionCookie(c, token, int(h.cookieTTL.Seconds()))
	return c.Redirect(http.StatusSeeOther, "/upload")
}

// Logout discards the session and its uploaded data.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess, err := ctxSession(c); err == nil {
		if err := h.authService.Logout(c.Request().Context(), sess.ID); err != nil {
			h.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("logout: session not removed")
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) loginFailed(c echo.Context, status int, username, msg string) error {
	p := newPage(nil, TemplateLogin, "Login to Ships Data Analysis")
	p.Body = loginView{Username: username, Error: msg}
	return c.Render(status, TemplateLogin, p)
}
