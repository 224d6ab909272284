package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/graviti/shiptracker/internal/core/domain"
)

type stubAuthenticator struct {
	sessions map[string]*domain.Session
	err      error
}

func (a *stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.Session, error) {
	if a.err != nil {
		return nil, a.err
	}
	s, ok := a.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func newAuth() *stubAuthenticator {
	return &stubAuthenticator{sessions: map[string]*domain.Session{
		"good": {ID: "s1", Username: "alice", Authenticated: true},
	}}
}

func TestSessionMiddleware_Cookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/route", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(newAuth())(func(c echo.Context) error {
		called = true
		sess, ok := c.Get("session").(*domain.Session)
		if !ok || sess.ID != "s1" {
			t.Fatalf("session not set")
		}
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionMiddleware_BearerToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/select", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(newAuth())(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestSessionMiddleware_MissingTokenRedirectsPages(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/speed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(newAuth())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestSessionMiddleware_UnknownSessionOnPost(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(newAuth())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), SessionCookie+"=;") {
		t.Fatalf("expected stale cookie to be cleared, got %q", rec.Header().Get("Set-Cookie"))
	}
}

func TestSessionMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(newAuth())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
}

func TestSessionMiddleware_BackendError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	boom := errors.New("redis down")
	handler := Session(&stubAuthenticator{err: boom})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
