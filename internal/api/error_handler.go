package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/api/handler"
	"github.com/graviti/shiptracker/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Turns a missing dataset or selection into the advisory page, not an error.
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrNoData) || errors.Is(err, domain.ErrNoSelection) {
			page := handler.AdvisoryPage(c, handler.ActiveView(c.Path()), handler.AdvisoryNoData)
			render(c, http.StatusOK, handler.TemplateAdvisory, page, log)
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		render(c, code, handler.TemplateError, handler.ErrorPage(c, code, msg), log)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrSchemaMismatch):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrUnknownVessel):
		return http.StatusNotFound, "the selected MMSI is not in the uploaded data"
	case errors.Is(err, domain.ErrUnknownChart):
		return http.StatusNotFound, "chart not found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// render falls back to plain text when the page itself cannot be rendered.
func render(c echo.Context, code int, name string, page handler.Page, log zerolog.Logger) {
	if err := c.Render(code, name, page); err != nil {
		log.Error().Err(err).Str("template", name).Msg("error page render failed")
		if !c.Response().Committed {
			msg := page.Message
			if msg == "" {
				msg = http.StatusText(code)
			}
			_ = c.String(code, msg)
		}
	}
}
