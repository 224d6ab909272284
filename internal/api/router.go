package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/api/handler"
	"github.com/graviti/shiptracker/internal/api/middleware"
	"github.com/graviti/shiptracker/internal/core/domain"
	"github.com/graviti/shiptracker/internal/core/ports"
)

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	AuthService   ports.AuthService
	TrackService  ports.TrackService
	ReportService ports.ReportService
	Charts        ports.ChartRenderer
	Branding      *domain.Branding

	// HealthChecks are pinged by the readiness probe, keyed by backend name.
	HealthChecks map[string]handler.PingFunc

	SessionTTL     time.Duration
	UploadMaxBytes int64
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	showLogo := deps.Branding != nil && len(deps.Branding.Logo) > 0
	templates, err := NewTemplates(showLogo)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = templates
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.Secure())
	if deps.UploadMaxBytes > 0 {
		e.Use(echomiddleware.BodyLimit(fmt.Sprintf("%dB", deps.UploadMaxBytes)))
	}
	e.Use(middleware.Metrics())

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.SessionTTL, deps.Logger)
	trackHandler := handler.NewTrackHandler(deps.TrackService, deps.Logger)
	viewHandler := handler.NewViewHandler(deps.TrackService, deps.ReportService, deps.Logger)
	chartHandler := handler.NewChartHandler(deps.TrackService, deps.Charts)

	// --- Public routes ---
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	if showLogo {
		logo, logoType := deps.Branding.Logo, logoMIME(deps.Branding.LogoType)
		e.GET("/branding/logo", func(c echo.Context) error {
			return c.Blob(http.StatusOK, logoType, logo)
		})
	}

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Session-gated views ---
	g := e.Group("", middleware.Session(deps.AuthService))
	g.GET("/", trackHandler.Index)
	g.POST("/logout", authHandler.Logout)

	g.GET("/upload", trackHandler.UploadPage)
	g.POST("/upload", trackHandler.Upload)
	g.POST("/select", trackHandler.Select)
	g.GET("/export/data.csv", trackHandler.ExportData)

	g.GET("/route", viewHandler.Route)
	g.GET("/speed", viewHandler.Speed)
	g.GET("/codes", viewHandler.Codes)
	g.GET("/export/codes.csv", viewHandler.ExportCodes)
	g.GET("/report", viewHandler.ReportPage)
	g.POST("/report", viewHandler.GenerateReport)

	g.GET("/charts/:name", chartHandler.Chart)

	return e, nil
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func logoMIME(imageType string) string {
	switch imageType {
	case "JPG":
		return "image/jpeg"
	case "GIF":
		return "image/gif"
	}
	return "image/png"
}
