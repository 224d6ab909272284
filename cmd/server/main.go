package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/graviti/shiptracker/internal/api"
	"github.com/graviti/shiptracker/internal/api/handler"
	"github.com/graviti/shiptracker/internal/api/metrics"
	"github.com/graviti/shiptracker/internal/core/ports"
	"github.com/graviti/shiptracker/internal/core/service"
	"github.com/graviti/shiptracker/internal/infrastructure/archive"
	"github.com/graviti/shiptracker/internal/infrastructure/chart"
	"github.com/graviti/shiptracker/internal/infrastructure/config"
	"github.com/graviti/shiptracker/internal/infrastructure/csvio"
	"github.com/graviti/shiptracker/internal/infrastructure/db/memory"
	mongostore "github.com/graviti/shiptracker/internal/infrastructure/db/mongo"
	redisstore "github.com/graviti/shiptracker/internal/infrastructure/db/redis"
	"github.com/graviti/shiptracker/internal/infrastructure/pdf"
	"github.com/graviti/shiptracker/internal/infrastructure/queue"
	"github.com/graviti/shiptracker/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "shiptracker",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	checks := make(map[string]handler.PingFunc)

	// --- Session store ---
	var sessions ports.SessionRepository
	if cfg.UsesRedis() {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, Timeout: cfg.Redis.Timeout})
		if err != nil {
			return err
		}
		defer rdb.Close()
		sessions = redisstore.NewSessionStore(rdb, cfg.Session.TTL)
		checks["redis"] = redisstore.Ping(rdb, cfg.Redis.Timeout)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	} else {
		sessions = memory.NewSessionStore(cfg.Session.TTL)
		log.Info().Msg("sessions stored in memory")
	}

	// --- Credential verifier ---
	var verifier ports.CredentialVerifier
	if cfg.UsesMongo() {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		users := mongostore.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			return err
		}
		verifier = service.NewStoreVerifier(users)
		checks["mongo"] = mongostore.Ping(client)
		log.Info().Str("database", cfg.Mongo.Database).Msg("credentials checked against mongo")
	} else {
		static, err := service.NewStaticVerifier(cfg.Auth.Username, cfg.Auth.Password)
		if err != nil {
			return err
		}
		verifier = static
		log.Info().Str("username", cfg.Auth.Username).Msg("single static account configured")
	}

	// --- Report branding ---
	branding, err := service.LoadBranding(cfg.Branding.LogoPath, cfg.Branding.Subtitle, cfg.Branding.Tagline)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Branding.LogoPath).Msg("logo unavailable, reports carry text branding only")
		branding, _ = service.LoadBranding("", cfg.Branding.Subtitle, cfg.Branding.Tagline)
	}

	// --- Report archive ---
	var archiver ports.ReportArchiver
	if cfg.Report.ArchiveDir != "" {
		dispatcher := queue.NewDispatcher(0, archive.NewDirStore(cfg.Report.ArchiveDir), log)
		dispatcher.Start(context.Background())
		defer dispatcher.Stop()
		archiver = dispatcher
		log.Info().Str("dir", cfg.Report.ArchiveDir).Msg("generated reports are archived")
	}

	// --- Services ---
	charts := metrics.InstrumentChartRenderer(chart.NewRenderer())
	authService := service.NewAuthService(verifier, sessions, cfg.Session.Secret, cfg.Session.TTL, log)
	trackService := service.NewTrackService(sessions, csvio.NewTrackDecoder(), log)
	reportService := service.NewReportService(charts, pdf.NewWriter(log), branding, archiver, log)

	e, err := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		TrackService:   trackService,
		ReportService:  reportService,
		Charts:         charts,
		Branding:       branding,
		HealthChecks:   checks,
		SessionTTL:     authService.TokenTTL(),
		UploadMaxBytes: cfg.UploadMaxBytes,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
