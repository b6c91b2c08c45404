package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/charauth/internal/charauth/http"
	"github.com/aussiebroadwan/charauth/internal/charauth/service"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/aussiebroadwan/charauth/internal/charauth/store/drivers/memory"
	"github.com/aussiebroadwan/charauth/internal/charauth/store/drivers/sqlite"
	"github.com/aussiebroadwan/charauth/pkg/cryptox"
	"github.com/aussiebroadwan/charauth/pkg/jwtx"
	"github.com/aussiebroadwan/charauth/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the store, the services and the HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.Signer
	verifier *jwtx.Verifier

	credentials         *service.Credentials
	revocations         *service.RevocationRegistry
	gate                *service.Gate
	authService         *service.AuthService
	mfaService          *service.MFAService
	characterService    *service.CharacterService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. The
// bootstrap admin, if configured, exists once New returns.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "charauth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.InsecureJWTKey() {
		app.logger.Warn("JWT_KEY is not set, signing tokens with the insecure default key")
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}

	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()

	ctx := slogx.WithContext(context.Background(), app.logger)
	if _, err := app.bootstrapService.EnsureAdmin(ctx); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("charauth starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down charauth...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("charauth stopped")
	return nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

func (app *Application) initStore() error {
	switch app.cfg.StoreDriver {
	case StoreDriverSQLite:
		db, err := sqlite.NewStore(app.cfg.DatabaseFile)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	default:
		app.db = memory.NewStore()
		app.logger.Warn("using the in-memory store, all data is lost on restart")
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("store ready", "driver", app.cfg.StoreDriver)
	return nil
}

func (app *Application) initTokens() error {
	signer, err := jwtx.NewSigner(app.cfg.JWTKey, jwtx.Options{
		Issuer:     app.cfg.JWTIssuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
		RefreshTTL: app.cfg.RefreshTokenTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create token signer: %w", err)
	}

	verifier, err := jwtx.NewVerifier(app.cfg.JWTKey, nil)
	if err != nil {
		return fmt.Errorf("failed to create token verifier: %w", err)
	}

	app.signer = signer
	app.verifier = verifier
	return nil
}

func (app *Application) initServices() {
	app.credentials = &service.Credentials{
		Store:  app.db,
		Hasher: cryptox.NewHasher(app.cfg.BcryptCost, app.cfg.HashWorkers),
	}
	app.revocations = &service.RevocationRegistry{
		Store:     app.db,
		Retention: max(app.cfg.AccessTokenTTL, app.cfg.RefreshTokenTTL),
	}
	app.gate = &service.Gate{
		Revocations: app.revocations,
		Verifier:    app.verifier,
	}
	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: app.cfg.MFAIssuer,
	}
	app.authService = &service.AuthService{
		Credentials: app.credentials,
		Revocations: app.revocations,
		MFA:         app.mfaService,
		Issuer:      app.signer,
		Verifier:    app.verifier,
	}
	app.characterService = &service.CharacterService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Credentials: app.credentials,
		Email:       app.cfg.BootstrapAdminEmail,
		Password:    app.cfg.BootstrapAdminPassword,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.revocations,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Limits = httpapi.RateLimits{
		Strict:   app.cfg.RateLimits.Strict,
		Moderate: app.cfg.RateLimits.Moderate,
		Lenient:  app.cfg.RateLimits.Lenient,
	}
	router.AllowedOrigins = app.cfg.CORSAllowedOrigins
	router.Gate = app.gate
	router.Credentials = app.credentials
	router.Auth = app.authService
	router.MFA = app.mfaService
	router.Characters = app.characterService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
