package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/acadeval/encuestas/internal/server/http"
	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/internal/server/storage"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/internal/server/store/sqlite"
	"github.com/acadeval/encuestas/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v1.0.0"

// Application wires the store, services and HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	objects storage.ObjectStore

	tokenService      *service.TokenService
	authService       *service.AuthService
	twoFactorService  *service.TwoFactorService
	userService       *service.UserService
	facultyService    *service.FacultyService
	professorService  *service.ProfessorService
	surveyService     *service.SurveyService
	criterionService  *service.CriterionService
	evaluationService *service.EvaluationService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "encuestas",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initObjectStore(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the server and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("server starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown drains in-flight requests and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("server stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied")
	return nil
}

func (app *Application) initObjectStore() error {
	switch app.cfg.StorageBackend {
	case "minio":
		objects, err := storage.NewMinioStore(context.Background(), storage.MinioConfig{
			Endpoint:  app.cfg.MinioEndpoint,
			AccessKey: app.cfg.MinioAccessKey,
			SecretKey: app.cfg.MinioSecretKey,
			Bucket:    app.cfg.MinioBucket,
			UseSSL:    app.cfg.MinioUseSSL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize minio storage: %w", err)
		}
		app.objects = objects
		app.logger.Info("object storage ready", "backend", "minio", "bucket", app.cfg.MinioBucket)
	default:
		objects, err := storage.NewDiskStore(app.cfg.UploadsDir)
		if err != nil {
			return fmt.Errorf("failed to initialize disk storage: %w", err)
		}
		app.objects = objects
		app.logger.Info("object storage ready", "backend", "disk", "dir", app.cfg.UploadsDir)
	}
	return nil
}

func (app *Application) initServices() {
	app.tokenService = &service.TokenService{
		AccessKey:  []byte(app.cfg.JWTSecret),
		RefreshKey: []byte(app.cfg.JWTRefreshSecret),
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
		RefreshTTL: app.cfg.RefreshTokenTTL,
	}

	app.authService = &service.AuthService{Store: app.db, Tokens: app.tokenService}
	app.twoFactorService = &service.TwoFactorService{Store: app.db, Issuer: app.cfg.Issuer}
	app.userService = &service.UserService{Store: app.db}
	app.facultyService = &service.FacultyService{Store: app.db}
	app.professorService = &service.ProfessorService{Store: app.db, Objects: app.objects}
	app.surveyService = &service.SurveyService{Store: app.db}
	app.criterionService = &service.CriterionService{Store: app.db}
	app.evaluationService = &service.EvaluationService{Store: app.db}
}

func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(app.db, app.logger, app.cfg.CORSOrigins)
	app.router.TokenService = app.tokenService
	app.router.AuthService = app.authService
	app.router.TwoFactorService = app.twoFactorService
	app.router.UserService = app.userService
	app.router.FacultyService = app.facultyService
	app.router.ProfessorService = app.professorService
	app.router.SurveyService = app.surveyService
	app.router.CriterionService = app.criterionService
	app.router.EvaluationService = app.evaluationService
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
