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

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/estateops/backoffice/internal/config"
	"github.com/estateops/backoffice/internal/domain"
	"github.com/estateops/backoffice/internal/middleware"
	"github.com/estateops/backoffice/internal/module/auth"
	"github.com/estateops/backoffice/internal/module/city"
	"github.com/estateops/backoffice/internal/module/contact"
	"github.com/estateops/backoffice/internal/module/deal"
	"github.com/estateops/backoffice/internal/module/enquiry"
	"github.com/estateops/backoffice/internal/module/job"
	"github.com/estateops/backoffice/internal/module/task"
	"github.com/estateops/backoffice/internal/module/user"
	"github.com/estateops/backoffice/internal/pkg"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, domain repositories, services, handlers,
// middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.City{},
			&domain.Contact{},
			&domain.Deal{},
			&domain.Enquiry{},
			&domain.Job{},
			&domain.JobApplication{},
			&domain.Task{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Upload storage.
	uploads, err := pkg.NewUploader(cfg.Assets.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("setup upload dir: %w", err)
	}
	assetBaseURL := cfg.Assets.PublicBaseURL

	// 5. Manual dependency injection: repository → service → handler → module.
	userRepo := user.NewUserRepository(db)
	cityRepo := city.NewCityRepository(db)
	contactRepo := contact.NewContactRepository(db)
	dealRepo := deal.NewDealRepository(db)
	enquiryRepo := enquiry.NewEnquiryRepository(db)
	jobRepo := job.NewJobRepository(db)
	applicationRepo := job.NewApplicationRepository(db)
	taskRepo := task.NewTaskRepository(db)

	modules := []Module{
		user.NewModule(user.NewUserHandler(user.NewService(userRepo))),
		city.NewModule(city.NewCityHandler(city.NewService(cityRepo, uploads, assetBaseURL), uploads)),
		contact.NewModule(contact.NewContactHandler(contact.NewService(db, contactRepo))),
		deal.NewModule(deal.NewHandler(deal.NewService(dealRepo, contactRepo))),
		enquiry.NewModule(enquiry.NewHandler(enquiry.NewService(enquiryRepo))),
		job.NewModule(job.NewJobHandler(job.NewService(jobRepo, applicationRepo, uploads, assetBaseURL), uploads)),
		task.NewModule(task.NewHandler(task.NewService(taskRepo))),
	}

	// 6. Authentication.
	var authMiddleware gin.HandlerFunc
	if cfg.Auth.Enabled {
		jwtSvc, err := jwt.New(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("setup jwt service: %w", err)
		}

		tokenExpiry, err := time.ParseDuration(cfg.Auth.TokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("invalid auth.token_expiry: %w", err)
		}

		modules = append(modules, auth.NewModule(auth.NewHandler(auth.NewService(jwtSvc, userRepo, tokenExpiry))))
		authMiddleware = middleware.Auth(jwtSvc)
	}

	// 7. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 8. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:        modules,
		DB:             db,
		AuthMiddleware: authMiddleware,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		if a.logger != nil {
			a.logger.Info("server started", slog.String("addr", addr))
		} else {
			slog.Info("server started", slog.String("addr", addr))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		if a.logger != nil {
			a.logger.Info("shutdown signal received")
		} else {
			slog.Info("shutdown signal received")
		}
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if a.logger != nil {
				a.logger.Error("server shutdown error", slog.Any("error", err))
			} else {
				slog.Error("server shutdown error", slog.Any("error", err))
			}
		}
	}

	// Close database connection.
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				if a.logger != nil {
					a.logger.Error("database close error", slog.Any("error", err))
				} else {
					slog.Error("database close error", slog.Any("error", err))
				}
			} else {
				if a.logger != nil {
					a.logger.Info("database connection closed")
				} else {
					slog.Info("database connection closed")
				}
			}
		}
	}

	if a.logger != nil {
		a.logger.Info("server stopped")
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	} else {
		slog.Info("server stopped")
	}

	if runErr != nil {
		return runErr
	}

	return nil
}
