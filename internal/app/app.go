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
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/config"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/middleware"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/article"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/auth"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/catalog"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/inquiry"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/order"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/portfolio"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/report"
	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/module/user"
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
// It sets up logging, the database, repositories, services, handlers,
// middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

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

	// AutoMigrate in debug mode only. Production schemas run the migrate
	// command explicitly.
	if cfg.Server.Mode == gin.DebugMode {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	modules := buildModules(db, cfg)

	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// In release mode, when no allowlist is configured, default to deny
	// cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	if err := RegisterRoutes(engine, &RouteDeps{
		Modules: modules,
		DB:      db,
		Auth:    cfg.Auth,
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

// buildModules performs the manual dependency injection for every business
// module: repository, then service, then handler, then module.
func buildModules(db *gorm.DB, cfg *config.Config) []Module {
	productRepo := catalog.NewProductRepository(db)
	categoryRepo := catalog.NewCategoryRepository(db)
	catalogSvc := catalog.NewService(productRepo, categoryRepo)

	articleRepo := article.NewArticleRepository(db)
	articleCategoryRepo := article.NewCategoryRepository(db)
	articleSvc := article.NewService(articleRepo, articleCategoryRepo)

	portfolioRepo := portfolio.NewItemRepository(db)
	portfolioCategoryRepo := portfolio.NewCategoryRepository(db)
	portfolioSvc := portfolio.NewService(portfolioRepo, portfolioCategoryRepo)

	orderRepo := order.NewRepository(db)
	orderSvc := order.NewService(orderRepo, productRepo)

	inquiryRepo := inquiry.NewRepository(db)
	inquirySvc := inquiry.NewService(inquiryRepo)

	userRepo := user.NewRepository(db)
	userSvc := user.NewService(userRepo)

	authSvc := auth.NewService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiryDuration())

	reportSvc := report.NewService(db)

	return []Module{
		auth.NewModule(auth.NewHandler(authSvc)),
		catalog.NewModule(catalog.NewHandler(catalogSvc)),
		article.NewModule(article.NewHandler(articleSvc)),
		portfolio.NewModule(portfolio.NewHandler(portfolioSvc)),
		order.NewModule(order.NewHandler(orderSvc)),
		inquiry.NewModule(inquiry.NewHandler(inquirySvc)),
		user.NewModule(user.NewHandler(userSvc)),
		report.NewModule(report.NewHandler(reportSvc)),
	}
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

	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logger.Error("database close error", slog.Any("error", err))
			} else {
				a.logger.Info("database connection closed")
			}
		}
	}

	a.logger.Info("server stopped")
	if err := a.logger.Close(); err != nil {
		slog.Error("logger close error", slog.Any("error", err))
	}

	return runErr
}
