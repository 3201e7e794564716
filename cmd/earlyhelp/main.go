package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/config"
	"github.com/kailas-cloud/earlyhelp/internal/db"
	dbBadger "github.com/kailas-cloud/earlyhelp/internal/db/badger"
	dbPostgres "github.com/kailas-cloud/earlyhelp/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/earlyhelp/internal/db/redis"
	logpkg "github.com/kailas-cloud/earlyhelp/internal/logger"
	"github.com/kailas-cloud/earlyhelp/internal/metrics"
	contentrepo "github.com/kailas-cloud/earlyhelp/internal/repository/content"
	sessionrepo "github.com/kailas-cloud/earlyhelp/internal/repository/session"
	chiTransport "github.com/kailas-cloud/earlyhelp/internal/transport/chi"
	checklistuc "github.com/kailas-cloud/earlyhelp/internal/usecase/checklist"
	favoritesuc "github.com/kailas-cloud/earlyhelp/internal/usecase/favorites"
	glossaryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/glossary"
	healthuc "github.com/kailas-cloud/earlyhelp/internal/usecase/health"
	libraryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/library"
	navigatoruc "github.com/kailas-cloud/earlyhelp/internal/usecase/navigator"
	"github.com/kailas-cloud/earlyhelp/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting earlyhelp API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("postgres", pgConfig(cfg.Postgres).Redact()),
		zap.String("sessions_driver", cfg.Sessions.Driver),
	)

	ctx := context.Background()

	// Content database
	pool, err := dbPostgres.NewPool(ctx, pgConfig(cfg.Postgres), logger)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.WaitForReady(ctx, pool, time.Duration(cfg.Postgres.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Postgres not ready", zap.Error(err))
	}
	if cfg.Postgres.AutoMigrate {
		if err := dbPostgres.Migrate(ctx, pool); err != nil {
			logger.Fatal("Failed to migrate schema", zap.Error(err))
		}
		logger.Info("Schema migrated")
	}

	// Session store
	store, err := openSessionStore(cfg.Sessions, logger)
	if err != nil {
		logger.Fatal("Failed to create session store", zap.Error(err))
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Sessions.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Session store not ready", zap.Error(err))
	}
	logger.Info("Connected to session store")

	// Register content metrics explicitly (no init())
	metrics.RegisterContentMetrics()

	// Repositories
	entries := contentrepo.NewEntries(pool)
	categories := contentrepo.NewCategories(pool)
	glossary := contentrepo.NewGlossary(pool)
	contacts := contentrepo.NewContacts(pool)
	progress := sessionrepo.NewProgressStore(store, cfg.Sessions.KeyPrefix, cfg.Sessions.TTL(), logger)
	favorites := sessionrepo.NewFavoritesStore(store, cfg.Sessions.KeyPrefix, cfg.Sessions.TTL(), logger)

	// Use case services
	libSvc := libraryuc.New(entries, categories, libraryuc.Listing{
		DefaultLimit: cfg.Listing.DefaultPageSize,
		MaxLimit:     cfg.Listing.MaxPageSize,
	})
	glossarySvc := glossaryuc.New(glossary, cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	navigatorSvc := navigatoruc.New(contacts, cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	checklistSvc := checklistuc.New(progress)
	favoritesSvc := favoritesuc.New(favorites, libSvc)
	healthSvc := healthuc.New(pool, store)

	server := chiTransport.NewServer(
		libSvc, glossarySvc, navigatorSvc, checklistSvc, favoritesSvc, healthSvc, logger,
	)

	if !cfg.AdminAuthEnabled() {
		logger.Warn("Admin authentication disabled: no api_keys or jwt_secret configured")
	}
	handler := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		APIKeys:   cfg.Auth.APIKeys,
		JWTSecret: cfg.Auth.JWTSecret,
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func pgConfig(c config.PostgresConfig) dbPostgres.Config {
	return dbPostgres.Config{
		Host:     c.Host,
		Port:     strconv.Itoa(c.Port),
		User:     c.User,
		Password: c.Password,
		DBName:   c.DBName,
		SSLMode:  c.SSLMode,
		MaxConns: c.MaxConns,
	}
}

// openSessionStore creates the KV store backing checklist sessions and favorites.
func openSessionStore(c config.SessionsConfig, logger *zap.Logger) (db.Store, error) {
	switch c.Driver {
	case config.DriverRedis, config.DriverValkey:
		return dbRedis.NewStore(dbRedis.Config{
			Addrs:    c.Addrs,
			Username: c.Username,
			Password: c.Password,
			DB:       c.DB,
		})
	case config.DriverBadger:
		return dbBadger.Open(dbBadger.Config{
			Path:     c.Path,
			InMemory: c.InMemory,
			Logger:   logger,
		})
	default:
		return nil, fmt.Errorf("unknown session driver %q", c.Driver)
	}
}
