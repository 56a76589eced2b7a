package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/landing/internal/api"
	"github.com/eugenenazirov/landing/internal/config"
	"github.com/eugenenazirov/landing/internal/navigate"
	"github.com/eugenenazirov/landing/internal/render"
	"github.com/eugenenazirov/landing/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage  storage.Storage
	resolver *navigate.Resolver
	renderer *render.Renderer
	handler  *api.Handler
	router   http.Handler
	watcher  *storage.Watcher
	logger   *zap.Logger
	server   *http.Server

	cancel context.CancelFunc
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	origin, err := navigate.ParseOrigin(cfg.SiteOrigin)
	if err != nil {
		return nil, fmt.Errorf("failed to parse site origin: %w", err)
	}
	resolver := navigate.NewResolver(origin)

	store := storage.NewMemoryStorage(resolver)
	if cfg.ContentFile != "" {
		if err := storage.LoadFile(cfg.ContentFile, store); err != nil {
			return nil, fmt.Errorf("failed to load content overrides: %w", err)
		}
		logger.Info("content overrides loaded", zap.String("path", cfg.ContentFile))
	}
	if err := store.Page().Check(); err != nil {
		logger.Warn("content check reported issues", zap.Error(err))
	}

	var watcher *storage.Watcher
	if cfg.WatchContent {
		watcher, err = newWatcher(cfg.ContentFile, store, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to watch content overrides: %w", err)
		}
	}

	renderer, err := newRenderer(resolver)
	if err != nil {
		if watcher != nil {
			_ = watcher.Close()
		}
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}

	handler := api.NewHandler(store, renderer, resolver)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		storage:  store,
		resolver: resolver,
		renderer: renderer,
		handler:  handler,
		router:   router,
		watcher:  watcher,
		logger:   logger,
		server:   NewServer(cfg, router),
	}, nil
}

// Constructors swapped in tests to exercise construction failures.
var (
	newRenderer = render.New
	newWatcher  = storage.NewWatcher
)

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the content watcher, if any, and the HTTP server in goroutines.
func (a *App) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if a.watcher != nil {
		go a.watcher.Run(ctx)
	}

	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Close stops background work started by Start. The HTTP server is shut down
// separately through Server.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
