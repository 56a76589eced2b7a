package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/landing/internal/application"
	"github.com/eugenenazirov/landing/internal/config"
	"github.com/eugenenazirov/landing/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	overrides, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "parse flags")

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to stop content watcher", zap.Error(err))
		}
	}()

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
	logger.Info("landing page ready",
		zap.String("port", cfg.Port),
		zap.String("content", cfg.ContentFile),
		zap.Bool("watch", cfg.WatchContent),
	)

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
}

// parseFlags maps command line flags onto config overrides. Only flags the
// user actually passed override lower-precedence sources.
func parseFlags(args []string) (*config.CLIOverrides, error) {
	app := kingpin.New("landing", "Landing page server - renders configurable marketing sections with editable field paths")

	var (
		set       = map[string]*bool{}
		overrides config.CLIOverrides
	)
	flag := func(name, help string) *kingpin.FlagClause {
		set[name] = new(bool)
		return app.Flag(name, help).IsSetByUser(set[name])
	}

	app.Flag("config", "Path to YAML configuration file").StringVar(&overrides.ConfigFile)
	port := flag("port", "HTTP port exposed by the service").String()
	content := flag("content", "Path to YAML content overrides").String()
	watch := flag("watch", "Reload content overrides when the file changes").Bool()
	origin := flag("origin", "Site origin used to recognise same-origin links, e.g. https://example.com").String()
	level := flag("log-level", "Log level: debug, info, warn, error").Enum("debug", "info", "warn", "error")
	rps := flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Float64()
	burst := flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Int()

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	if *set["port"] {
		overrides.Port = port
	}
	if *set["content"] {
		overrides.ContentFile = content
	}
	if *set["watch"] {
		overrides.WatchContent = watch
	}
	if *set["origin"] {
		overrides.SiteOrigin = origin
	}
	if *set["log-level"] {
		overrides.LogLevel = level
	}
	if *set["rate-limit-rps"] {
		overrides.RateLimitRPS = rps
	}
	if *set["rate-limit-burst"] {
		overrides.RateLimitBurst = burst
	}
	return &overrides, nil
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Info("shutting down server", zap.Stringer("signal", sig))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
