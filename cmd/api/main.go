// ABOUTME: Main entry point for the search frontend server
// ABOUTME: Parses flags, wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"search-frontend-api/api"
	"search-frontend-api/api/handlers"
	"search-frontend-api/api/views"
	"search-frontend-api/core/interfaces"
	"search-frontend-api/core/search"
	stdhttp "search-frontend-api/infrastructure/http/standard"
	"search-frontend-api/infrastructure/logger/structured"
	"search-frontend-api/infrastructure/upstream"
	"search-frontend-api/pkg/config"
	"search-frontend-api/pkg/featureflags"
)

func main() {
	app := newCommand(serve)

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newCommand builds the root command. action receives the loaded, flag-adjusted configuration.
func newCommand(action func(ctx context.Context, cfg *config.Config) error) *cli.Command {
	return &cli.Command{
		Name:  "search-frontend",
		Usage: "Privacy-friendly search pages backed by the upstream JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "Port to listen on (overrides PORT)",
			},
			&cli.StringFlag{
				Name:  "upstream-url",
				Usage: "Upstream API base URL (overrides UPSTREAM_BASE_URL)",
			},
			&cli.StringFlag{
				Name:  "user-agent",
				Usage: "User-Agent sent upstream (overrides UPSTREAM_USER_AGENT)",
			},
			&cli.DurationFlag{
				Name:  "upstream-timeout",
				Usage: "Upstream request timeout (overrides UPSTREAM_TIMEOUT)",
			},
			&cli.FloatFlag{
				Name:  "upstream-rate",
				Usage: "Outbound requests per second, 0 disables throttling (overrides UPSTREAM_RATE_LIMIT)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error (overrides LOG_LEVEL)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text or json (overrides LOG_FORMAT)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Also write logs to this rotated file (overrides LOG_FILE)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			applyFlags(cmd, cfg)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return action(ctx, cfg)
		},
	}
}

// applyFlags overrides configuration values with explicitly set flags
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("port") {
		cfg.Server.Port = cmd.String("port")
	}
	if cmd.IsSet("upstream-url") {
		cfg.Upstream.BaseURL = cmd.String("upstream-url")
	}
	if cmd.IsSet("user-agent") {
		cfg.Upstream.UserAgent = cmd.String("user-agent")
	}
	if cmd.IsSet("upstream-timeout") {
		cfg.Upstream.Timeout = cmd.Duration("upstream-timeout")
	}
	if cmd.IsSet("upstream-rate") {
		cfg.Upstream.RateLimit = cmd.Float("upstream-rate")
	}
	if cmd.IsSet("log-level") {
		cfg.Logging.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Logging.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		cfg.Logging.File = cmd.String("log-file")
	}
}

// newRouter wires every component behind the HTTP router
func newRouter(cfg *config.Config, logger interfaces.Logger, flags featureflags.Manager) (http.Handler, error) {
	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Upstream.Timeout,
		stdhttp.WithUserAgent(cfg.Upstream.UserAgent),
		stdhttp.WithTransport(stdhttp.NewLoggingRoundTripper(http.DefaultTransport, logger)),
	)

	deps := interfaces.Dependencies{
		Upstream: upstream.NewClient(
			httpClient,
			cfg.Upstream.BaseURL,
			upstream.NewLimiter(cfg.Upstream.RateLimit, cfg.Upstream.Burst),
			upstream.WithDeadline(cfg.Upstream.Timeout),
		),
		Logger: logger,
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	searchService := search.NewSearchService(deps, flags)
	searchHandler := handlers.NewSearchHandler(searchService, renderer, logger)

	_, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger: logger,
		Flags:  flags,
		Search: searchHandler,
	})

	return router, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := structured.NewLogger(cfg.Logging)
	flags := featureflags.NewEnvManager("")

	logger.Info("Starting search frontend", map[string]interface{}{
		"port":          cfg.Server.Port,
		"upstream":      cfg.Upstream.BaseURL,
		"upstream_rate": cfg.Upstream.RateLimit,
		"flags":         flags.GetAllFlags(),
	})

	router, err := newRouter(cfg, logger, flags)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}
