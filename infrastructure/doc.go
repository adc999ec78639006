// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication with the upstream API and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with retry logic and an outbound logging transport
// - upstream: JSON fetcher with base URL resolution, throttling and upstream error detection
// - logger/structured: logrus-backed structured logger with optional rotated file output
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(10*time.Second,
//	    standard.WithUserAgent("SearchFrontend/1.0"),
//	    standard.WithTransport(standard.NewLoggingRoundTripper(http.DefaultTransport, logger)),
//	)
//
// # Upstream
//
//	fetcher := upstream.NewClient(client, "https://www.reddit.com", upstream.NewLimiter(1, 3))
//	body, err := fetcher.FetchJSON(ctx, "/search.json?q=cats")
//
// # Logger
//
//	logger := structured.NewLogger(cfg.Logging)
//	logger.Info("Search completed", map[string]interface{}{
//	    "sub":   "golang",
//	    "posts": 25,
//	})
package infrastructure
