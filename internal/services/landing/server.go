package landing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/flaskhub/landing/internal/platform/timeouts"
	"github.com/flaskhub/landing/internal/services/landing/content"
	"github.com/flaskhub/landing/internal/services/landing/platform/httpx"
	"github.com/flaskhub/landing/internal/services/landing/platform/observability"
	"github.com/flaskhub/landing/internal/services/landing/routepath"
)

// Config defines the inputs for the landing HTTP server.
type Config struct {
	HTTPAddr string
	// AssetBaseURL prefixes stylesheet links; empty means /static.
	AssetBaseURL  string
	EnableMetrics bool
	// APIVersion is reported by the health endpoint; empty means v1.
	APIVersion string
	// RateLimitPerMinute caps requests per client address; zero disables it.
	RateLimitPerMinute int
	// Logger receives request log lines; nil uses the standard logger.
	Logger *log.Logger
}

// Server hosts the landing HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handler struct {
	config      Config
	collections content.Collections
}

// NewHandler creates the HTTP handler for the landing page.
func NewHandler(config Config) (http.Handler, error) {
	collections := content.Default()
	if err := collections.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	h := &handler{config: config, collections: collections}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, h.staticHandler())
	mux.Handle(routepath.Health, allowPage(http.HandlerFunc(h.handleHealth)))
	mux.Handle(routepath.Liveness, allowPage(http.HandlerFunc(h.handleLiveness)))

	var metrics *observability.Metrics
	if config.EnableMetrics {
		metrics = observability.NewMetrics()
		mux.Handle(routepath.Metrics, metrics.Handler())
	}
	mux.HandleFunc(routepath.Root, h.handleRoot)

	chained := httpx.Chain(mux,
		httpx.RequestID(),
		observability.RequestLogger(config.Logger),
		httpx.RateLimit(httpx.RateLimitOptions{
			PerMinute: config.RateLimitPerMinute,
			Exempt:    []string{routepath.Health, routepath.Liveness, routepath.Metrics},
		}),
		httpx.RecoverPanic(),
	)
	return metrics.Wrap("landing", chained), nil
}

// NewServer builds a configured landing server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("landing server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("landing listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
