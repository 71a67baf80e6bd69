package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/textscanner/internal/config"
	"github.com/heartmarshall/textscanner/internal/transport/middleware"
	"github.com/heartmarshall/textscanner/internal/transport/rest"
)

type explainService interface {
	Explain(ctx context.Context, text string) (string, error)
}

// RelayHandler is the fully wrapped HTTP handler of the relay server.
type RelayHandler struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close stops the rate limiter's cleanup goroutine.
func (h *RelayHandler) Close() {
	h.limiter.Stop()
}

// NewRelayHandler mounts POST /explain behind RequestID, Recovery, Logger,
// CORS and RateLimit. GET /health shares only the first three so the
// liveness probe answers regardless of origin or quota.
func NewRelayHandler(cfg *config.Config, logger *slog.Logger, svc explainService, version string) (*RelayHandler, error) {
	showDetails := cfg.IsDevelopment()

	explainHandler := rest.NewExplainHandler(svc, logger, cfg.Server.MaxBodyBytes, showDetails)
	healthHandler := rest.NewHealthHandler(version)

	cors, err := middleware.CORS(cfg.CORS, logger)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests, cfg.RateLimit.CleanupInterval)

	api := http.NewServeMux()
	api.HandleFunc("POST /explain", explainHandler.Explain)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", healthHandler.Live)
	root.Handle("/", middleware.Chain(cors, limiter.Limit(logger))(api))

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger, showDetails),
		middleware.Logger(logger),
	)

	return &RelayHandler{Handler: chain(root), limiter: limiter}, nil
}
