package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"

	"github.com/heartmarshall/textscanner/internal/config"
)

// CORSRejectedMessage is the error returned to origins outside the allow-list.
const CORSRejectedMessage = "Not allowed by CORS"

// CORS returns middleware that enforces the origin allow-list.
// Requests without an Origin header pass through untouched. Requests from an
// origin that matches none of the configured patterns are rejected with 403
// before reaching any later middleware. Preflight OPTIONS requests from
// allowed origins are answered with 204.
func CORS(cfg config.CORSConfig, logger *slog.Logger) (Middleware, error) {
	matchers, err := compileOrigins(cfg.Origins())
	if err != nil {
		return nil, err
	}
	methods := cfg.AllowedMethods
	headers := cfg.AllowedHeaders
	log := logger.With("middleware", "cors")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !lo.SomeBy(matchers, func(g glob.Glob) bool { return g.Match(origin) }) {
				log.WarnContext(r.Context(), "origin rejected", slog.String("origin", origin))
				writeError(w, http.StatusForbidden, errorBody{Error: CORSRejectedMessage})
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// compileOrigins turns literal origins and wildcard patterns into matchers.
// "*" matches any run of characters, so "https://*.railway.app" accepts
// every railway.app subdomain.
func compileOrigins(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("cors: compile origin %q: %w", p, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}
