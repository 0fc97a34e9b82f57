package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/httpapi"
)

const apiVersion = "1.0.0"

// Verifier reports whether the graph database is reachable.
type Verifier interface {
	Verify(ctx context.Context) error
}

type serverDeps struct {
	services *Services
	db       Verifier
	events   http.Handler
	metrics  http.Handler
	recorder httpapi.RequestRecorder
	clock    clockwork.Clock
}

func setupServer(config *Config, deps serverDeps) *http.Server {
	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{httpapi.RequestIDHeader},
	})

	handler := c.Handler(newHandler(deps))

	// Setup HTTP/2 server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// newHandler builds the routed API wrapped in request id and access log
// middleware.
func newHandler(deps serverDeps) http.Handler {
	mux := http.NewServeMux()

	registerServices(mux, deps.services)
	setupRoot(mux)
	setupHealthCheck(mux, deps.db)

	if deps.metrics != nil {
		mux.Handle("GET /metrics", deps.metrics)
	}
	if deps.events != nil {
		mux.Handle("GET /ws/events", deps.events)
	}

	return httpapi.RequestID(httpapi.AccessLog(deps.clock, deps.recorder)(mux))
}

func registerServices(mux *http.ServeMux, services *Services) {
	services.Teams.RegisterRoutes(mux)
	services.Players.RegisterRoutes(mux)
	services.Matches.RegisterRoutes(mux)
	services.Leagues.RegisterRoutes(mux)
	services.Seasons.RegisterRoutes(mux)
}

func setupRoot(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{
			"message": "Sportska natjecanja API",
			"version": apiVersion,
			"endpoints": map[string]string{
				"timovi":   "/api/tim",
				"igraci":   "/api/igrac",
				"utakmice": "/api/utakmica",
				"lige":     "/api/liga",
				"sezone":   "/api/sezona",
			},
		})
	})
}

func setupHealthCheck(mux *http.ServeMux, db Verifier) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := db.Verify(ctx); err != nil {
			httpapi.WriteJSON(w, r, http.StatusServiceUnavailable, httpapi.Envelope{"ok": false, "error": err.Error()})
			return
		}
		httpapi.WriteOK(w, r, http.StatusOK, nil)
	})
}
