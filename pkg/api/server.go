// Package api exposes the word codec over HTTP: encode and decode endpoints,
// named wordlist management, health and prometheus metrics.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the HTTP routing for a server. /health and /metrics are
// unprotected; everything under /api/v1 requires the configured API key, when
// one is set.
func NewRouter(server *Server) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", server.metrics.InstrumentHandler("GET", "/health", server.handleHealth))

	r.Route("/api/v1", func(r chi.Router) {
		if server.config.APIKey != "" {
			r.Use(apiKeyMiddleware(server.config.APIKey, server.metrics))
		}

		r.Post("/encode", server.metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
		r.Post("/decode", server.metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))

		r.Get("/wordlists", server.metrics.InstrumentHandler("GET", "/api/v1/wordlists", server.requireRegistry(server.handleListWordlists)))
		r.Put("/wordlists/{name}", server.metrics.InstrumentHandler("PUT", "/api/v1/wordlists/{name}", server.requireRegistry(server.handlePutWordlist)))
		r.Get("/wordlists/{name}", server.metrics.InstrumentHandler("GET", "/api/v1/wordlists/{name}", server.requireRegistry(server.handleGetWordlist)))
		r.Delete("/wordlists/{name}", server.metrics.InstrumentHandler("DELETE", "/api/v1/wordlists/{name}", server.requireRegistry(server.handleDeleteWordlist)))
	})

	return r
}

// StartServer builds the router and serves it on the configured address.
func StartServer(server *Server) error {
	addr := fmt.Sprintf("%s:%d", server.config.Bind, server.config.Port)
	fmt.Printf("hrseed API listening on %s\n", addr)
	return http.ListenAndServe(addr, NewRouter(server))
}
