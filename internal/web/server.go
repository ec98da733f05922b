// Package web provides the HTTP server and JSON API for the fleet tracker.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/fairental/fleet/internal/config"
	"github.com/fairental/fleet/internal/fleet"
	"github.com/fairental/fleet/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Summarizer produces a notes summary, degrading internally on failure.
type Summarizer interface {
	Summarize(ctx context.Context, notes string) string
}

// Server is the HTTP server for the fleet-tracking API.
type Server struct {
	cfg        *config.Config
	vehicles   store.VehicleStorage
	kv         store.KVStorage
	summarizer Summarizer
	router     *chi.Mux
	server     *http.Server

	mu       sync.RWMutex
	settings fleet.ReminderSettings
}

// NewServer creates a Server with the reminder settings loaded at startup.
func NewServer(cfg *config.Config, vehicles store.VehicleStorage, kv store.KVStorage, summarizer Summarizer, settings fleet.ReminderSettings) *Server {
	s := &Server{
		cfg:        cfg,
		vehicles:   vehicles,
		kv:         kv,
		summarizer: summarizer,
		router:     chi.NewRouter(),
		settings:   settings,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders)
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/vehicles", s.handleListVehicles)
		r.Post("/vehicles", s.handleCreateVehicle)
		r.Put("/vehicles/{id}", s.handleUpdateVehicle)
		r.Delete("/vehicles/{id}", s.handleDeleteVehicle)

		r.Post("/vehicles/{id}/notes", s.handleAppendNote)
		r.Get("/vehicles/{id}/summary", s.handleSummarizeNotes)

		r.Post("/vehicles/import", s.handleImport)
		r.Post("/vehicles/export", s.handleExport)
		r.Post("/vehicles/export/today", s.handleExportToday)

		r.Get("/settings/reminders", s.handleGetReminders)
		r.Put("/settings/reminders", s.handlePutReminders)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// reminderSettings returns the current reminder windows.
func (s *Server) reminderSettings() fleet.ReminderSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// writeError writes a JSON error response and logs it server-side.
func writeError(w http.ResponseWriter, status int, message string) {
	slog.Warn("request failed", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

// writeJSONStatus is writeJSON with a non-200 status. The Content-Type header
// must be set before WriteHeader or it is dropped.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
