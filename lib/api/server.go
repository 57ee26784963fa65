// Package api exposes the modem actions over a small local REST facade so
// home-automation systems can trigger them with plain HTTP calls.
package api

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/modem"
)

// Server serves the REST facade for a single modem. Actions are serialized
// with a mutex: the device allows one request in flight.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server

	mu    sync.Mutex
	dev   modem.Modem
	model string
	addr  string
}

// NewServer creates the API server around an already constructed device.
func NewServer(bindAddr string, dev modem.Modem, model, deviceAddr string) *Server {
	s := &Server{
		router: chi.NewRouter(),
		dev:    dev,
		model:  model,
		addr:   deviceAddr,
	}

	// Setup middleware
	s.router.Use(RecoveryMiddleware)
	s.router.Use(LoggingMiddleware)
	s.router.Use(CORSMiddleware)
	s.router.Use(ContentTypeMiddleware)

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         bindAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Post("/reboot", s.handleReboot)
		r.Get("/page/{page}", s.handlePage)

		r.Route("/wifi", func(r chi.Router) {
			r.Post("/reset", s.handleWifiReset)
			r.Post("/channel", s.handleWifiChannel)
		})
	})

	// Health check endpoint at root
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// Start starts the API server and blocks until it shuts down.
func (s *Server) Start() error {
	log.Infof("[API] Serving modem %s (%s) on %s", s.addr, s.model, s.httpServer.Addr)
	log.Infof("[API] Example: curl http://%s/api/v1/status", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
