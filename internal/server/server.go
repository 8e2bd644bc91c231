package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"shareit/internal/config"
	"shareit/internal/database"
	"shareit/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// userHeader carries the acting user's id on every request that needs one.
const userHeader = "X-Sharer-User-Id"

// Server is the business tier's HTTP surface.
type Server struct {
	cfg      *config.Config
	services *service.Services
	backup   *database.BackupService
	exporter *bookingExporter
	logger   zerolog.Logger
	server   *http.Server
}

func New(cfg *config.Config, services *service.Services, backup *database.BackupService,
	db *database.DB, logger *zerolog.Logger) *Server {

	srv := &Server{
		cfg:      cfg,
		services: services,
		backup:   backup,
		logger:   logger.With().Str("component", "server").Logger(),
	}
	srv.exporter = newBookingExporter(db, cfg.Exports, logger)

	r := chi.NewRouter()
	r.Use(requestLogger(srv.logger, "server"))

	r.Route("/users", func(r chi.Router) {
		r.Get("/", srv.listUsers)
		r.Post("/", srv.createUser)
		r.Get("/{userID}", srv.getUser)
		r.Patch("/{userID}", srv.updateUser)
		r.Delete("/{userID}", srv.deleteUser)
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/", srv.listItems)
		r.Post("/", srv.createItem)
		r.Get("/search", srv.searchItems)
		r.Get("/{itemID}", srv.getItem)
		r.Patch("/{itemID}", srv.updateItem)
		r.Post("/{itemID}/comment", srv.addComment)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", srv.createBooking)
		r.Get("/", srv.listBookingsByBooker)
		r.Get("/owner", srv.listBookingsByOwner)
		r.Get("/{bookingID}", srv.getBooking)
		r.Patch("/{bookingID}", srv.approveBooking)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", srv.createRequest)
		r.Get("/", srv.listOwnRequests)
		r.Get("/all", srv.listOtherRequests)
		r.Get("/{requestID}", srv.getRequest)
	})

	r.Get("/health", srv.health)
	r.Route("/admin", func(r chi.Router) {
		r.Post("/backup", srv.runBackup)
		r.Get("/export/bookings", srv.exportBookings)
	})

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	return srv
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("http server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// userID reads the acting user's id from the request header. The header
// is trusted; only its presence and numeric shape are checked here.
func userID(r *http.Request) (int64, error) {
	raw := r.Header.Get(userHeader)
	if raw == "" {
		return 0, fmt.Errorf("%s header is required", userHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s header must be a number", userHeader)
	}
	return id, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return id, nil
}

// pageParams reads from/size with the contract's defaults.
func pageParams(r *http.Request) (from, size int, err error) {
	from, size = 0, 10
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = strconv.Atoi(raw)
		if err != nil || from < 0 {
			return 0, 0, fmt.Errorf("from must be a non-negative number")
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return 0, 0, fmt.Errorf("size must be a positive number")
		}
	}
	return from, size, nil
}
