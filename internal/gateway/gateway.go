package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"shareit/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const userHeader = "X-Sharer-User-Id"

// Server is the gateway tier: it checks request shape, rate-limits
// callers and forwards everything else to the business tier untouched.
type Server struct {
	cfg     *config.Config
	proxy   *proxy
	limiter limiter
	logger  zerolog.Logger
	server  *http.Server
}

// New builds the gateway. redisClient may be nil; rate limiting then runs
// entirely on the in-process fallback.
func New(cfg *config.Config, redisClient *redis.Client, logger *zerolog.Logger) *Server {
	componentLogger := logger.With().Str("component", "gateway").Logger()

	var primary limiter
	if redisClient != nil {
		primary = newRedisLimiter(redisClient, cfg.Gateway.RateLimit)
	}
	srv := &Server{
		cfg:     cfg,
		proxy:   newProxy(cfg.Gateway.ServerURL, componentLogger),
		limiter: newFailoverLimiter(primary, newLocalLimiter(cfg.Gateway.RateLimit), componentLogger),
		logger:  componentLogger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(srv.logger))
	r.Use(srv.rateLimit)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", srv.pass)
		r.Post("/", srv.withBody(validateNewUser))
		r.Get("/{userID}", srv.pass)
		r.Patch("/{userID}", srv.withBody(validateUserPatch))
		r.Delete("/{userID}", srv.pass)
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/", srv.withUserAndPaging)
		r.Post("/", srv.withUserAndBody(validateNewItem))
		r.Get("/search", srv.withPaging)
		r.Get("/{itemID}", srv.withUser)
		r.Patch("/{itemID}", srv.withUserAndBody(validateItemPatch))
		r.Post("/{itemID}/comment", srv.withUserAndBody(validateComment))
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", srv.withUserAndBody(validateNewBooking))
		r.Get("/", srv.listBookings)
		r.Get("/owner", srv.listBookings)
		r.Get("/{bookingID}", srv.withUser)
		r.Patch("/{bookingID}", srv.approveBooking)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", srv.withUserAndBody(validateNewRequest))
		r.Get("/", srv.withUser)
		r.Get("/all", srv.withUserAndPaging)
		r.Get("/{requestID}", srv.withUser)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Gateway.Port),
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
	s.logger.Info().Str("addr", s.server.Addr).Msg("gateway listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// pass forwards without any checks.
func (s *Server) pass(w http.ResponseWriter, r *http.Request) {
	s.proxy.forward(w, r, nil)
}

func (s *Server) withUser(w http.ResponseWriter, r *http.Request) {
	if err := requireUserID(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.proxy.forward(w, r, nil)
}

func (s *Server) withPaging(w http.ResponseWriter, r *http.Request) {
	if err := validatePageParams(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.proxy.forward(w, r, nil)
}

func (s *Server) withUserAndPaging(w http.ResponseWriter, r *http.Request) {
	if err := requireUserID(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validatePageParams(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.proxy.forward(w, r, nil)
}

// withBody reads the body, runs the shape check, then forwards the same
// bytes upstream.
func (s *Server) withBody(validate func([]byte) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeBadRequest(w, "failed to read request body")
			return
		}
		if err := validate(body); err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		s.proxy.forward(w, r, body)
	}
}

func (s *Server) withUserAndBody(validate func([]byte) error) http.HandlerFunc {
	inner := s.withBody(validate)
	return func(w http.ResponseWriter, r *http.Request) {
		if err := requireUserID(r); err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		inner(w, r)
	}
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	if err := requireUserID(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateState(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validatePageParams(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.proxy.forward(w, r, nil)
}

func (s *Server) approveBooking(w http.ResponseWriter, r *http.Request) {
	if err := requireUserID(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if err := validateApproveParam(r); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	s.proxy.forward(w, r, nil)
}
