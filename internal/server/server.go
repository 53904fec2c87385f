// Package server provides the HTTP server setup and wiring.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pendergraft/veritrace/internal/auth"
	"github.com/pendergraft/veritrace/internal/chain"
	"github.com/pendergraft/veritrace/internal/config"
	directoryDomain "github.com/pendergraft/veritrace/internal/directory/domain"
	directoryTransport "github.com/pendergraft/veritrace/internal/directory/transport"
	"github.com/pendergraft/veritrace/internal/middleware/logging"
	"github.com/pendergraft/veritrace/internal/middleware/ratelimit"
	"github.com/pendergraft/veritrace/internal/middleware/realip"
	"github.com/pendergraft/veritrace/internal/middleware/security"
	"github.com/pendergraft/veritrace/internal/observability/metrics"
	registrationDomain "github.com/pendergraft/veritrace/internal/registration/domain"
	registrationTransport "github.com/pendergraft/veritrace/internal/registration/transport"
	"github.com/pendergraft/veritrace/internal/share"
	"github.com/pendergraft/veritrace/internal/storage"
	verificationDomain "github.com/pendergraft/veritrace/internal/verification/domain"
	verificationTransport "github.com/pendergraft/veritrace/internal/verification/transport"
)

// ContractGateway is the full contract surface the server wires into the
// domain services. *chain.Gateway satisfies it.
type ContractGateway interface {
	ProductAndVendorByCode(ctx context.Context, code string) (*chain.Product, *chain.Vendor, error)
	AllVendorDetails(ctx context.Context) ([]chain.Vendor, error)
	ProductsOfVendor(ctx context.Context, address string) ([]chain.Product, error)
	TotalProducts(ctx context.Context) (*big.Int, error)
	TotalVendors(ctx context.Context) (*big.Int, error)
	IsVendorRegistered(ctx context.Context, address string) (bool, error)
	RegisterVendor(ctx context.Context, name, companyName string, number int64, email, companyAddress string) (*types.Transaction, error)
	AddProduct(ctx context.Context, name, description string, price, stock int64, category string) (*types.Transaction, error)
	SignerAddress() string
}

// TxWaiter blocks until a submitted transaction reaches a terminal state.
// *chain.Watcher satisfies it.
type TxWaiter interface {
	Wait(ctx context.Context, tx *types.Transaction) chain.Confirmation
}

// Server is the HTTP server
type Server struct {
	cfg    *config.Config
	store  storage.Store
	logger *slog.Logger
	router *chi.Mux

	// Services typed via transport interfaces
	verificationSvc verificationTransport.Service
	directorySvc    directoryTransport.Service
	registrationSvc registrationTransport.Service

	shares *share.Generator
}

// New creates a new server
func New(cfg *config.Config, gateway ContractGateway, waiter TxWaiter, store storage.Store, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: logger,
		router: chi.NewRouter(),
		shares: share.NewGenerator(cfg.Share.PublicBaseURL),
	}

	// Create domain services
	s.verificationSvc = verificationDomain.NewService(gateway, logger)
	s.directorySvc = directoryDomain.NewService(gateway, gateway, logger)
	s.registrationSvc = registrationDomain.NewService(gateway, gateway, waiter, gateway.SignerAddress(), logger)

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// MetricsHandler returns the metrics HTTP handler for separate metrics server
func (s *Server) MetricsHandler() http.Handler {
	return metrics.Handler()
}

func (s *Server) setupMiddleware() {
	// Order matters! Security middleware runs first to block malicious requests early.

	// 1. Real IP extraction (must be first to set client IP for other middleware)
	s.router.Use(realip.Middleware(realip.Config{
		TrustProxy:     s.cfg.Proxy.TrustProxy,
		TrustedProxies: s.cfg.Proxy.TrustedProxies,
	}))

	// 2. Security filter (blocks malicious patterns, bypasses health checks)
	s.router.Use(security.FilterMiddleware(s.cfg.Security.FilterEnabled))

	// 3. Body size limit
	s.router.Use(security.MaxBodySizeMiddleware(s.cfg.Security.MaxBodySizeMB))

	// 4. Rate limiting (bypasses health checks)
	s.router.Use(ratelimit.Middleware(ratelimit.Config{
		Enabled:        s.cfg.RateLimit.Enabled,
		RequestsPerMin: s.cfg.RateLimit.RequestsPerMin,
		BurstSize:      s.cfg.RateLimit.BurstSize,
		CleanupMinutes: s.cfg.RateLimit.CleanupMinutes,
	}))

	// 5. Standard middleware
	s.router.Use(middleware.RequestID)
	s.router.Use(logging.Middleware(s.logger))
	s.router.Use(metrics.Middleware)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// 6. CORS
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-API-Key")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
}

func (s *Server) setupRoutes() {
	// Health checks
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/readyz", s.handleHealth)

	// Create HTTP handlers for each domain
	verificationHandler := verificationTransport.NewHandler(s.verificationSvc, s.shares)
	directoryHandler := directoryTransport.NewHandler(s.directorySvc, s.logger)
	registrationHandler := registrationTransport.NewHandler(s.registrationSvc, s.logger)

	// Auth middleware for write operations
	requireAuth := func(r chi.Router) {
		if s.cfg.Auth.Type == "api-key" {
			r.Use(auth.Middleware(s.store, writeError))
		}
	}

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Verification and directory - read only (no auth)
		verificationHandler.RegisterRoutes(r)
		directoryHandler.RegisterRoutes(r)

		// Registration - split read/write
		registrationHandler.RegisterReadRoutes(r)
		r.Group(func(r chi.Router) {
			requireAuth(r)
			registrationHandler.RegisterWriteRoutes(r)
		})
	})
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
