// Package transport provides HTTP handlers for the directory domain.
package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pendergraft/veritrace/internal/directory/domain"
)

// Service defines the directory service interface for HTTP transport.
type Service interface {
	Aggregate(ctx context.Context) ([]domain.VendorListing, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// Handler handles HTTP requests for the directory.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

// NewHandler creates a new directory HTTP handler.
func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes registers the directory routes on a chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/directory", h.handleDirectory)
	r.Get("/stats", h.handleStats)
}

// handleDirectory returns the vendor directory, optionally narrowed by the
// q and category query parameters. Filtering happens over the aggregated
// snapshot, not as separate contract reads.
func (h *Handler) handleDirectory(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.Aggregate(r.Context())
	if err != nil {
		h.logger.Error("directory aggregation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load directory")
		return
	}

	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if query != "" || category != "" {
		listings = domain.Filter(listings, query, category)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"vendors": listings,
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.logger.Error("stats lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
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
