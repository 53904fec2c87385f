// Package transport provides HTTP handlers for the verification domain.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pendergraft/veritrace/internal/observability/metrics"
	"github.com/pendergraft/veritrace/internal/share"
	"github.com/pendergraft/veritrace/internal/validation"
	"github.com/pendergraft/veritrace/internal/verification/domain"
)

// Service defines the verification service interface for HTTP transport.
type Service interface {
	Resolve(ctx context.Context, code string) *domain.Result
}

// Handler handles HTTP requests for verification.
type Handler struct {
	svc    Service
	shares *share.Generator
}

// NewHandler creates a new verification HTTP handler.
func NewHandler(svc Service, shares *share.Generator) *Handler {
	return &Handler{svc: svc, shares: shares}
}

// RegisterRoutes registers the verification routes on a chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/verify", h.handleVerify)
	r.Get("/verify/{code}/qr", h.handleQR)
}

// handleVerify resolves the bytecode query parameter into a verification
// result. The classification is the payload, so the response is always 200:
// a missing or unresolvable code yields an invalid result, not an error.
func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("bytecode")

	result := h.svc.Resolve(r.Context(), code)

	outcome := "invalid"
	if result.IsValid {
		outcome = "valid"
	}
	metrics.Verification(outcome)

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleQR(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := validation.ValidateProductCode(code); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	png, err := h.shares.PNG(code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
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
