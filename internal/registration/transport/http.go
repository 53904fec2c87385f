// Package transport provides HTTP handlers for the registration domain.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pendergraft/veritrace/internal/registration/domain"
)

// Service defines the registration service interface for HTTP transport.
type Service interface {
	RegisterVendor(ctx context.Context, reg domain.VendorRegistration) (*domain.Result, error)
	AddProduct(ctx context.Context, reg domain.ProductRegistration) (*domain.Result, error)
	IsVendorRegistered(ctx context.Context, address string) (bool, error)
}

// Handler handles HTTP requests for registration.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

// NewHandler creates a new registration HTTP handler.
func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterReadRoutes registers the unauthenticated read routes.
func (h *Handler) RegisterReadRoutes(r chi.Router) {
	r.Get("/vendors/{address}/registered", h.handleRegisteredCheck)
}

// RegisterWriteRoutes registers the write routes. The server mounts these
// behind authentication when API keys are enabled.
func (h *Handler) RegisterWriteRoutes(r chi.Router) {
	r.Post("/vendors", h.handleRegisterVendor)
	r.Post("/products", h.handleAddProduct)
}

func (h *Handler) handleRegisterVendor(w http.ResponseWriter, r *http.Request) {
	var reg domain.VendorRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "Invalid JSON body")
		return
	}

	result, err := h.svc.RegisterVendor(r.Context(), reg)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var reg domain.ProductRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION", "Invalid JSON body")
		return
	}

	result, err := h.svc.AddProduct(r.Context(), reg)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) handleRegisteredCheck(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	registered, err := h.svc.IsVendorRegistered(r.Context(), address)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"registered": registered})
}

// writeDomainError maps domain sentinels onto the HTTP error taxonomy.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFields), errors.Is(err, domain.ErrInvalidField):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrNotVendor):
		writeError(w, http.StatusForbidden, "NOT_VENDOR", err.Error())
	case errors.Is(err, domain.ErrTxFailed):
		writeError(w, http.StatusBadGateway, "TX_FAILED", err.Error())
	default:
		h.logger.Error("registration request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
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
