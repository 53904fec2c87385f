package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pendergraft/veritrace/internal/share"
	"github.com/pendergraft/veritrace/internal/verification/domain"
)

// mockService implements Service for testing
type mockService struct {
	results map[string]*domain.Result
}

func (m *mockService) Resolve(ctx context.Context, code string) *domain.Result {
	if result, ok := m.results[code]; ok {
		return result
	}
	return &domain.Result{
		IsValid:        false,
		BlockchainHash: "Not found",
		LastVerified:   "Never",
	}
}

func setupRouter(svc Service) *chi.Mux {
	r := chi.NewRouter()
	h := NewHandler(svc, share.NewGenerator("http://localhost:8080"))
	h.RegisterRoutes(r)
	return r
}

func TestHandleVerify_Valid(t *testing.T) {
	svc := &mockService{results: map[string]*domain.Result{
		"ABC123": {
			IsValid:           true,
			Product:           &domain.Product{ProductName: "Widget", Price: 10, Category: "General"},
			Vendor:            &domain.Vendor{Name: "Acme", Number: 555},
			BlockchainHash:    "ABC123",
			VerificationCount: 1,
			LastVerified:      "2025-06-15",
		},
	}}
	router := setupRouter(svc)

	req := httptest.NewRequest("GET", "/verify?bytecode=ABC123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsValid)
	assert.Equal(t, "Widget", resp.Product.ProductName)
	assert.Equal(t, int64(555), resp.Vendor.Number)
	assert.Equal(t, "2025-06-15", resp.LastVerified)
}

func TestHandleVerify_UnknownCodeStill200(t *testing.T) {
	router := setupRouter(&mockService{})

	req := httptest.NewRequest("GET", "/verify?bytecode=BOGUS", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsValid)
	assert.Equal(t, "Not found", resp.BlockchainHash)
}

func TestHandleVerify_MissingParam(t *testing.T) {
	svc := &mockService{results: map[string]*domain.Result{
		"": {
			IsValid:        false,
			BlockchainHash: "No bytecode provided",
			LastVerified:   "Never",
		},
	}}
	router := setupRouter(svc)

	req := httptest.NewRequest("GET", "/verify", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No bytecode provided", resp.BlockchainHash)
}

func TestHandleQR(t *testing.T) {
	router := setupRouter(&mockService{})

	req := httptest.NewRequest("GET", "/verify/ABC123/qr", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestHandleQR_BadCode(t *testing.T) {
	router := setupRouter(&mockService{})

	req := httptest.NewRequest("GET", "/verify/%20%20/qr", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
