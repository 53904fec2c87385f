package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pendergraft/veritrace/internal/directory/domain"
)

type mockService struct {
	listings []domain.VendorListing
	stats    *domain.Stats
	err      error
}

func (m *mockService) Aggregate(ctx context.Context) ([]domain.VendorListing, error) {
	return m.listings, m.err
}

func (m *mockService) Stats(ctx context.Context) (*domain.Stats, error) {
	return m.stats, m.err
}

func newTestRouter(svc Service) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, logger)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func sampleListings() []domain.VendorListing {
	return []domain.VendorListing{
		{
			Name:        "Alice",
			CompanyName: "Acme Corp",
			Address:     "0xaaaa",
			Products: []domain.Product{
				{ProductName: "Widget", Description: "A steel widget", Category: "Tools", Bytecode: "A1"},
			},
		},
		{
			Name:        "Bob",
			CompanyName: "Bolt Ltd",
			Address:     "0xbbbb",
			Products: []domain.Product{
				{ProductName: "Teddy Bear", Description: "Soft toy", Category: "Toys", Bytecode: "B1"},
			},
		},
	}
}

func TestHandleDirectory(t *testing.T) {
	r := newTestRouter(&mockService{listings: sampleListings()})

	req := httptest.NewRequest(http.MethodGet, "/directory", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Vendors []domain.VendorListing `json:"vendors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Vendors, 2)
	assert.Equal(t, "Alice", body.Vendors[0].Name)
	assert.Equal(t, "A1", body.Vendors[0].Products[0].Bytecode)
}

func TestHandleDirectoryQueryFilter(t *testing.T) {
	r := newTestRouter(&mockService{listings: sampleListings()})

	req := httptest.NewRequest(http.MethodGet, "/directory?q=teddy", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Vendors []domain.VendorListing `json:"vendors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Vendors, 1)
	assert.Equal(t, "Bob", body.Vendors[0].Name)
}

func TestHandleDirectoryCategoryFilter(t *testing.T) {
	r := newTestRouter(&mockService{listings: sampleListings()})

	req := httptest.NewRequest(http.MethodGet, "/directory?category=Tools", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Vendors []domain.VendorListing `json:"vendors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Vendors, 1)
	assert.Equal(t, "Alice", body.Vendors[0].Name)
}

func TestHandleDirectoryAggregateError(t *testing.T) {
	r := newTestRouter(&mockService{err: errors.New("rpc unavailable")})

	req := httptest.NewRequest(http.MethodGet, "/directory", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestHandleStats(t *testing.T) {
	r := newTestRouter(&mockService{stats: &domain.Stats{TotalProducts: "42", TotalVendors: "7"}})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, "42", stats.TotalProducts)
	assert.Equal(t, "7", stats.TotalVendors)
}

func TestHandleStatsError(t *testing.T) {
	r := newTestRouter(&mockService{err: errors.New("rpc unavailable")})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
