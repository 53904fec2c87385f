package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pendergraft/veritrace/internal/storage"
)

type mockAPIKeyStore struct {
	keys map[string]*storage.APIKey
}

func (m *mockAPIKeyStore) CreateAPIKey(ctx context.Context, name string) (string, error) {
	return "", nil
}

func (m *mockAPIKeyStore) ValidateAPIKey(ctx context.Context, key string) (*storage.APIKey, error) {
	if apiKey, ok := m.keys[key]; ok {
		return apiKey, nil
	}
	return nil, storage.ErrNotFound
}

func (m *mockAPIKeyStore) ListAPIKeys(ctx context.Context) ([]storage.APIKey, error) {
	return nil, nil
}

func (m *mockAPIKeyStore) RevokeAPIKey(ctx context.Context, id string) error {
	return nil
}

func testWriteError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
}

func TestMiddleware_ValidKey(t *testing.T) {
	store := &mockAPIKeyStore{
		keys: map[string]*storage.APIKey{
			"vt_key_valid": {ID: "key-123", Name: "test"},
		},
	}

	var capturedCtx context.Context
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedCtx = r.Context()
		w.WriteHeader(http.StatusOK)
	})

	middleware := Middleware(store, testWriteError)

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("X-API-Key", "vt_key_valid")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	key := GetAPIKeyFromContext(capturedCtx)
	require.NotNil(t, key)
	assert.Equal(t, "key-123", key.ID)
}

func TestMiddleware_BearerToken(t *testing.T) {
	store := &mockAPIKeyStore{
		keys: map[string]*storage.APIKey{
			"vt_key_valid": {ID: "key-123", Name: "test"},
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := Middleware(store, testWriteError)

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Authorization", "Bearer vt_key_valid")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_MissingKey(t *testing.T) {
	store := &mockAPIKeyStore{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	middleware := Middleware(store, testWriteError)

	req := httptest.NewRequest("POST", "/", nil)
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_InvalidKey(t *testing.T) {
	store := &mockAPIKeyStore{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	middleware := Middleware(store, testWriteError)

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("X-API-Key", "vt_key_bogus")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateAPIKey(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, KeyPrefix))
	assert.Len(t, key, len(KeyPrefix)+KeyLength*2)

	other, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestHashAPIKey(t *testing.T) {
	hash := HashAPIKey("vt_key_example")
	assert.Len(t, hash, 64)
	assert.NotEqual(t, "vt_key_example", hash)
	assert.Equal(t, hash, HashAPIKey("vt_key_example"))
}
