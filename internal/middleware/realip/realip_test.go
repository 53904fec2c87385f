package realip

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureClientIP(t *testing.T, cfg Config, remoteAddr string, headers map[string]string) string {
	t.Helper()

	var got string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClientIP(r)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	Middleware(cfg)(handler).ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestMiddleware_NoProxyTrust(t *testing.T) {
	got := captureClientIP(t, Config{}, "203.0.113.5:1234", map[string]string{
		"X-Forwarded-For": "198.51.100.1",
	})
	assert.Equal(t, "203.0.113.5", got)
}

func TestMiddleware_TrustedProxy(t *testing.T) {
	cfg := Config{
		TrustProxy:     true,
		TrustedProxies: []string{"10.0.0.0/8"},
	}
	got := captureClientIP(t, cfg, "10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "198.51.100.1",
	})
	assert.Equal(t, "198.51.100.1", got)
}

func TestMiddleware_UntrustedProxyIgnoresHeader(t *testing.T) {
	cfg := Config{
		TrustProxy:     true,
		TrustedProxies: []string{"10.0.0.0/8"},
	}
	got := captureClientIP(t, cfg, "203.0.113.5:1234", map[string]string{
		"X-Forwarded-For": "198.51.100.1",
	})
	assert.Equal(t, "203.0.113.5", got)
}

func TestMiddleware_ChainSkipsTrustedHops(t *testing.T) {
	cfg := Config{
		TrustProxy:     true,
		TrustedProxies: []string{"10.0.0.0/8"},
	}
	got := captureClientIP(t, cfg, "10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "198.51.100.1, 10.0.0.2",
	})
	assert.Equal(t, "198.51.100.1", got)
}

func TestMiddleware_XRealIPFallback(t *testing.T) {
	cfg := Config{
		TrustProxy:     true,
		TrustedProxies: []string{"10.0.0.0/8"},
	}
	got := captureClientIP(t, cfg, "10.0.0.1:1234", map[string]string{
		"X-Real-IP": "198.51.100.7",
	})
	assert.Equal(t, "198.51.100.7", got)
}

func TestMiddleware_BareIPTrustedProxy(t *testing.T) {
	cfg := Config{
		TrustProxy:     true,
		TrustedProxies: []string{"10.0.0.1"},
	}
	got := captureClientIP(t, cfg, "10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "198.51.100.1",
	})
	assert.Equal(t, "198.51.100.1", got)
}

func TestGetClientIP_FallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "203.0.113.5:1234"
	assert.Equal(t, "203.0.113.5", GetClientIP(req))
}
