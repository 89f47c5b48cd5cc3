package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/segurofacil-leads/internal/backend"
	"github.com/xavierca1/segurofacil-leads/internal/config"
	"github.com/xavierca1/segurofacil-leads/internal/infra/http/handlers"
	"github.com/xavierca1/segurofacil-leads/internal/usecase"
)

func testRouter(cfg *config.Config) http.Handler {
	b := backend.NotConfigured{Driver: config.DriverREST, Missing: []string{"SUPABASE_URL"}}
	captureUC := usecase.NewCaptureLeadUseCase(b, nil, nil)
	listUC := usecase.NewListLeadsUseCase(b, nil)

	return newRouter(cfg,
		handlers.NewLeadHandler(captureUC, listUC),
		handlers.NewPageHandler(captureUC, listUC),
		handlers.NewHealthHandler(b, nil),
	)
}

func get(h http.Handler, path string, auth ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if len(auth) == 2 {
		req.SetBasicAuth(auth[0], auth[1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouterPublicRoutes(t *testing.T) {
	r := testRouter(&config.Config{CORSAllowedOrigins: []string{"*"}})

	assert.Equal(t, http.StatusOK, get(r, "/").Code)
	assert.Equal(t, http.StatusOK, get(r, "/metrics").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/health").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/nao-existe").Code)
}

func TestRouterAdminWithoutAuth(t *testing.T) {
	r := testRouter(&config.Config{CORSAllowedOrigins: []string{"*"}})

	w := get(r, "/admin")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `data-state="error"`)

	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/api/leads").Code)
}

func TestRouterAdminBasicAuth(t *testing.T) {
	r := testRouter(&config.Config{
		CORSAllowedOrigins: []string{"*"},
		AdminUser:          "vendas",
		AdminPassword:      "segredo",
	})

	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/leads", "vendas", "errada").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(r, "/admin", "vendas", "segredo").Code)

	// o formulário continua público
	assert.Equal(t, http.StatusOK, get(r, "/").Code)
}

func postLeadFrom(h http.Handler, forwardedFor string) int {
	req := httptest.NewRequest("POST", "/api/leads", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestRouterRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	r := testRouter(&config.Config{CORSAllowedOrigins: []string{"*"}})

	for i := 0; i < 10; i++ {
		assert.NotEqual(t, http.StatusTooManyRequests, postLeadFrom(r, fmt.Sprintf("200.0.0.%d", i)))
	}
	assert.Equal(t, http.StatusTooManyRequests, postLeadFrom(r, "200.0.0.99"))
}

func TestRouterRateLimitUsesForwardedForBehindTrustedProxy(t *testing.T) {
	r := testRouter(&config.Config{CORSAllowedOrigins: []string{"*"}, TrustProxyHeaders: true})

	for i := 0; i < 11; i++ {
		assert.NotEqual(t, http.StatusTooManyRequests, postLeadFrom(r, fmt.Sprintf("200.0.0.%d", i)))
	}
	for i := 0; i < 10; i++ {
		postLeadFrom(r, "200.0.0.50")
	}
	assert.Equal(t, http.StatusTooManyRequests, postLeadFrom(r, "200.0.0.50"))
}
