package router

import (
	"net/http/httptest"
	"testing"

	"soilwatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Mode: "test"},
		Generator: config.GeneratorConfig{Variant: config.VariantBaseline},
	}
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	router := SetupRouter(testConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type",
		w.Header().Get("Access-Control-Allow-Headers"))
}

func TestPreflightNeverReachesBusinessLogic(t *testing.T) {
	router := SetupRouter(testConfig())

	// OPTIONS 预检：不查库、不生成，直接 204
	req := httptest.NewRequest("OPTIONS", "/api/v1/analyze", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type",
		w.Header().Get("Access-Control-Allow-Headers"))
}

func TestDashboardPageServed(t *testing.T) {
	router := SetupRouter(testConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "土壤湿度分析看板")
}

func TestHealthCheck(t *testing.T) {
	router := SetupRouter(testConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
