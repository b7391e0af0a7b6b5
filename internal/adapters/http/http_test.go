package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
	"github.com/jsamuelsen/rastro/internal/adapters/http/handlers"
	"github.com/jsamuelsen/rastro/internal/app"
	"github.com/jsamuelsen/rastro/internal/constants"
	"github.com/jsamuelsen/rastro/internal/platform/config"
	"github.com/jsamuelsen/rastro/internal/ports"
	"github.com/jsamuelsen/rastro/internal/units"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAbort(t *testing.T) {
	tests := []struct {
		code       string
		message    string
		wantStatus int
	}{
		{dto.ErrorCodeBadRequest, "malformed cursor", http.StatusBadRequest},
		{dto.ErrorCodeTimeout, "request timed out", http.StatusGatewayTimeout},
		{dto.ErrorCodeTooLarge, "request body exceeds 10 bytes", http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/systems", http.NoBody)
			c.Request.Header.Set("X-Request-ID", "req-1")

			abort(c, tt.code, tt.message)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.True(t, c.IsAborted())

			var resp dto.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.Equal(t, "req-1", resp.TraceID)
		})
	}
}

func serverConfig(port int, maxBody int64) *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           port,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: maxBody,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServerNew(t *testing.T) {
	cfg := serverConfig(8080, 1<<20)

	srv := New(cfg, discardLogger())

	require.NotNil(t, srv)
	assert.IsType(t, &gin.Engine{}, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{"hostname", "localhost", 8080, "localhost:8080"},
		{"all interfaces", "0.0.0.0", 3000, "0.0.0.0:3000"},
		{"ipv6", "::1", 8080, "[::1]:8080"},
		{"unstarted port 0", "127.0.0.1", 0, "127.0.0.1:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := serverConfig(tt.port, 1<<20)
			cfg.Host = tt.host

			assert.Equal(t, tt.want, New(cfg, discardLogger()).Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(serverConfig(0, 1<<20), discardLogger())
	srv.Engine().GET("/api/v1/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	errCh, err := srv.Start()
	require.NoError(t, err)

	addr := srv.Addr()
	assert.NotEqual(t, "127.0.0.1:0", addr, "port 0 should resolve to the bound port")

	resp, err := http.Get("http://" + addr + "/api/v1/ping")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err, ok := <-errCh:
		assert.False(t, ok, "error channel should be closed, got %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for server to stop")
	}
}

func TestServerStart_AddressInUse(t *testing.T) {
	first := New(serverConfig(0, 1<<20), discardLogger())

	_, err := first.Start()
	require.NoError(t, err)

	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, port, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)

	cfg := serverConfig(0, 1<<20)
	cfg.Port, err = strconv.Atoi(port)
	require.NoError(t, err)

	errCh, err := New(cfg, discardLogger()).Start()

	require.Error(t, err)
	assert.Nil(t, errCh)
	assert.Contains(t, err.Error(), "listening on")
}

func testAppConfig() *config.AppConfig {
	return &config.AppConfig{
		Name:        "rastro-test",
		Environment: "test",
		Version:     "1.0.0",
	}
}

func testServices(t *testing.T) (*app.EvaluatorService, *app.CatalogService) {
	t.Helper()

	logger := discardLogger()

	evaluator := app.NewEvaluatorService(app.EvaluatorServiceConfig{
		Units:     units.Default(),
		Constants: constants.Default(),
		Logger:    logger,
	})
	catalog := app.NewCatalogService(app.CatalogServiceConfig{
		Units:  units.Default(),
		Logger: logger,
	})

	return evaluator, catalog
}

// TestNewDefaultRouterConfig tests creating a default router configuration.
func TestNewDefaultRouterConfig(t *testing.T) {
	logger := discardLogger()
	appCfg := testAppConfig()
	healthHandler := handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{})
	evaluator, catalog := testServices(t)

	cfg := NewDefaultRouterConfig(logger, appCfg, healthHandler, evaluator, catalog)

	assert.Equal(t, logger, cfg.Logger)
	assert.Equal(t, appCfg, cfg.AppConfig)
	assert.Equal(t, healthHandler, cfg.HealthHandler)
	assert.Equal(t, evaluator, cfg.Evaluator)
	assert.Equal(t, catalog, cfg.Catalog)
	assert.Equal(t, -1, cfg.Precision)
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout)
}

// TestSetupRouter tests the full router: middleware, health and API routes.
func TestSetupRouter(t *testing.T) {
	engine := gin.New()
	logger := discardLogger()
	evaluator, catalog := testServices(t)

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(catalog))

	SetupRouter(engine, NewDefaultRouterConfig(
		logger,
		testAppConfig(),
		handlers.NewHealthHandler(registry, handlers.BuildInfo{}),
		evaluator,
		catalog,
	))

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"liveness", http.MethodGet, "/-/live", "", http.StatusOK, `"ok"`},
		{"readiness", http.MethodGet, "/-/ready", "", http.StatusOK, "unit-catalog"},
		{"systems", http.MethodGet, "/api/v1/systems", "", http.StatusOK, `"cgs"`},
		{"units", http.MethodGet, "/api/v1/systems/cgs/units?limit=1", "", http.StatusOK, `"hasMore":true`},
		{"unit", http.MethodGet, "/api/v1/units/au", "", http.StatusOK, `"symbol":"au"`},
		{"constant", http.MethodGet, "/api/v1/constants/G", "", http.StatusOK, `"abbrev":"G"`},
		{"force", http.MethodPost, "/api/v1/force", "", http.StatusOK, `"unit":"N"`},
		{"convert", http.MethodPost, "/api/v1/convert", `{"value":1,"from":"au","to":"km"}`, http.StatusOK, `"unit":"km"`},
		{"coordinates", http.MethodGet, "/api/v1/coordinates/J123456.78+123456.7", "", http.StatusOK, `"prefix":"J"`},
		{"unknown route", http.MethodGet, "/api/v2/units", "", http.StatusNotFound, dto.ErrorCodeNotFound},
		{"wrong method", http.MethodDelete, "/api/v1/systems", "", http.StatusMethodNotAllowed, dto.ErrorCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = http.NoBody
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}

			req := httptest.NewRequest(tt.method, tt.target, body)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

// TestSetupRouterWithoutTimeout tests router setup with zero timeout.
func TestSetupRouterWithoutTimeout(t *testing.T) {
	engine := gin.New()
	logger := discardLogger()

	cfg := RouterConfig{
		Logger:        logger,
		AppConfig:     testAppConfig(),
		HealthHandler: handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{}),
		Timeout:       0,
	}

	require.NotPanics(t, func() {
		SetupRouter(engine, cfg)
	})
}

// TestSetupRouterWithoutServices tests that API routes needing services
// are skipped when they are absent.
func TestSetupRouterWithoutServices(t *testing.T) {
	engine := gin.New()
	logger := discardLogger()

	cfg := RouterConfig{
		Logger:        logger,
		AppConfig:     testAppConfig(),
		HealthHandler: nil,
		Timeout:       30 * time.Second,
	}

	require.NotPanics(t, func() {
		SetupRouter(engine, cfg)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/systems", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/coordinates/J000000.0-13000.0", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	srv := New(serverConfig(0, 100), discardLogger())
	srv.Engine().POST("/api/v1/convert", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": len(body)})
	})

	t.Run("body under limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(`{"value":1,"from":"m","to":"km"}`))
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("declared length over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(strings.Repeat("x", 101)))
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeTooLarge, resp.Error.Code)
	})

	t.Run("undeclared length over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", io.NopCloser(strings.NewReader(strings.Repeat("x", 101))))
		req.ContentLength = -1
		srv.Engine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "too large")
	})
}
