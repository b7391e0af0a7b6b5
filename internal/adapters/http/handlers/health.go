// Package handlers maps the rastro API onto gin handlers.
package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/rastro/internal/ports"
)

// BuildInfo identifies the running binary. Version, Commit and BuildTime
// come from ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills GoVersion from the runtime.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the /-/ probe and build endpoints.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	started   time.Time
}

// NewHealthHandler creates a health handler. Uptime counts from here.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		started:   time.Now(),
	}
}

type livenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Liveness answers /-/live. It never consults the health checks: a
// process that can answer is alive.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Truncate(time.Second).String(),
	})
}

type readinessResponse struct {
	Status    string                        `json:"status"`
	CheckedAt time.Time                     `json:"checkedAt"`
	Checks    map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness answers /-/ready with the result of every registered check,
// 503 when any of them fails.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, readinessResponse{
		Status:    string(result.Status),
		CheckedAt: result.Timestamp,
		Checks:    result.Checks,
	})
}

// BuildInfoHandler answers /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler serves the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RegisterHealthRoutes adds live, ready, build and metrics to rg. The two
// probes also answer HEAD.
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	for path, probe := range map[string]gin.HandlerFunc{
		"/live":  h.Liveness,
		"/ready": h.Readiness,
	} {
		rg.GET(path, probe)
		rg.HEAD(path, probe)
	}

	rg.GET("/build", h.BuildInfoHandler)
	rg.GET("/metrics", gin.WrapH(MetricsHandler()))
}

// RegisterHealthRoutesOnEngine registers the health routes under /-.
func (h *HealthHandler) RegisterHealthRoutesOnEngine(engine *gin.Engine) {
	h.RegisterHealthRoutes(engine.Group("/-"))
}
