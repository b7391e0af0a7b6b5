package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
	"github.com/jsamuelsen/rastro/internal/app"
)

// UnitsHandler serves the unit systems and their public unit names.
type UnitsHandler struct {
	catalog *app.CatalogService
}

// NewUnitsHandler creates a new units handler.
func NewUnitsHandler(catalog *app.CatalogService) *UnitsHandler {
	return &UnitsHandler{catalog: catalog}
}

// ListSystems handles GET /api/v1/systems.
//
// @Summary List unit systems
// @Tags units
// @Produce json
// @Success 200 {object} dto.SystemsResponse
// @Router /api/v1/systems [get]
func (h *UnitsHandler) ListSystems(c *gin.Context) {
	summaries := h.catalog.Systems(c.Request.Context())

	resp := dto.SystemsResponse{Systems: make([]dto.SystemResponse, len(summaries))}
	for i, s := range summaries {
		resp.Systems[i] = dto.SystemResponse{Name: s.Name, PublicUnits: s.PublicUnits}
	}

	c.JSON(http.StatusOK, resp)
}

// ListUnits handles GET /api/v1/systems/:system/units.
// Returns one page of the system's public unit names in sorted order.
//
// @Summary List the public units of a system
// @Tags units
// @Produce json
// @Param system path string true "Unit system" Enums(si, cgs, astrophys, imperial, info)
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-500)"
// @Success 200 {object} dto.PaginatedResponse[string]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/systems/{system}/units [get]
func (h *UnitsHandler) ListUnits(c *gin.Context) {
	var req dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	cursor, err := dto.ParseCursor(req.Cursor)
	if err != nil {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	system := c.Param("system")

	names, err := h.catalog.PublicNames(c.Request.Context(), system)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	page, err := dto.PageNames(system, names, cursor, req.PageSize())
	if err != nil {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, page)
}

// DescribeUnit handles GET /api/v1/units/:symbol.
//
// @Summary Describe a unit expression
// @Tags units
// @Produce json
// @Param symbol path string true "Unit symbol or expression"
// @Success 200 {object} dto.UnitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/units/{symbol} [get]
func (h *UnitsHandler) DescribeUnit(c *gin.Context) {
	d, err := h.catalog.Describe(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnitResponse{
		Symbol:    d.Symbol,
		Name:      d.Name,
		Scale:     d.Scale,
		Dimension: d.Dimension,
		SI:        d.SI,
	})
}

// RegisterUnitRoutes registers unit routes on the given router group.
func (h *UnitsHandler) RegisterUnitRoutes(rg *gin.RouterGroup) {
	rg.GET("/systems", h.ListSystems)
	rg.GET("/systems/:system/units", h.ListUnits)
	rg.GET("/units/:symbol", h.DescribeUnit)
}
