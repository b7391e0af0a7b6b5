package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
	"github.com/jsamuelsen/rastro/internal/app"
	"github.com/jsamuelsen/rastro/internal/constants"
)

// ConstantsHandler serves the physical constants.
type ConstantsHandler struct {
	evaluator *app.EvaluatorService
	precision int
}

// NewConstantsHandler creates a new constants handler.
func NewConstantsHandler(evaluator *app.EvaluatorService, precision int) *ConstantsHandler {
	return &ConstantsHandler{evaluator: evaluator, precision: precision}
}

func toConstantResponse(c constants.Constant) dto.ConstantResponse {
	return dto.ConstantResponse{
		Abbrev:      c.Abbrev,
		Name:        c.Name,
		Value:       c.Value,
		Unit:        c.Unit.String(),
		Uncertainty: c.Uncertainty,
		Reference:   c.Reference,
	}
}

// ListConstants handles GET /api/v1/constants.
//
// @Summary List physical constants
// @Tags constants
// @Produce json
// @Success 200 {object} dto.ConstantsResponse
// @Router /api/v1/constants [get]
func (h *ConstantsHandler) ListConstants(c *gin.Context) {
	all := h.evaluator.Constants(c.Request.Context())

	resp := dto.ConstantsResponse{Constants: make([]dto.ConstantResponse, len(all))}
	for i, k := range all {
		resp.Constants[i] = toConstantResponse(k)
	}

	c.JSON(http.StatusOK, resp)
}

// GetConstant handles GET /api/v1/constants/:abbrev.
// With ?unit= the constant is also expressed in that unit.
//
// @Summary Get a physical constant
// @Tags constants
// @Produce json
// @Param abbrev path string true "Abbreviation, e.g. G or c"
// @Param unit query string false "Target unit expression"
// @Success 200 {object} dto.ConstantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/constants/{abbrev} [get]
func (h *ConstantsHandler) GetConstant(c *gin.Context) {
	var query dto.ConstantQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	abbrev := c.Param("abbrev")

	k, err := h.evaluator.Constant(ctx, abbrev)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := toConstantResponse(k)

	if query.Unit != "" {
		q, err := h.evaluator.ConvertConstant(ctx, abbrev, query.Unit)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		converted := toQuantityResponse(q, h.precision)
		resp.Converted = &converted
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterConstantRoutes registers constant routes on the given router group.
func (h *ConstantsHandler) RegisterConstantRoutes(rg *gin.RouterGroup) {
	constantsGroup := rg.Group("/constants")
	constantsGroup.GET("", h.ListConstants)
	constantsGroup.GET("/:abbrev", h.GetConstant)
}
