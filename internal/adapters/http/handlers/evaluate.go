package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
	"github.com/jsamuelsen/rastro/internal/app"
	"github.com/jsamuelsen/rastro/internal/units"
)

// EvaluateHandler serves unit conversions and the gravitational force.
type EvaluateHandler struct {
	evaluator *app.EvaluatorService
	precision int
}

// NewEvaluateHandler creates a new evaluate handler. Quantities are
// rendered with precision significant digits, -1 for the shortest exact
// representation.
func NewEvaluateHandler(evaluator *app.EvaluatorService, precision int) *EvaluateHandler {
	return &EvaluateHandler{evaluator: evaluator, precision: precision}
}

func toQuantityResponse(q units.Quantity, prec int) dto.QuantityResponse {
	return dto.QuantityResponse{
		Value: q.Value,
		Unit:  q.Unit.String(),
		Text:  q.Format(prec),
	}
}

// Convert handles POST /api/v1/convert.
//
// @Summary Convert a value between unit expressions
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Conversion"
// @Success 200 {object} dto.QuantityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/convert [post]
func (h *EvaluateHandler) Convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	q, err := h.evaluator.Convert(c.Request.Context(), app.ConversionInput{
		Value: *req.Value,
		From:  req.From,
		To:    req.To,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuantityResponse(q, h.precision))
}

// Force handles POST /api/v1/force. An empty body computes the force
// between three solar masses and 100 kg at 2.2 au.
//
// @Summary Newtonian gravitational force
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body dto.ForceRequest false "Operands"
// @Success 200 {object} dto.QuantityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/force [post]
func (h *EvaluateHandler) Force(c *gin.Context) {
	var req dto.ForceRequest
	if err := dto.BindAndValidate(c, &req); err != nil && !errors.Is(err, io.EOF) {
		dto.HandleBindError(c, err)
		return
	}

	ctx := c.Request.Context()

	in, err := h.forceInput(ctx, req)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	q, err := h.evaluator.GravitationalForce(ctx, in)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuantityResponse(q, h.precision))
}

func (h *EvaluateHandler) forceInput(ctx context.Context, req dto.ForceRequest) (app.ForceInput, error) {
	in := app.DefaultForceInput()

	for _, o := range []struct {
		req *dto.QuantityRequest
		dst *units.Quantity
	}{
		{req.M1, &in.M1},
		{req.M2, &in.M2},
		{req.Distance, &in.Distance},
	} {
		if o.req == nil {
			continue
		}

		u, err := h.evaluator.Unit(ctx, o.req.Unit)
		if err != nil {
			return app.ForceInput{}, err
		}

		*o.dst = units.Q(*o.req.Value, u)
	}

	if req.Unit != "" {
		in.Target = req.Unit
	}

	return in, nil
}

// RegisterEvaluateRoutes registers evaluation routes on the given router group.
func (h *EvaluateHandler) RegisterEvaluateRoutes(rg *gin.RouterGroup) {
	rg.POST("/convert", h.Convert)
	rg.POST("/force", h.Force)
}
