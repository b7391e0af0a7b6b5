package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
	"github.com/jsamuelsen/rastro/internal/coordinates"
)

// ParseCoordinates handles GET /api/v1/coordinates/:designation.
//
// @Summary Position encoded in a J2000 designation
// @Tags coordinates
// @Produce json
// @Param designation path string true "Designation, e.g. SDSS J123456.78+123456.7"
// @Success 200 {object} dto.CoordinateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/coordinates/{designation} [get]
func ParseCoordinates(c *gin.Context) {
	designation := c.Param("designation")

	pos, err := coordinates.ParseDesignation(designation)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CoordinateResponse{
		Designation: designation,
		Prefix:      pos.Prefix,
		RAHours:     pos.RAHours,
		RADeg:       pos.RA,
		DecDeg:      pos.Dec,
	})
}
