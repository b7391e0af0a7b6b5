package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
)

func TestParseCoordinates(t *testing.T) {
	router := newTestRouter(t)

	t.Run("survey designation", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/coordinates/SDSS%20J004917.14-252037.6", nil)

		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[dto.CoordinateResponse](t, w)
		assert.Equal(t, "SDSS J004917.14-252037.6", resp.Designation)
		assert.Equal(t, "SDSS J", resp.Prefix)
		assert.InDelta(t, (49.0/60+17.14/3600)*15, resp.RADeg, 1e-10)
		assert.InDelta(t, -(25 + 20.0/60 + 37.6/3600), resp.DecDeg, 1e-12)
	})

	t.Run("not a designation", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/coordinates/M31", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "designation")
	})
}
