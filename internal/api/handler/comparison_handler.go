package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ievolvetecnologia/maturidadeqa/internal/api/metrics"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/ports"
)

// ComparisonHandler serves the assessment evolution view.
type ComparisonHandler struct {
	comparisonService ports.ComparisonService
}

func NewComparisonHandler(comparisonService ports.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{comparisonService: comparisonService}
}

// Compare returns the per-practice and overall deltas between two of the
// user's assessments: ?base=<id>&compare=<id>.
//
// @Summary      Compare assessments
// @Tags         assessments
// @Produce      json
// @Param        base     query     string  true  "Base assessment id"
// @Param        compare  query     string  true  "Compare assessment id"
// @Success      200      {object}  scoring.Comparison
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/comparison [get]
func (h *ComparisonHandler) Compare(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	baseID := c.QueryParam("base")
	compareID := c.QueryParam("compare")
	if baseID == "" || compareID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "base and compare query parameters are required")
	}

	result, err := h.comparisonService.Compare(c.Request().Context(), user.ID, baseID, compareID)
	if err != nil {
		return err
	}

	metrics.ComparisonsTotal.Inc()
	return c.JSON(http.StatusOK, result)
}
