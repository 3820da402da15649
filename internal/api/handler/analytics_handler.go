package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type AnalyticsHandler struct {
	analyticsService ports.AnalyticsService
}

func NewAnalyticsHandler(analyticsService ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview returns the three per-day chart series for the admin analysis
// page. Admin only.
//
// @Summary      Analytics overview
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  ports.AnalyticsResult
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/analytics [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	result, err := h.analyticsService.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
