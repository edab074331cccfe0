package handlers

import (
	"net/http"

	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/digitalavenger/leadbill/internal/middleware"

	"github.com/gin-gonic/gin"
)

// reportingHandler serves the platform-level dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getPlatformSummary)
	}
}

// getPlatformSummary godoc
// @Summary Platform dashboard summary
// @Description Returns tenant counts, user count, subscription revenue and recent activity. Super admin only.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.PlatformSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *reportingHandler) getPlatformSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetPlatformSummary(c.Request.Context(), session)
	if err != nil {
		respondError(c, logger, err, "Failed to build platform summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlatformSummaryResponse(summary))
}
