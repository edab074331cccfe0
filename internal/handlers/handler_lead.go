package handlers

import (
	"log/slog"
	"net/http"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/digitalavenger/leadbill/internal/middleware"

	"github.com/gin-gonic/gin"
)

// leadHandler handles HTTP requests related to leads and the per-tenant
// lead form option lists.
type leadHandler struct {
	leadService portssvc.LeadSvcFacade
}

func newLeadHandler(ls portssvc.LeadSvcFacade) *leadHandler {
	return &leadHandler{leadService: ls}
}

// registerLeadRoutes registers all lead-related routes.
func registerLeadRoutes(rg *gin.RouterGroup, leadService portssvc.LeadSvcFacade) {
	h := newLeadHandler(leadService)

	leads := rg.Group("/leads", middleware.RequireModule(domain.ModuleLeads))
	{
		leads.GET("", h.listLeads)
		leads.POST("", h.createLead)
		leads.GET("/options", h.getLeadOptions)
		leads.POST("/options/services", h.addServiceOption)
		leads.DELETE("/options/services/:id", h.removeServiceOption)
		leads.POST("/options/statuses", h.addStatusOption)
		leads.DELETE("/options/statuses/:id", h.removeStatusOption)
		leads.GET("/:id", h.getLead)
		leads.PUT("/:id", h.updateLead)
		leads.PUT("/:id/status", h.updateLeadStatus)
		leads.DELETE("/:id", h.deleteLead)
	}
}

// createLead godoc
// @Summary Create a lead
// @Description Creates a lead. When no status is supplied the tenant's default pipeline stage is used.
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body dto.CreateLeadRequest true "Lead details"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Missing permission, module not allowed or subscription inactive"
// @Security BearerAuth
// @Router /leads [post]
func (h *leadHandler) createLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create lead")
		return
	}

	logger.Info("Lead created", slog.String("lead_id", lead.LeadID))
	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

// listLeads godoc
// @Summary List leads
// @Description Lists the tenant's leads newest first, with token-based pagination.
// @Tags leads
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListLeadsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads [get]
func (h *leadHandler) listLeads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var params dto.ListLeadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	leads, nextToken, err := h.leadService.ListLeads(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list leads")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeadsResponse(leads, nextToken))
}

// getLead godoc
// @Summary Get a lead by ID
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.LeadResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *leadHandler) getLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	lead, err := h.leadService.GetLeadByID(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve lead")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// updateLead godoc
// @Summary Update a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param lead body dto.UpdateLeadRequest true "Fields to update"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *leadHandler) updateLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}
	leadID := c.Param("id")

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), session, leadID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update lead")
		return
	}

	logger.Info("Lead updated", slog.String("lead_id", leadID))
	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// updateLeadStatus godoc
// @Summary Move a lead to another pipeline stage
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param status body dto.UpdateLeadStatusRequest true "New status"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id}/status [put]
func (h *leadHandler) updateLeadStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}
	leadID := c.Param("id")

	var req dto.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLeadStatus(c.Request.Context(), session, leadID, req.Status)
	if err != nil {
		respondError(c, logger, err, "Failed to update lead status")
		return
	}

	logger.Info("Lead status updated", slog.String("lead_id", leadID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

// deleteLead godoc
// @Summary Delete a lead
// @Tags leads
// @Produce json
// @Param id path string true "Lead ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *leadHandler) deleteLead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}
	leadID := c.Param("id")

	if err := h.leadService.DeleteLead(c.Request.Context(), session, leadID); err != nil {
		respondError(c, logger, err, "Failed to delete lead")
		return
	}

	logger.Info("Lead deleted", slog.String("lead_id", leadID))
	c.Status(http.StatusNoContent)
}

// getLeadOptions godoc
// @Summary Get the lead form option lists
// @Description Returns the tenant's service and status options. Built-in pipeline stages are returned when the tenant has not configured any.
// @Tags leads
// @Produce json
// @Success 200 {object} dto.LeadOptionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/options [get]
func (h *leadHandler) getLeadOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	serviceOpts, statusOpts, err := h.leadService.GetLeadOptions(c.Request.Context(), session)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve lead options")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadOptionsResponse(serviceOpts, statusOpts))
}

// addServiceOption godoc
// @Summary Add a service option
// @Tags leads
// @Accept json
// @Produce json
// @Param option body dto.CreateServiceOptionRequest true "Service name"
// @Success 201 {object} dto.ServiceOptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/options/services [post]
func (h *leadHandler) addServiceOption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.CreateServiceOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	option, err := h.leadService.AddServiceOption(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, logger, err, "Failed to add service option")
		return
	}

	c.JSON(http.StatusCreated, dto.ServiceOptionResponse{OptionID: option.OptionID, Name: option.Name})
}

// removeServiceOption godoc
// @Summary Remove a service option
// @Tags leads
// @Produce json
// @Param id path string true "Option ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/options/services/{id} [delete]
func (h *leadHandler) removeServiceOption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	if err := h.leadService.RemoveServiceOption(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to remove service option")
		return
	}

	c.Status(http.StatusNoContent)
}

// addStatusOption godoc
// @Summary Add a pipeline stage
// @Tags leads
// @Accept json
// @Produce json
// @Param option body dto.CreateStatusOptionRequest true "Stage details"
// @Success 201 {object} dto.StatusOptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/options/statuses [post]
func (h *leadHandler) addStatusOption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.CreateStatusOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	option, err := h.leadService.AddStatusOption(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, logger, err, "Failed to add status option")
		return
	}

	c.JSON(http.StatusCreated, dto.StatusOptionResponse{
		OptionID:  option.OptionID,
		Name:      option.Name,
		SortOrder: option.SortOrder,
		IsDefault: option.IsDefault,
		Color:     option.Color,
	})
}

// removeStatusOption godoc
// @Summary Remove a pipeline stage
// @Tags leads
// @Produce json
// @Param id path string true "Option ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leads/options/statuses/{id} [delete]
func (h *leadHandler) removeStatusOption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	if err := h.leadService.RemoveStatusOption(c.Request.Context(), session, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to remove status option")
		return
	}

	c.Status(http.StatusNoContent)
}
