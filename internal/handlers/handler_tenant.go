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

// tenantHandler handles HTTP requests related to tenants and their
// subscriptions.
type tenantHandler struct {
	tenantService       portssvc.TenantSvcFacade
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade, ss portssvc.SubscriptionSvcFacade) *tenantHandler {
	return &tenantHandler{
		tenantService:       ts,
		subscriptionService: ss,
	}
}

// registerTenantRoutes registers tenant management and subscription routes.
// The whole group is platform administration, gated on manage_tenants.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newTenantHandler(tenantService, subscriptionService)

	tenants := rg.Group("/tenants", middleware.RequirePermission(domain.PermManageTenants))
	{
		tenants.GET("", h.listTenants)
		tenants.POST("", h.createTenant)
		tenants.GET("/:id", h.getTenant)
		tenants.PUT("/:id", h.updateTenant)
		tenants.GET("/:id/subscription", h.getSubscription)
		tenants.POST("/:id/subscription", h.createSubscription)
	}

	subscriptions := rg.Group("/subscriptions", middleware.RequirePermission(domain.PermManageSubscriptions))
	{
		subscriptions.PUT("/:id/status", h.updateSubscriptionStatus)
	}
}

// createTenant godoc
// @Summary Create a tenant
// @Description Creates a new tenant organisation with its module allow-list.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create tenant")
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listTenants godoc
// @Summary List tenants
// @Tags tenants
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListTenantsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var params dto.ListTenantsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	tenants, err := h.tenantService.ListTenants(c.Request.Context(), session, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list tenants")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTenantsResponse(tenants))
}

// getTenant godoc
// @Summary Get a tenant by ID
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve tenant")
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateTenant godoc
// @Summary Update a tenant
// @Description Updates tenant details, the module allow-list or the active flag.
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param tenant body dto.UpdateTenantRequest true "Fields to update"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [put]
func (h *tenantHandler) updateTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}
	tenantID := c.Param("id")

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), session, tenantID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update tenant")
		return
	}

	logger.Info("Tenant updated", slog.String("tenant_id", tenantID))
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// getSubscription godoc
// @Summary Get a tenant's current subscription
// @Description Returns the tenant's subscription. A subscription past its end date is reported (and persisted) as expired.
// @Tags subscriptions
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Tenant has no subscription"
// @Security BearerAuth
// @Router /tenants/{id}/subscription [get]
func (h *tenantHandler) getSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sub, err := h.subscriptionService.GetSubscriptionForTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve subscription")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(sub))
}

// createSubscription godoc
// @Summary Start a subscription on a tenant
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param subscription body dto.CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} dto.SubscriptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{id}/subscription [post]
func (h *tenantHandler) createSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}
	tenantID := c.Param("id")

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sub, err := h.subscriptionService.CreateSubscription(c.Request.Context(), session, tenantID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create subscription")
		return
	}

	logger.Info("Subscription created", slog.String("tenant_id", tenantID), slog.String("subscription_id", sub.SubscriptionID))
	c.JSON(http.StatusCreated, dto.ToSubscriptionResponse(sub))
}

// updateSubscriptionStatus godoc
// @Summary Change a subscription's status
// @Description Applies a validated lifecycle transition (for example suspended to active). Invalid transitions are rejected.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param status body dto.UpdateSubscriptionStatusRequest true "New status"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} ErrorResponse "Invalid transition"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{id}/status [put]
func (h *tenantHandler) updateSubscriptionStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}
	subscriptionID := c.Param("id")

	var req dto.UpdateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sub, err := h.subscriptionService.UpdateSubscriptionStatus(c.Request.Context(), session, subscriptionID, domain.SubscriptionStatus(req.Status))
	if err != nil {
		respondError(c, logger, err, "Failed to update subscription status")
		return
	}

	logger.Info("Subscription status updated", slog.String("subscription_id", subscriptionID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(sub))
}
