package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/digitalavenger/leadbill/internal/middleware"

	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests for per-tenant company settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers the company settings routes.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.saveSettings)
		settings.POST("/logo", h.uploadLogo)
	}
}

// getSettings godoc
// @Summary Get company settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Settings not saved yet"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), session)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// saveSettings godoc
// @Summary Save company settings
// @Description Inserts or replaces the tenant's company settings. The invoice prefix must be 1 to 5 capital letters.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.SaveSettingsRequest true "Company settings"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse "Validation failure, including an invalid invoice prefix"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) saveSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	var req dto.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.settingsService.SaveSettings(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save settings")
		return
	}

	logger.Info("Company settings saved", slog.String("settings_id", settings.SettingsID))
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// uploadLogo godoc
// @Summary Upload a company logo
// @Description Accepts a multipart image upload (PNG, JPEG, SVG or WebP, max 2 MB), stores it and records its public URL on the settings.
// @Tags settings
// @Accept mpfd
// @Produce json
// @Param logo formData file true "Logo image"
// @Success 200 {object} dto.LogoUploadResponse
// @Failure 400 {object} ErrorResponse "Missing file, unsupported type, oversize upload or settings not saved yet"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/logo [post]
func (h *settingsHandler) uploadLogo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := mustSession(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A 'logo' file field is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded logo", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read upload"})
		return
	}
	defer file.Close()

	logoURL, err := h.settingsService.UploadLogo(
		c.Request.Context(),
		session,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		respondError(c, logger, err, "Failed to upload logo")
		return
	}

	logger.Info("Company logo uploaded", slog.String("logo_url", logoURL))
	c.JSON(http.StatusOK, dto.LogoUploadResponse{LogoURL: logoURL})
}
