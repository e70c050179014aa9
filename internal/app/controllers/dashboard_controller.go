package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/emurray/registrar/internal/app/services"
	"github.com/emurray/registrar/internal/pkg/apperrors"
	"github.com/emurray/registrar/internal/pkg/logger"
)

// DashboardController handles the dashboard page and exports
type DashboardController struct {
	dashboardService services.DashboardService
	exportService    services.ExportService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, exportService services.ExportService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// ShowDashboard renders the aggregate counts from both stores
func (c *DashboardController) ShowDashboard(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx)
	if err != nil {
		renderStoreFailure(ctx, err, "/")
		return
	}

	ctx.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Stats": stats,
	})
}

// ExportResource streams a CSV of the named resource as a download. The
// intermediate file is uniquely named per request and removed once the
// response has been written.
func (c *DashboardController) ExportResource(ctx *gin.Context) {
	resource := ctx.Param("resource")

	file, err := c.exportService.ExportCSV(ctx, resource)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownExportResource) {
			renderError(ctx, http.StatusNotFound, "Not Found",
				"Unknown export resource "+resource+".", "/dashboard", "Back to Dashboard")
			return
		}
		renderStoreFailure(ctx, err, "/dashboard")
		return
	}
	defer func() {
		if err := os.Remove(file.Path); err != nil {
			logger.Warn().Err(err).Str("path", file.Path).Msg("Failed to remove export file")
		}
	}()

	ctx.FileAttachment(file.Path, file.Filename)
}
