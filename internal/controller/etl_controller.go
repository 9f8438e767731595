package controller

import (
	"courses_platform_backend/internal/service"
	"courses_platform_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ETLController struct {
	ExportService *service.ExportService
}

func NewETLController(exportService *service.ExportService) *ETLController {
	return &ETLController{ExportService: exportService}
}

// @Summary Export all activities as CSV
// @Description Denormalized rows with user, course and material context.
// With archive=true a copy is stored through the storage provider and its
// URL returned in X-Archive-URL.
// @Tags etl
// @Produce text/csv
// @Security ApiKeyAuth
// @Param archive query bool false "also archive the file" default(false)
// @Success 200 {string} string "csv"
// @Router /api/etl/activities/export [get]
func (c *ETLController) ExportCSV(ctx *gin.Context) {
	if ctx.Query("archive") == "true" {
		url, err := c.ExportService.ArchiveCSV(ctx.Request.Context())
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		ctx.Header("X-Archive-URL", url)
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", "attachment; filename=activities_export.csv")
	ctx.Status(http.StatusOK)

	if err := c.ExportService.WriteCSV(ctx.Writer); err != nil {
		util.LogInternalError(ctx, err)
	}
}

// @Summary Export all activities as JSON records
// @Tags etl
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/etl/activities/export.json [get]
func (c *ETLController) ExportJSON(ctx *gin.Context) {
	rows, err := c.ExportService.Rows()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}
