package controller

import (
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/service"
	"courses_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	SearchService *service.SearchService
}

func NewSearchController(searchService *service.SearchService) *SearchController {
	return &SearchController{SearchService: searchService}
}

// @Summary Search courses and materials
// @Tags search
// @Produce json
// @Security ApiKeyAuth
// @Param q query string false "substring query"
// @Param category query string false "course category filter"
// @Param level query string false "course level filter"
// @Param material_type query string false "material type filter"
// @Success 200 {object} util.Response
// @Router /api/search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	q := ctx.Query("q")
	category := ctx.Query("category")
	level := model.CourseLevel(ctx.Query("level"))
	materialType := model.MaterialType(ctx.Query("material_type"))

	result, err := c.SearchService.Search(q, category, level, materialType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
