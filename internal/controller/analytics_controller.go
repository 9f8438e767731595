package controller

import (
	"courses_platform_backend/internal/service"
	"courses_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary Per-course progress for a user
// @Description Maps course id to completion, time spent and average score
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/analytics/user/{id}/progress [get]
func (c *AnalyticsController) UserProgress(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	progress, err := c.AnalyticsService.UserProgress(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary Aggregate statistics for a course
// @Description Distinct students, time spent, score average, completions
// and engagement rate
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/analytics/course/{id}/statistics [get]
func (c *AnalyticsController) CourseStatistics(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	stats, err := c.AnalyticsService.CourseStatistics(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary Daily completion counts for a course
// @Description Sparse map of ISO date to completion count
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/analytics/course/{id}/daily-completions [get]
func (c *AnalyticsController) DailyCompletions(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	daily, err := c.AnalyticsService.DailyCompletions(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, daily)
}

// @Summary Most-interacted materials of a course
// @Description Top 5 materials by activity count, any action
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/analytics/course/{id}/top-materials [get]
func (c *AnalyticsController) TopMaterials(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	top, err := c.AnalyticsService.TopMaterials(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, top)
}

// @Summary Average quiz score across a course
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/analytics/course/{id}/average-test-score [get]
func (c *AnalyticsController) CourseAverageTestScore(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))

	avg, err := c.AnalyticsService.CourseAverageTestScore(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, avg)
}

// @Summary Average quiz score for a user
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/analytics/user/{id}/average-test-score [get]
func (c *AnalyticsController) UserAverageTestScore(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	avg, err := c.AnalyticsService.UserAverageTestScore(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, avg)
}
