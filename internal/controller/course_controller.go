package controller

import (
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/service"
	"courses_platform_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

type CourseCreateRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,max=50"`
	Level       string `json:"level" binding:"required,oneof=beginner intermediate advanced"`
	TeacherID   uint   `json:"teacher_id" binding:"required"`
}

type CourseUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	Level       *string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	IsActive    *bool   `json:"is_active"`
}

// @Summary List courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param skip query int false "offset" default(0)
// @Param limit query int false "page size" default(100)
// @Param category query string false "category filter"
// @Param level query string false "level filter"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))
	category := ctx.Query("category")
	level := model.CourseLevel(ctx.Query("level"))

	courses, err := c.CourseService.List(skip, limit, category, level)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CourseCreateRequest true "course data"
// @Success 201 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req CourseCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       model.CourseLevel(req.Level),
		TeacherID:   req.TeacherID,
		IsActive:    true,
	}

	if err := c.CourseService.Create(course); err != nil {
		if err == util.ErrUserNotFound {
			util.NotFound(ctx, "teacher not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, course)
}

// @Summary Get a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	course, err := c.CourseService.GetByID(id)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary Patch a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param request body CourseUpdateRequest true "fields to change"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [patch]
func (c *CourseController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req CourseUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	patch := service.CoursePatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    req.IsActive,
	}
	if req.Level != nil {
		level := model.CourseLevel(*req.Level)
		patch.Level = &level
	}

	course, err := c.CourseService.Update(id, patch)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary Delete a course
// @Description Removes the course and all of its materials
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.CourseService.Delete(id); err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Course deleted"})
}

// @Summary List a course's materials
// @Description Materials ordered by order_index
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/materials [get]
func (c *CourseController) Materials(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	materials, err := c.CourseService.Materials(id)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, materials)
}
