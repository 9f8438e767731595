package controller

import (
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/service"
	"courses_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MaterialController struct {
	MaterialService *service.MaterialService
}

func NewMaterialController(materialService *service.MaterialService) *MaterialController {
	return &MaterialController{MaterialService: materialService}
}

type MaterialCreateRequest struct {
	CourseID   uint   `json:"course_id" binding:"required"`
	Title      string `json:"title" binding:"required,max=200"`
	Content    string `json:"content"`
	Type       string `json:"type" binding:"required,oneof=video text quiz assignment"`
	OrderIndex int    `json:"order_index"`
}

type MaterialUpdateRequest struct {
	Title      *string `json:"title" binding:"omitempty,max=200"`
	Content    *string `json:"content"`
	Type       *string `json:"type" binding:"omitempty,oneof=video text quiz assignment"`
	OrderIndex *int    `json:"order_index"`
}

// @Summary List materials
// @Tags materials
// @Produce json
// @Security ApiKeyAuth
// @Param course_id query int false "course filter"
// @Success 200 {object} util.Response
// @Router /api/materials [get]
func (c *MaterialController) List(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Query("course_id"))

	materials, err := c.MaterialService.List(courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, materials)
}

// @Summary Create a material
// @Tags materials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body MaterialCreateRequest true "material data"
// @Success 201 {object} util.Response
// @Router /api/materials [post]
func (c *MaterialController) Create(ctx *gin.Context) {
	var req MaterialCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material := &model.Material{
		CourseID:   req.CourseID,
		Title:      req.Title,
		Content:    req.Content,
		Type:       model.MaterialType(req.Type),
		OrderIndex: req.OrderIndex,
	}

	if err := c.MaterialService.Create(material); err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, material)
}

// @Summary Get a material
// @Tags materials
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "material id"
// @Success 200 {object} util.Response
// @Router /api/materials/{id} [get]
func (c *MaterialController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	material, err := c.MaterialService.GetByID(id)
	if err != nil {
		if err == util.ErrMaterialNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, material)
}

// @Summary Patch a material
// @Tags materials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "material id"
// @Param request body MaterialUpdateRequest true "fields to change"
// @Success 200 {object} util.Response
// @Router /api/materials/{id} [patch]
func (c *MaterialController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req MaterialUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	patch := service.MaterialPatch{
		Title:      req.Title,
		Content:    req.Content,
		OrderIndex: req.OrderIndex,
	}
	if req.Type != nil {
		t := model.MaterialType(*req.Type)
		patch.Type = &t
	}

	material, err := c.MaterialService.Update(id, patch)
	if err != nil {
		if err == util.ErrMaterialNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, material)
}

// @Summary Delete a material
// @Description Removes the material; its activities stay queryable by id
// @Tags materials
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "material id"
// @Success 200 {object} util.Response
// @Router /api/materials/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.MaterialService.Delete(id); err != nil {
		if err == util.ErrMaterialNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Material deleted"})
}

// @Summary Upload a material attachment
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "material id"
// @Param file formData file true "attachment"
// @Success 200 {object} util.Response
// @Router /api/materials/{id}/attachment [post]
func (c *MaterialController) UploadAttachment(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	material, err := c.MaterialService.AttachFile(ctx.Request.Context(), id, header)
	if err != nil {
		if err == util.ErrMaterialNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, material)
}
