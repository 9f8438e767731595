package controller

import (
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/service"
	"courses_platform_backend/internal/util"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

type ActivityCreateRequest struct {
	UserID     uint           `json:"user_id" binding:"required"`
	MaterialID uint           `json:"material_id" binding:"required"`
	Action     string         `json:"action" binding:"required,max=50"`
	Duration   *float64       `json:"duration" binding:"omitempty,gte=0"`
	Score      *float64       `json:"score" binding:"omitempty,gte=0,lte=100"`
	Meta       map[string]any `json:"meta"`
	Timestamp  *time.Time     `json:"timestamp"`
}

// @Summary Log an activity event
// @Description Appends one immutable event; a missing timestamp gets the
// server's current time. Duplicate submissions produce duplicate rows.
// @Tags activities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ActivityCreateRequest true "event data"
// @Success 201 {object} util.Response
// @Router /api/activities [post]
func (c *ActivityController) Create(ctx *gin.Context) {
	var req ActivityCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity := &model.Activity{
		UserID:     req.UserID,
		MaterialID: req.MaterialID,
		Action:     req.Action,
		Duration:   req.Duration,
		Score:      req.Score,
	}
	if req.Timestamp != nil {
		activity.Timestamp = *req.Timestamp
	}
	if req.Meta != nil {
		meta, err := json.Marshal(req.Meta)
		if err != nil {
			util.BadRequest(ctx, "invalid meta")
			return
		}
		activity.Meta = datatypes.JSON(meta)
	}

	if err := c.ActivityService.Record(activity); err != nil {
		switch err {
		case util.ErrUserNotFound, util.ErrMaterialNotFound:
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, activity)
}

// @Summary List activity events
// @Tags activities
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query int false "user filter"
// @Param material_id query int false "material filter"
// @Param action query string false "action filter"
// @Success 200 {object} util.Response
// @Router /api/activities [get]
func (c *ActivityController) List(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("user_id"))
	materialID := util.MustParseUint(ctx.Query("material_id"))
	action := ctx.Query("action")

	activities, err := c.ActivityService.List(userID, materialID, action)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, activities)
}
