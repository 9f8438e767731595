package repository

import (
	"courses_platform_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) FindByID(id uint) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) List(userID, materialID uint, action string) ([]model.Activity, error) {
	query := r.DB.Model(&model.Activity{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if materialID != 0 {
		query = query.Where("material_id = ?", materialID)
	}
	if action != "" {
		query = query.Where("action = ?", action)
	}

	var activities []model.Activity
	err := query.Order("timestamp ASC, id ASC").Find(&activities).Error
	return activities, err
}

// ActivityFilter narrows the joined activity set read by FindDetailed.
// Zero values mean "no constraint".
type ActivityFilter struct {
	UserID       uint
	CourseID     uint
	MaterialType model.MaterialType
	Action       string
}

const detailColumns = `activities.id AS activity_id,
activities.user_id AS user_id,
users.name AS user_name,
users.email AS user_email,
courses.id AS course_id,
courses.title AS course_title,
materials.id AS material_id,
materials.title AS material_title,
materials.type AS material_type,
activities.action AS action,
activities.timestamp AS timestamp,
activities.duration AS duration,
activities.score AS score,
activities.meta AS meta`

// FindDetailed returns activity rows joined with their material, the
// material's course and the acting user. Inner joins drop activities whose
// user or material has been deleted, which is the contract for orphans.
func (r *ActivityRepository) FindDetailed(f ActivityFilter) ([]model.ActivityDetail, error) {
	query := r.DB.Table("activities").
		Select(detailColumns).
		Joins("JOIN users ON activities.user_id = users.id").
		Joins("JOIN materials ON activities.material_id = materials.id").
		Joins("JOIN courses ON materials.course_id = courses.id")

	if f.UserID != 0 {
		query = query.Where("activities.user_id = ?", f.UserID)
	}
	if f.CourseID != 0 {
		query = query.Where("materials.course_id = ?", f.CourseID)
	}
	if f.MaterialType != "" {
		query = query.Where("materials.type = ?", f.MaterialType)
	}
	if f.Action != "" {
		query = query.Where("activities.action = ?", f.Action)
	}

	var rows []model.ActivityDetail
	err := query.Order("activities.timestamp ASC, activities.id ASC").Scan(&rows).Error
	return rows, err
}
