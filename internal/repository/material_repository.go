package repository

import (
	"courses_platform_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(material *model.Material) error {
	return r.DB.Create(material).Error
}

func (r *MaterialRepository) FindByID(id uint) (*model.Material, error) {
	var material model.Material
	err := r.DB.First(&material, id).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// FindByCourse returns the course's materials in display order. order_index
// ties resolve by id, which is insertion order.
func (r *MaterialRepository) FindByCourse(courseID uint) ([]model.Material, error) {
	var materials []model.Material
	err := r.DB.Where("course_id = ?", courseID).
		Order("order_index ASC, id ASC").
		Find(&materials).Error
	return materials, err
}

func (r *MaterialRepository) List(courseID uint) ([]model.Material, error) {
	query := r.DB.Model(&model.Material{})
	if courseID != 0 {
		query = query.Where("course_id = ?", courseID)
	}

	var materials []model.Material
	err := query.Find(&materials).Error
	return materials, err
}

func (r *MaterialRepository) CountByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Material{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *MaterialRepository) Update(material *model.Material) error {
	return r.DB.Save(material).Error
}

func (r *MaterialRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Material{}, id).Error
}

func (r *MaterialRepository) Search(q string, materialType model.MaterialType) ([]model.Material, error) {
	query := r.DB.Model(&model.Material{})
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", like, like)
	}
	if materialType != "" {
		query = query.Where("type = ?", materialType)
	}

	var materials []model.Material
	err := query.Find(&materials).Error
	return materials, err
}
