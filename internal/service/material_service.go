package service

import (
	"context"
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"courses_platform_backend/internal/util"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialService struct {
	MaterialRepo *repository.MaterialRepository
	CourseRepo   *repository.CourseRepository
	Storage      *StorageService
}

func NewMaterialService(
	materialRepo *repository.MaterialRepository,
	courseRepo *repository.CourseRepository,
	storage *StorageService,
) *MaterialService {
	return &MaterialService{
		MaterialRepo: materialRepo,
		CourseRepo:   courseRepo,
		Storage:      storage,
	}
}

func (s *MaterialService) Create(material *model.Material) error {
	if _, err := s.CourseRepo.FindByID(material.CourseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrCourseNotFound
		}
		return err
	}
	return s.MaterialRepo.Create(material)
}

func (s *MaterialService) GetByID(id uint) (*model.Material, error) {
	material, err := s.MaterialRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrMaterialNotFound
		}
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) List(courseID uint) ([]model.Material, error) {
	return s.MaterialRepo.List(courseID)
}

// MaterialPatch carries the optional fields of a partial material update.
type MaterialPatch struct {
	Title      *string
	Content    *string
	Type       *model.MaterialType
	OrderIndex *int
}

func (s *MaterialService) Update(id uint, patch MaterialPatch) (*model.Material, error) {
	material, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		material.Title = *patch.Title
	}
	if patch.Content != nil {
		material.Content = *patch.Content
	}
	if patch.Type != nil {
		material.Type = *patch.Type
	}
	if patch.OrderIndex != nil {
		material.OrderIndex = *patch.OrderIndex
	}

	if err := s.MaterialRepo.Update(material); err != nil {
		return nil, err
	}
	return material, nil
}

// Delete removes the material row only; its activities stay behind as
// orphans, excluded from joined reads.
func (s *MaterialService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.MaterialRepo.Delete(id)
}

// AttachFile stores an uploaded file under materials/ and records its URL
// on the material.
func (s *MaterialService) AttachFile(ctx context.Context, id uint, header *multipart.FileHeader) (*model.Material, error) {
	material, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	objectName := fmt.Sprintf("materials/%d/%s%s", id, uuid.New().String(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")

	url, err := s.Storage.Provider.Upload(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	material.AttachmentURL = url
	if err := s.MaterialRepo.Update(material); err != nil {
		return nil, err
	}
	return material, nil
}
