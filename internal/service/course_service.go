package service

import (
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"courses_platform_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo   *repository.CourseRepository
	MaterialRepo *repository.MaterialRepository
	UserRepo     *repository.UserRepository
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	materialRepo *repository.MaterialRepository,
	userRepo *repository.UserRepository,
) *CourseService {
	return &CourseService{
		CourseRepo:   courseRepo,
		MaterialRepo: materialRepo,
		UserRepo:     userRepo,
	}
}

func (s *CourseService) Create(course *model.Course) error {
	if _, err := s.UserRepo.FindByID(course.TeacherID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrUserNotFound
		}
		return err
	}
	return s.CourseRepo.Create(course)
}

func (s *CourseService) GetByID(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) List(skip, limit int, category string, level model.CourseLevel) ([]model.Course, error) {
	return s.CourseRepo.List(skip, limit, category, level)
}

// CoursePatch carries the optional fields of a partial course update.
type CoursePatch struct {
	Title       *string
	Description *string
	Category    *string
	Level       *model.CourseLevel
	IsActive    *bool
}

func (s *CourseService) Update(id uint, patch CoursePatch) (*model.Course, error) {
	course, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.Category != nil {
		course.Category = *patch.Category
	}
	if patch.Level != nil {
		course.Level = *patch.Level
	}
	if patch.IsActive != nil {
		course.IsActive = *patch.IsActive
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes the course together with its materials (cascade).
func (s *CourseService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}

func (s *CourseService) Materials(courseID uint) ([]model.Material, error) {
	if _, err := s.GetByID(courseID); err != nil {
		return nil, err
	}
	return s.MaterialRepo.FindByCourse(courseID)
}
