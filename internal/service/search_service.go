package service

import (
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
)

type SearchService struct {
	CourseRepo   *repository.CourseRepository
	MaterialRepo *repository.MaterialRepository
}

func NewSearchService(courseRepo *repository.CourseRepository, materialRepo *repository.MaterialRepository) *SearchService {
	return &SearchService{
		CourseRepo:   courseRepo,
		MaterialRepo: materialRepo,
	}
}

// Search matches courses on title/description/category and materials on
// title/content, with optional category/level/type narrowing.
func (s *SearchService) Search(q, category string, level model.CourseLevel, materialType model.MaterialType) (*model.SearchResult, error) {
	courses, err := s.CourseRepo.Search(q, category, level)
	if err != nil {
		return nil, err
	}

	materials, err := s.MaterialRepo.Search(q, materialType)
	if err != nil {
		return nil, err
	}

	if courses == nil {
		courses = []model.Course{}
	}
	if materials == nil {
		materials = []model.Material{}
	}

	return &model.SearchResult{
		Courses:        courses,
		Materials:      materials,
		TotalCourses:   len(courses),
		TotalMaterials: len(materials),
	}, nil
}
