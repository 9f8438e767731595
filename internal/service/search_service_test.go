package service

import (
	"testing"

	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"courses_platform_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSearchService(db *gorm.DB) *SearchService {
	return NewSearchService(
		repository.NewCourseRepository(db),
		repository.NewMaterialRepository(db),
	)
}

func TestSearchMatchesCoursesAndMaterials(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSearchService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	goCourse := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	testutil.CreateCourse(t, db, "Rust Basics", teacher.ID)
	testutil.CreateMaterial(t, db, goCourse.ID, "Goroutines explained", model.Video, 0)
	testutil.CreateMaterial(t, db, goCourse.ID, "Channels quiz", model.Quiz, 1)

	result, err := svc.Search("go", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalCourses)
	require.Len(t, result.Courses, 1)
	assert.Equal(t, "Go Basics", result.Courses[0].Title)

	assert.Equal(t, 1, result.TotalMaterials)
	require.Len(t, result.Materials, 1)
	assert.Equal(t, "Goroutines explained", result.Materials[0].Title)
}

func TestSearchTypeFilter(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSearchService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	testutil.CreateMaterial(t, db, course.ID, "Goroutines explained", model.Video, 0)
	testutil.CreateMaterial(t, db, course.ID, "Goroutines quiz", model.Quiz, 1)

	result, err := svc.Search("goroutines", "", "", model.Quiz)
	require.NoError(t, err)

	require.Len(t, result.Materials, 1)
	assert.Equal(t, model.Quiz, result.Materials[0].Type)
}

func TestSearchNoMatchesReturnsEmptySlices(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newSearchService(db)

	result, err := svc.Search("nothing here", "", "", "")
	require.NoError(t, err)

	require.NotNil(t, result.Courses)
	require.NotNil(t, result.Materials)
	assert.Zero(t, result.TotalCourses)
	assert.Zero(t, result.TotalMaterials)
}
