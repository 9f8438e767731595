package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"courses_platform_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newExportService(db *gorm.DB) *ExportService {
	return NewExportService(repository.NewActivityRepository(db), nil)
}

func TestWriteCSVHeader(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newExportService(db)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"user_id", "user_name", "user_email", "course_id", "course_title",
		"material_id", "material_title", "material_type", "action",
		"timestamp", "duration", "score", "meta",
	}, records[0])
}

func TestWriteCSVRows(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newExportService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Alice", "alice@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	quiz := testutil.CreateMaterial(t, db, course.ID, "Quiz 1", model.Quiz, 0)
	video := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 1)

	ts := time.Date(2024, 8, 1, 10, 30, 0, 0, time.UTC)
	require.NoError(t, db.Create(&model.Activity{
		UserID:     student.ID,
		MaterialID: quiz.ID,
		Action:     model.ActionComplete,
		Timestamp:  ts,
		Duration:   testutil.Float(95.5),
		Score:      testutil.Float(88),
		Meta:       datatypes.JSON(`{"source":"web"}`),
	}).Error)
	testutil.CreateActivity(t, db, student.ID, video.ID, "view", ts.Add(time.Hour), nil, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	scored := records[1]
	assert.Equal(t, "Alice", scored[1])
	assert.Equal(t, "alice@example.com", scored[2])
	assert.Equal(t, "Go Basics", scored[4])
	assert.Equal(t, "Quiz 1", scored[6])
	assert.Equal(t, "quiz", scored[7])
	assert.Equal(t, model.ActionComplete, scored[8])
	assert.Equal(t, ts.Format(time.RFC3339), scored[9])
	assert.Equal(t, "95.5", scored[10])
	assert.Equal(t, "88", scored[11])
	assert.JSONEq(t, `{"source":"web"}`, scored[12])

	// Absent duration/score/meta become empty cells, never "0" or "null".
	unscored := records[2]
	assert.Equal(t, "", unscored[10])
	assert.Equal(t, "", unscored[11])
	assert.Equal(t, "", unscored[12])
}

func TestRowsEmptyStoreReturnsEmptySlice(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newExportService(db)

	rows, err := svc.Rows()
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRowsExcludeOrphans(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newExportService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Alice", "alice@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	m1 := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)
	m2 := testutil.CreateMaterial(t, db, course.ID, "Lesson 2", model.Video, 1)

	ts := time.Date(2024, 8, 2, 9, 0, 0, 0, time.UTC)
	testutil.CreateActivity(t, db, student.ID, m1.ID, "view", ts, nil, nil)
	testutil.CreateActivity(t, db, student.ID, m2.ID, "view", ts, nil, nil)

	require.NoError(t, db.Delete(&model.Material{}, m2.ID).Error)

	rows, err := svc.Rows()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, m1.ID, rows[0].MaterialID)
}
