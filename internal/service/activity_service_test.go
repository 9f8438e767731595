package service

import (
	"testing"
	"time"

	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"courses_platform_backend/internal/testutil"
	"courses_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newActivityService(db *gorm.DB) *ActivityService {
	return NewActivityService(
		repository.NewActivityRepository(db),
		repository.NewUserRepository(db),
		repository.NewMaterialRepository(db),
	)
}

func TestRecordPreservesExplicitTimestamp(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newActivityService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	material := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)

	past := time.Date(2023, 11, 20, 8, 15, 0, 0, time.UTC)
	activity := &model.Activity{
		UserID:     student.ID,
		MaterialID: material.ID,
		Action:     "view",
		Timestamp:  past,
	}
	require.NoError(t, svc.Record(activity))
	assert.NotZero(t, activity.ID)
	assert.True(t, activity.Timestamp.Equal(past))

	stored, err := repository.NewActivityRepository(db).FindByID(activity.ID)
	require.NoError(t, err)
	assert.True(t, stored.Timestamp.Equal(past))
}

func TestRecordAssignsServerTimeWhenOmitted(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newActivityService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	material := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)

	before := time.Now()
	activity := &model.Activity{
		UserID:     student.ID,
		MaterialID: material.ID,
		Action:     "view",
	}
	require.NoError(t, svc.Record(activity))

	assert.False(t, activity.Timestamp.IsZero())
	assert.False(t, activity.Timestamp.Before(before))
	assert.False(t, activity.Timestamp.After(time.Now()))
}

func TestRecordRejectsUnknownReferences(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newActivityService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	material := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)

	err := svc.Record(&model.Activity{UserID: 9999, MaterialID: material.ID, Action: "view"})
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	err = svc.Record(&model.Activity{UserID: student.ID, MaterialID: 9999, Action: "view"})
	assert.ErrorIs(t, err, util.ErrMaterialNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Activity{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListFiltersAndOrder(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newActivityService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com", model.Student)
	bob := testutil.CreateUser(t, db, "Bob", "bob@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	m1 := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)
	m2 := testutil.CreateMaterial(t, db, course.ID, "Lesson 2", model.Video, 1)

	ts := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	testutil.CreateActivity(t, db, alice.ID, m1.ID, "view", ts.Add(2*time.Hour), nil, nil)
	testutil.CreateActivity(t, db, alice.ID, m2.ID, model.ActionComplete, ts, nil, nil)
	testutil.CreateActivity(t, db, bob.ID, m1.ID, "view", ts.Add(time.Hour), nil, nil)

	all, err := svc.List(0, 0, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Timestamp.Before(all[i-1].Timestamp))
	}

	byUser, err := svc.List(alice.ID, 0, "")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byMaterial, err := svc.List(0, m1.ID, "")
	require.NoError(t, err)
	assert.Len(t, byMaterial, 2)

	byAction, err := svc.List(0, 0, model.ActionComplete)
	require.NoError(t, err)
	require.Len(t, byAction, 1)
	assert.Equal(t, alice.ID, byAction[0].UserID)
}
