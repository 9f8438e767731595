package service

import (
	"testing"
	"time"

	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"courses_platform_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnalyticsService(db *gorm.DB) *AnalyticsService {
	return NewAnalyticsService(
		repository.NewActivityRepository(db),
		repository.NewMaterialRepository(db),
		nil,
	)
}

func TestUserProgressQuarterComplete(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)

	materials := make([]*model.Material, 4)
	for i := range materials {
		materials[i] = testutil.CreateMaterial(t, db, course.ID, "Lesson", model.Video, i)
	}

	base := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		testutil.CreateActivity(t, db, student.ID, materials[i].ID, "view",
			base.Add(time.Duration(i)*time.Minute), testutil.Float(120), nil)
	}
	testutil.CreateActivity(t, db, student.ID, materials[0].ID, model.ActionComplete,
		base.Add(time.Hour), testutil.Float(30), nil)

	progress, err := svc.UserProgress(student.ID)
	require.NoError(t, err)
	require.Contains(t, progress, course.ID)

	p := progress[course.ID]
	assert.Equal(t, "Go Basics", p.CourseTitle)
	assert.Equal(t, 4, p.TotalMaterials)
	assert.Equal(t, 1, p.CompletedMaterials)
	assert.Equal(t, 25.0, p.CompletionPercentage)
	assert.Equal(t, 390.0, p.TotalTime)
	assert.Equal(t, 0.0, p.AvgScore)
}

func TestUserProgressNoActivity(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)

	progress, err := svc.UserProgress(student.ID)
	require.NoError(t, err)
	assert.Empty(t, progress)
}

func TestUserProgressCompletedNeverExceedsTotal(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	material := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)

	// Completing the same material twice still counts it once.
	ts := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	testutil.CreateActivity(t, db, student.ID, material.ID, model.ActionComplete, ts, nil, nil)
	testutil.CreateActivity(t, db, student.ID, material.ID, model.ActionComplete, ts.Add(time.Hour), nil, nil)

	progress, err := svc.UserProgress(student.ID)
	require.NoError(t, err)

	p := progress[course.ID]
	assert.Equal(t, 1, p.CompletedMaterials)
	assert.LessOrEqual(t, p.CompletedMaterials, p.TotalMaterials)
	assert.Equal(t, 100.0, p.CompletionPercentage)
}

func TestCourseStatisticsEmptyCourse(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	course := testutil.CreateCourse(t, db, "Untouched", teacher.ID)
	testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Text, 0)

	stats, err := svc.CourseStatistics(course.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0.0, stats.TotalTimeSpent)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, 0, stats.TotalCompletions)
	assert.Equal(t, 0.0, stats.EngagementRate)
}

func TestCourseStatisticsAggregates(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com", model.Student)
	bob := testutil.CreateUser(t, db, "Bob", "bob@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	m1 := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)
	m2 := testutil.CreateMaterial(t, db, course.ID, "Quiz 1", model.Quiz, 1)

	ts := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	testutil.CreateActivity(t, db, alice.ID, m1.ID, model.ActionComplete, ts, testutil.Float(100), nil)
	testutil.CreateActivity(t, db, alice.ID, m2.ID, model.ActionComplete, ts, testutil.Float(50), testutil.Float(80))
	testutil.CreateActivity(t, db, bob.ID, m1.ID, model.ActionComplete, ts, testutil.Float(200), nil)
	testutil.CreateActivity(t, db, bob.ID, m2.ID, "view", ts, nil, testutil.Float(60))

	stats, err := svc.CourseStatistics(course.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 350.0, stats.TotalTimeSpent)
	assert.Equal(t, 70.0, stats.AverageScore)
	assert.Equal(t, 3, stats.TotalCompletions)
	assert.Equal(t, 1.5, stats.EngagementRate)
}

func TestCourseStatisticsIgnoresOtherCourses(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	other := testutil.CreateCourse(t, db, "Rust Basics", teacher.ID)
	m := testutil.CreateMaterial(t, db, other.ID, "Lesson 1", model.Video, 0)

	testutil.CreateActivity(t, db, student.ID, m.ID, model.ActionComplete,
		time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), testutil.Float(10), nil)

	stats, err := svc.CourseStatistics(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0, stats.TotalCompletions)
}

func TestDailyCompletions(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	m1 := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)
	m2 := testutil.CreateMaterial(t, db, course.ID, "Lesson 2", model.Video, 1)

	day1 := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 6, 18, 30, 0, 0, time.UTC)
	testutil.CreateActivity(t, db, student.ID, m1.ID, model.ActionComplete, day1, nil, nil)
	testutil.CreateActivity(t, db, student.ID, m2.ID, model.ActionComplete, day1.Add(2*time.Hour), nil, nil)
	testutil.CreateActivity(t, db, student.ID, m1.ID, model.ActionComplete, day2, nil, nil)
	testutil.CreateActivity(t, db, student.ID, m2.ID, "view", day2, nil, nil)

	daily, err := svc.DailyCompletions(course.ID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"2024-01-05": 2, "2024-01-06": 1}, daily)

	total := 0
	for _, n := range daily {
		total += n
	}
	stats, err := svc.CourseStatistics(course.ID)
	require.NoError(t, err)
	assert.Equal(t, stats.TotalCompletions, total)
}

func TestTopMaterialsRankingAndLimit(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)

	ts := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	counts := []int{3, 1, 3, 2, 1, 1}
	for i, n := range counts {
		m := testutil.CreateMaterial(t, db, course.ID, "Lesson", model.Video, i)
		for j := 0; j < n; j++ {
			testutil.CreateActivity(t, db, student.ID, m.ID, "view", ts, nil, nil)
		}
	}

	top, err := svc.TopMaterials(course.ID)
	require.NoError(t, err)
	require.Len(t, top, 5)

	got := make([]int, len(top))
	for i, m := range top {
		got[i] = m.ActivityCount
	}
	assert.Equal(t, []int{3, 3, 2, 1, 1}, got)

	// Equal counts rank by material id, oldest first.
	assert.Less(t, top[0].MaterialID, top[1].MaterialID)
	assert.Less(t, top[3].MaterialID, top[4].MaterialID)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].ActivityCount, top[i].ActivityCount)
	}
}

func TestTopMaterialsEmptyCourse(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	course := testutil.CreateCourse(t, db, "Untouched", teacher.ID)

	top, err := svc.TopMaterials(course.ID)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestAverageTestScoresQuizOnly(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	video := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)
	quiz := testutil.CreateMaterial(t, db, course.ID, "Quiz 1", model.Quiz, 1)

	ts := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)
	// A scored video row must not count toward the test average.
	testutil.CreateActivity(t, db, student.ID, video.ID, model.ActionComplete, ts, nil, testutil.Float(10))
	testutil.CreateActivity(t, db, student.ID, quiz.ID, model.ActionComplete, ts, nil, testutil.Float(80))
	testutil.CreateActivity(t, db, student.ID, quiz.ID, model.ActionComplete, ts, nil, testutil.Float(90))
	testutil.CreateActivity(t, db, student.ID, quiz.ID, "view", ts, nil, nil)

	courseAvg, err := svc.CourseAverageTestScore(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 85.0, courseAvg.AvgTestScore)

	userAvg, err := svc.UserAverageTestScore(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 85.0, userAvg.AvgTestScore)
}

func TestAverageTestScoreZeroWhenUnscored(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	student := testutil.CreateUser(t, db, "Student", "student@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	quiz := testutil.CreateMaterial(t, db, course.ID, "Quiz 1", model.Quiz, 0)

	testutil.CreateActivity(t, db, student.ID, quiz.ID, "view",
		time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC), nil, nil)

	avg, err := svc.CourseAverageTestScore(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg.AvgTestScore)
}

func TestAnalyticsExcludeOrphanedActivities(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newAnalyticsService(db)

	teacher := testutil.CreateUser(t, db, "Teacher", "teacher@example.com", model.Teacher)
	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com", model.Student)
	bob := testutil.CreateUser(t, db, "Bob", "bob@example.com", model.Student)
	course := testutil.CreateCourse(t, db, "Go Basics", teacher.ID)
	m := testutil.CreateMaterial(t, db, course.ID, "Lesson 1", model.Video, 0)

	ts := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	testutil.CreateActivity(t, db, alice.ID, m.ID, model.ActionComplete, ts, testutil.Float(60), nil)
	testutil.CreateActivity(t, db, bob.ID, m.ID, model.ActionComplete, ts, testutil.Float(40), nil)

	require.NoError(t, db.Delete(&model.User{}, bob.ID).Error)

	// Bob's rows are still stored but no longer join.
	var stored int64
	require.NoError(t, db.Model(&model.Activity{}).Count(&stored).Error)
	assert.Equal(t, int64(2), stored)

	stats, err := svc.CourseStatistics(course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 1, stats.TotalCompletions)
	assert.Equal(t, 60.0, stats.TotalTimeSpent)
}
