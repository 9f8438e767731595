package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityDetail is one activity row joined with its material, the
// material's course and (for exports) the acting user. Field and JSON names
// are the external export contract and must not change.
type ActivityDetail struct {
	ActivityID    uint           `json:"-"`
	UserID        uint           `json:"user_id"`
	UserName      string         `json:"user_name"`
	UserEmail     string         `json:"user_email"`
	CourseID      uint           `json:"course_id"`
	CourseTitle   string         `json:"course_title"`
	MaterialID    uint           `json:"material_id"`
	MaterialTitle string         `json:"material_title"`
	MaterialType  MaterialType   `json:"material_type"`
	Action        string         `json:"action"`
	Timestamp     time.Time      `json:"timestamp"`
	Duration      *float64       `json:"duration"`
	Score         *float64       `json:"score"`
	Meta          datatypes.JSON `json:"meta"`
}

// CourseProgress is one user's standing in one course.
type CourseProgress struct {
	CourseTitle          string  `json:"course_title"`
	TotalMaterials       int     `json:"total_materials"`
	CompletedMaterials   int     `json:"completed_materials"`
	TotalTime            float64 `json:"total_time"`
	CompletionPercentage float64 `json:"completion_percentage"`
	AvgScore             float64 `json:"avg_score"`
}

// CourseStatistics is the teacher/admin aggregate view over one course.
type CourseStatistics struct {
	TotalStudents    int     `json:"total_students"`
	TotalTimeSpent   float64 `json:"total_time_spent"`
	AverageScore     float64 `json:"average_score"`
	TotalCompletions int     `json:"total_completions"`
	EngagementRate   float64 `json:"engagement_rate"`
}

// TopMaterial ranks one material by interaction volume. The material id is
// kept only as the deterministic tie-break key and stays out of the payload.
type TopMaterial struct {
	MaterialID    uint   `json:"-"`
	MaterialTitle string `json:"material_title"`
	ActivityCount int    `json:"activity_count"`
}

// AverageTestScore wraps the quiz-score mean for a course or a user.
type AverageTestScore struct {
	AvgTestScore float64 `json:"avg_test_score"`
}

// SearchResult bundles the course and material matches for one query.
type SearchResult struct {
	Courses        []Course   `json:"courses"`
	Materials      []Material `json:"materials"`
	TotalCourses   int        `json:"total_courses"`
	TotalMaterials int        `json:"total_materials"`
}
