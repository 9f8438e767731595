package model

type CourseLevel string

const (
	Beginner     CourseLevel = "beginner"
	Intermediate CourseLevel = "intermediate"
	Advanced     CourseLevel = "advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title       string      `gorm:"size:200;index;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Category    string      `gorm:"size:50;index:idx_course_category_level" json:"category"`
	Level       CourseLevel `gorm:"size:20;index:idx_course_category_level" json:"level"`
	TeacherID   uint        `gorm:"index" json:"teacher_id"`
	IsActive    bool        `gorm:"default:true" json:"is_active"`
}

func (Course) TableName() string {
	return "courses"
}
