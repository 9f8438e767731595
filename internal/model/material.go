package model

type MaterialType string

const (
	Video      MaterialType = "video"
	Text       MaterialType = "text"
	Quiz       MaterialType = "quiz"
	Assignment MaterialType = "assignment"
)

// Material belongs to exactly one course. order_index is advisory display
// order within that course; ties resolve by insertion order.
// swagger:model Material
type Material struct {
	BaseModel
	CourseID      uint         `gorm:"index;not null" json:"course_id"`
	Title         string       `gorm:"size:200;not null" json:"title"`
	Content       string       `gorm:"type:text" json:"content"`
	Type          MaterialType `gorm:"size:20;index" json:"type"`
	OrderIndex    int          `gorm:"default:0" json:"order_index"`
	AttachmentURL string       `gorm:"size:255" json:"attachment_url,omitempty"`
}

func (Material) TableName() string {
	return "materials"
}
