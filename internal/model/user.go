package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;index;not null" json:"name"`
	Email    string   `gorm:"size:255;unique;not null" json:"email"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Role     UserRole `gorm:"size:20;index;default:'student'" json:"role"`
	IsActive bool     `gorm:"default:true" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}
