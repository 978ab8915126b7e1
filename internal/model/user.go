package model

import "time"

// User represents an account allowed to sign in to the admin backend
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"type:varchar(80);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(120);not null"` // bcrypt hash
	Role      string    `json:"role" gorm:"type:varchar(20);not null;default:user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default table name
func (User) TableName() string {
	return "users"
}
