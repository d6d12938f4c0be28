package workshop

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff member of the service center.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"size:255;not null"`
	Email          string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	Role           string    `gorm:"size:32;not null;index"`
	Status         string    `gorm:"size:32;not null;default:active;index"`
	Specialization string    `gorm:"size:128"`
	Phone          string    `gorm:"size:64"`
	LastLogin      *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
