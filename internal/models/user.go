package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an employer account. Accounts are immutable after registration:
// there is no update or delete operation for users.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CompanyName  string    `gorm:"not null" json:"company_name"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	JobPosts []JobPost `gorm:"foreignKey:EmployerID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
