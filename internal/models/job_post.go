package models

import (
	"gorm.io/datatypes"
)

// JobPost is a listing owned by an employer. CompanyName is a denormalized
// copy taken at creation time and may drift from the owner's company_name.
type JobPost struct {
	BaseModel
	Title       string         `gorm:"not null"`
	CompanyName string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	Location    string         `gorm:"not null"`
	JobType     JobType        `gorm:"type:varchar(20);not null"`
	Tags        datatypes.JSON `gorm:"type:json"`
	EmployerID  string         `gorm:"type:uuid;not null;index"`

	Applications []JobApplication `gorm:"foreignKey:JobPostID"`
}
