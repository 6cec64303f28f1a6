package models

import "time"

// ContactQuery is an inquiry submitted from the public contact form.
type ContactQuery struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"size:255;not null" json:"fullName"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	City        string    `gorm:"size:255" json:"city,omitempty"`
	ProjectType string    `gorm:"size:255" json:"projectType,omitempty"`
	Phone       string    `gorm:"size:64;not null" json:"phone"`
	Company     string    `gorm:"size:255" json:"company,omitempty"`
	Message     string    `gorm:"type:text" json:"message,omitempty"`
	File        string    `gorm:"size:1024" json:"file,omitempty"` // object storage URL
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (ContactQuery) TableName() string { return "contact_queries" }
