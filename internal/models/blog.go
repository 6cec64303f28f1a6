package models

import "time"

type Blog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Heading     string    `gorm:"size:512;not null" json:"blogHeading"`
	Description string    `gorm:"type:text;not null" json:"blogDesc"`
	Image       string    `gorm:"size:1024;not null" json:"blogImage"`
	Content     string    `json:"blogContent"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Blog) TableName() string { return "blogs" }
