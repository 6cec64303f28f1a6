package models

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Name         string                      `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Category     string                      `gorm:"size:255;not null;index" json:"category"` // category name, not a foreign key
	Tag          string                      `gorm:"size:255;not null" json:"tag"`
	Description  string                      `gorm:"type:text;not null" json:"description"`
	FeatureTitle string                      `gorm:"size:512;not null" json:"featureTitle"`
	Features     datatypes.JSONSlice[string] `json:"features"`
	Image        string                      `gorm:"size:1024;not null" json:"image"`
	CreatedAt    time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }
