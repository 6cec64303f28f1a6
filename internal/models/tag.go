package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	// NameKey is the case-folded name; the unique index lives here so "Modern"
	// and "modern" collide.
	NameKey   string    `gorm:"uniqueIndex;size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Tag) TableName() string { return "tags" }

// TagKey folds a tag name for uniqueness comparison.
func TagKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (t *Tag) BeforeSave(_ *gorm.DB) error {
	t.NameKey = TagKey(t.Name)
	return nil
}
