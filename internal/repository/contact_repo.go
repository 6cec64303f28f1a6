package repository

import (
	"context"

	"siteadmin/internal/models"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, q *models.ContactQuery) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *ContactRepository) List(ctx context.Context) ([]models.ContactQuery, error) {
	list := []models.ContactQuery{}
	err := r.db.WithContext(ctx).Order(newestFirst).Find(&list).Error
	return list, err
}
