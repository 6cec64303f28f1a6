package repository

import (
	"context"

	"siteadmin/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, l *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *AuditLogRepository) ListByAdmin(ctx context.Context, adminID uint) ([]models.AuditLog, error) {
	list := []models.AuditLog{}
	err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Order(newestFirst).Find(&list).Error
	return list, err
}
