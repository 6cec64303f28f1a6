package repository

import (
	"context"

	"siteadmin/internal/models"

	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) List(ctx context.Context) ([]models.Blog, error) {
	list := []models.Blog{}
	err := r.db.WithContext(ctx).Order(newestFirst).Find(&list).Error
	return list, err
}

// Latest returns at most limit blogs, newest first.
func (r *BlogRepository) Latest(ctx context.Context, limit int) ([]models.Blog, error) {
	list := []models.Blog{}
	err := r.db.WithContext(ctx).Order(newestFirst).Limit(limit).Find(&list).Error
	return list, err
}

func (r *BlogRepository) Update(ctx context.Context, b *models.Blog) error {
	return updateRow(ctx, r.db, b, b.ID)
}

func (r *BlogRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Blog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
