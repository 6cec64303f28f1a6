package repository

import (
	"context"

	"siteadmin/internal/models"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, t *models.Tag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var t models.Tag
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	list := []models.Tag{}
	err := r.db.WithContext(ctx).Order(newestFirst).Find(&list).Error
	return list, err
}

func (r *TagRepository) Update(ctx context.Context, t *models.Tag) error {
	t.NameKey = models.TagKey(t.Name)
	return updateRow(ctx, r.db, t, t.ID)
}

func (r *TagRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
