package repository

import (
	"context"

	"gorm.io/gorm"
)

// updateRow writes every column of row except id and created_at. It never
// inserts: a row deleted since it was loaded yields gorm.ErrRecordNotFound.
func updateRow(ctx context.Context, db *gorm.DB, row any, id uint) error {
	res := db.WithContext(ctx).Model(row).Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// MySQL reports 0 affected rows for an update that changes nothing.
	var n int64
	if err := db.WithContext(ctx).Model(row).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
