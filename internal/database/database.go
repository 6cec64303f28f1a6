package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"siteadmin/config"
	"siteadmin/internal/auth"
	"siteadmin/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql", "":
		return mysql.Open(cfg.DSN), nil
	case "postgres":
		return postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
		// Unique-index violations come back as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// mysqlTableOptions makes unique names compare byte for byte. The server
// default (utf8mb4_0900_ai_ci) folds case and accents, so "Chair"/"chair"
// and "Cafe"/"Café" would collide on the unique indexes.
const mysqlTableOptions = "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin"

func tableOptions(dialect string) string {
	if dialect == "mysql" {
		return mysqlTableOptions
	}
	return ""
}

// AutoMigrate runs Gorm auto-migration for all models.
// Existing MySQL tables keep their collation; convert them with
// ALTER TABLE ... CONVERT TO CHARACTER SET utf8mb4 COLLATE utf8mb4_bin.
func AutoMigrate(db *gorm.DB) error {
	if opts := tableOptions(db.Dialector.Name()); opts != "" {
		db = db.Set("gorm:table_options", opts)
	}
	return db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
		&models.Product{},
		&models.ContactQuery{},
		&models.AuditLog{},
	)
}

// SeedAdmin creates the configured admin when no admin with that email exists.
// The seed credentials follow the same rules as signup.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg config.SeedConfig, log *zap.Logger) error {
	if !cfg.Enabled() {
		return nil
	}
	name := strings.TrimSpace(cfg.AdminName)
	email := strings.TrimSpace(cfg.AdminEmail)
	if name == "" {
		return errors.New("seed admin: SEED_ADMIN_NAME is empty")
	}
	if err := auth.ValidateCredentials(email, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	var existing models.Admin
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	admin := &models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}
	log.Info("seeded admin account", zap.String("email", admin.Email))
	return nil
}
