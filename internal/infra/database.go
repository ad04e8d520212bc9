package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventario/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables. The connection is created once at startup and
// reused for the process lifetime.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every model. Also used by tests
// against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Producto{},
		&model.Edicion{},
		&model.Lenguaje{},
		&model.Item{},
		&model.RegVenta{},
		&model.ProductoVenta{},
	)
}
