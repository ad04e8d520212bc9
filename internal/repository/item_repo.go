package repository

import (
	"context"

	"gorm.io/gorm"

	"inventario/internal/model"
)

// ItemRepository defines the data access contract for items.
// Handlers depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ItemRepository interface {
	List(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id uint) (*model.Item, error)
	Create(ctx context.Context, item *model.Item) error
	// Update replaces the mutable fields of the row identified by id.
	// A map is used so that nil values are written as SQL NULL.
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Edicion").Preload("Lenguaje").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Updates(fields).Error
}

func (r *itemRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Item{}, id).Error
}
