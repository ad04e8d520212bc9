package repository

import (
	"context"

	"gorm.io/gorm"

	"inventario/internal/model"
)

type VentaRepository interface {
	// List returns all sales with their line items, newest first.
	List(ctx context.Context) ([]model.RegVenta, error)
	FindByID(ctx context.Context, id uint) (*model.RegVenta, error)
	Create(ctx context.Context, v *model.RegVenta) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	// DeleteWithLineItems removes a sale and its producto_venta rows. The
	// schema does not cascade, so both deletes run inside one transaction to
	// avoid leaving an orphaned half-deleted sale behind.
	DeleteWithLineItems(ctx context.Context, id uint) error
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) List(ctx context.Context) ([]model.RegVenta, error) {
	var ventas []model.RegVenta
	err := r.db.WithContext(ctx).
		Preload("ProductoVenta").
		Order("id_reg_venta DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.RegVenta, error) {
	var v model.RegVenta
	err := r.db.WithContext(ctx).Preload("ProductoVenta").First(&v, "id_reg_venta = ?", id).Error
	return &v, err
}

func (r *ventaRepo) Create(ctx context.Context, v *model.RegVenta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.RegVenta{}).
		Where("id_reg_venta = ?", id).Updates(fields).Error
}

func (r *ventaRepo) DeleteWithLineItems(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_reg_venta = ?", id).Delete(&model.ProductoVenta{}).Error; err != nil {
			return err
		}
		return tx.Where("id_reg_venta = ?", id).Delete(&model.RegVenta{}).Error
	})
}
