package repository

import (
	"context"

	"gorm.io/gorm"

	"inventario/internal/model"
)

type ProductoVentaRepository interface {
	// List returns all line items with their producto and reg_venta loaded.
	List(ctx context.Context) ([]model.ProductoVenta, error)
	FindByID(ctx context.Context, id uint) (*model.ProductoVenta, error)
	Create(ctx context.Context, pv *model.ProductoVenta) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type productoVentaRepo struct{ db *gorm.DB }

func NewProductoVentaRepository(db *gorm.DB) ProductoVentaRepository {
	return &productoVentaRepo{db: db}
}

func (r *productoVentaRepo) List(ctx context.Context) ([]model.ProductoVenta, error) {
	var lineas []model.ProductoVenta
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("RegVenta").
		Find(&lineas).Error
	return lineas, err
}

func (r *productoVentaRepo) FindByID(ctx context.Context, id uint) (*model.ProductoVenta, error) {
	var pv model.ProductoVenta
	err := r.db.WithContext(ctx).First(&pv, id).Error
	return &pv, err
}

func (r *productoVentaRepo) Create(ctx context.Context, pv *model.ProductoVenta) error {
	return r.db.WithContext(ctx).Create(pv).Error
}

func (r *productoVentaRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.ProductoVenta{}).
		Where("id = ?", id).Updates(fields).Error
}

func (r *productoVentaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ProductoVenta{}, id).Error
}
