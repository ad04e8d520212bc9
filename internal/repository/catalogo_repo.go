package repository

import (
	"context"

	"gorm.io/gorm"

	"inventario/internal/model"
)

// CatalogoRepository covers the read-only reference entities: productos,
// ediciones and lenguajes are only ever listed by this API.
type CatalogoRepository interface {
	ListProductos(ctx context.Context) ([]model.Producto, error)
	ListEdiciones(ctx context.Context) ([]model.Edicion, error)
	ListLenguajes(ctx context.Context) ([]model.Lenguaje, error)
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) ListProductos(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Find(&productos).Error
	return productos, err
}

func (r *catalogoRepo) ListEdiciones(ctx context.Context) ([]model.Edicion, error) {
	var ediciones []model.Edicion
	err := r.db.WithContext(ctx).Find(&ediciones).Error
	return ediciones, err
}

func (r *catalogoRepo) ListLenguajes(ctx context.Context) ([]model.Lenguaje, error) {
	var lenguajes []model.Lenguaje
	err := r.db.WithContext(ctx).Find(&lenguajes).Error
	return lenguajes, err
}
