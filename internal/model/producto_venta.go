package model

import "github.com/shopspring/decimal"

// ProductoVenta is one line item within a sale, linking a Producto with the
// quantity and amount sold under a RegVenta.
type ProductoVenta struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	IDProducto uint            `gorm:"not null;index" json:"id_producto"`
	IDRegVenta uint            `gorm:"not null;index" json:"id_reg_venta"`
	Cantidad   int             `gorm:"not null;default:0" json:"cantidad"`
	Monto      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monto"`

	Producto *Producto `gorm:"foreignKey:IDProducto" json:"producto,omitempty"`
	RegVenta *RegVenta `gorm:"foreignKey:IDRegVenta;references:IDRegVenta" json:"reg_venta,omitempty"`
}

func (ProductoVenta) TableName() string { return "producto_venta" }
