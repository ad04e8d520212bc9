package model

import "github.com/shopspring/decimal"

// RegVenta is the root record of a sale transaction. Its line items live in
// producto_venta; the schema does not cascade, so deleting a sale must delete
// the dependent line items first.
type RegVenta struct {
	IDRegVenta uint            `gorm:"primaryKey;column:id_reg_venta" json:"id_reg_venta"`
	MontoTotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monto_total"`
	Fecha      *Fecha          `gorm:"type:date" json:"fecha"`
	Hora       *Hora           `gorm:"type:time" json:"hora"`
	MPago      string          `gorm:"column:m_pago" json:"m_pago"`

	ProductoVenta []ProductoVenta `gorm:"foreignKey:IDRegVenta;references:IDRegVenta" json:"producto_venta,omitempty"`
}

func (RegVenta) TableName() string { return "reg_ventas" }
