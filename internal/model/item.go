package model

import "github.com/shopspring/decimal"

// Item is a priced, quantified sellable variant of a Producto, optionally
// classified by an Edicion and a Lenguaje. IDEdicion is nullable: a nil value
// means "no edition".
type Item struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	IDProducto uint            `gorm:"not null;index" json:"id_producto"`
	Precio     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Cantidad   int             `gorm:"not null;default:0" json:"cantidad"`
	IDEdicion  *uint           `gorm:"index" json:"id_edicion"`
	IDLenguaje uint            `gorm:"index" json:"id_lenguaje"`

	Producto *Producto `gorm:"foreignKey:IDProducto" json:"producto,omitempty"`
	Edicion  *Edicion  `gorm:"foreignKey:IDEdicion" json:"edicion,omitempty"`
	Lenguaje *Lenguaje `gorm:"foreignKey:IDLenguaje" json:"lenguaje,omitempty"`
}

func (Item) TableName() string { return "items" }
