package model

// Producto is the catalog root entity. Items reference it as the sellable
// thing; sale line items reference it directly as well.
type Producto struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"index;not null" json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Producto) TableName() string { return "productos" }
