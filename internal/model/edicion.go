package model

// Edicion classifies an Item by edition. Attachment is optional.
type Edicion struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"not null" json:"nombre"`
}

func (Edicion) TableName() string { return "ediciones" }
