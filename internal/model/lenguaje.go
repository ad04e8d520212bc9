package model

// Lenguaje classifies an Item by language.
type Lenguaje struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"not null" json:"nombre"`
}

func (Lenguaje) TableName() string { return "lenguajes" }
