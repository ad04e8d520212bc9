package dto

import "github.com/shopspring/decimal"

// ItemRequest is the body of POST /items and PUT /items/:id. Fields are bound
// with plain type coercion; no further validation is applied.
type ItemRequest struct {
	IDProducto uint            `json:"id_producto"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
	// IDEdicion is nullable: omitted, null or 0 all persist as NULL.
	IDEdicion  *uint `json:"id_edicion"`
	IDLenguaje uint  `json:"id_lenguaje"`
}

// EdicionID coalesces the nullable edition FK: omitted, null or zero values
// map to a nil pointer (stored as SQL NULL). Collapsing 0 matches the
// long-standing API behavior and is kept for compatibility.
func (r ItemRequest) EdicionID() *uint {
	if r.IDEdicion == nil || *r.IDEdicion == 0 {
		return nil
	}
	return r.IDEdicion
}
