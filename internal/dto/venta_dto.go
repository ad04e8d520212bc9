package dto

import "github.com/shopspring/decimal"

// VentaRequest is the body of POST /ventas and PUT /ventas/:id.
type VentaRequest struct {
	MontoTotal decimal.Decimal `json:"monto_total"`
	Fecha      *string         `json:"fecha"` // YYYY-MM-DD; empty or omitted = NULL
	Hora       *string         `json:"hora"`  // HH:MM:SS; empty or omitted = NULL
	MPago      string          `json:"m_pago"`
}

// ProductoVentaRequest is the body of POST /producto_venta and
// PUT /producto_venta/:id.
type ProductoVentaRequest struct {
	IDProducto uint            `json:"id_producto"`
	IDRegVenta uint            `json:"id_reg_venta"`
	Cantidad   int             `json:"cantidad"`
	Monto      decimal.Decimal `json:"monto"`
}

// MessageResponse is the confirmation body returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
