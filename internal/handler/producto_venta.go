package handler

import (
	"errors"
	"net/http"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductoVentaHandler struct{ repo repository.ProductoVentaRepository }

func NewProductoVentaHandler(repo repository.ProductoVentaRepository) *ProductoVentaHandler {
	return &ProductoVentaHandler{repo: repo}
}

// Listar godoc
// @Summary      Listar producto_venta
// @Description  Retorna todas las lineas de venta con producto y reg_venta anidados.
// @Tags         producto_venta
// @Produce      json
// @Success      200 {array}  model.ProductoVenta
// @Failure      500 {object} apierror.APIError
// @Router       /producto_venta [get]
func (h *ProductoVentaHandler) Listar(c *gin.Context) {
	lineas, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, lineas)
}

// ObtenerPorID godoc
// @Summary  Obtener linea de venta por id
// @Tags     producto_venta
// @Produce  json
// @Param    id  path     int true "ID de la linea"
// @Success  200 {object} model.ProductoVenta
// @Failure  404 {object} apierror.APIError
// @Failure  500 {object} apierror.APIError
// @Router   /producto_venta/{id} [get]
func (h *ProductoVentaHandler) ObtenerPorID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NotFound("ProductoVenta"))
		return
	}
	pv, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.NotFound("ProductoVenta"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pv)
}

// Crear godoc
// @Summary  Crear linea de venta
// @Tags     producto_venta
// @Accept   json
// @Produce  json
// @Param    body body     dto.ProductoVentaRequest true "Campos de la linea"
// @Success  201  {object} model.ProductoVenta
// @Failure  500  {object} apierror.APIError
// @Router   /producto_venta [post]
func (h *ProductoVentaHandler) Crear(c *gin.Context) {
	var req dto.ProductoVentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	pv := &model.ProductoVenta{
		IDProducto: req.IDProducto,
		IDRegVenta: req.IDRegVenta,
		Cantidad:   req.Cantidad,
		Monto:      req.Monto,
	}
	if err := h.repo.Create(c.Request.Context(), pv); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, pv)
}

// Actualizar godoc
// @Summary  Actualizar linea de venta
// @Tags     producto_venta
// @Accept   json
// @Produce  json
// @Param    id   path     int                      true "ID de la linea"
// @Param    body body     dto.ProductoVentaRequest true "Campos de la linea"
// @Success  200  {object} model.ProductoVenta
// @Failure  500  {object} apierror.APIError
// @Router   /producto_venta/{id} [put]
func (h *ProductoVentaHandler) Actualizar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req dto.ProductoVentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	fields := map[string]interface{}{
		"id_producto":  req.IDProducto,
		"id_reg_venta": req.IDRegVenta,
		"cantidad":     req.Cantidad,
		"monto":        req.Monto,
	}
	if err := h.repo.Update(c.Request.Context(), id, fields); err != nil {
		c.Error(err)
		return
	}
	pv, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, pv)
}

// Eliminar godoc
// @Summary  Eliminar linea de venta
// @Tags     producto_venta
// @Produce  json
// @Param    id  path     int true "ID de la linea"
// @Success  200 {object} dto.MessageResponse
// @Failure  500 {object} apierror.APIError
// @Router   /producto_venta/{id} [delete]
func (h *ProductoVentaHandler) Eliminar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "ProductoVenta deleted successfully"})
}
