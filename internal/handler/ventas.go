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

type VentasHandler struct{ repo repository.VentaRepository }

func NewVentasHandler(repo repository.VentaRepository) *VentasHandler {
	return &VentasHandler{repo: repo}
}

// Listar godoc
// @Summary      Listar ventas
// @Description  Retorna todas las ventas con sus producto_venta anidados, ordenadas por id_reg_venta descendente.
// @Tags         ventas
// @Produce      json
// @Success      200 {array}  model.RegVenta
// @Failure      500 {object} apierror.APIError
// @Router       /ventas [get]
func (h *VentasHandler) Listar(c *gin.Context) {
	ventas, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ventas)
}

// ObtenerPorID godoc
// @Summary  Obtener venta por id
// @Tags     ventas
// @Produce  json
// @Param    id  path     int true "ID de la venta"
// @Success  200 {object} model.RegVenta
// @Failure  404 {object} apierror.APIError
// @Failure  500 {object} apierror.APIError
// @Router   /ventas/{id} [get]
func (h *VentasHandler) ObtenerPorID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NotFound("Venta"))
		return
	}
	venta, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.NotFound("Venta"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, venta)
}

// Crear godoc
// @Summary      Registrar venta
// @Description  Crea un registro de venta. fecha y hora son opcionales; la hora se compone sobre la fecha epoch fija.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body body     dto.VentaRequest true "Campos de la venta"
// @Success      201  {object} model.RegVenta
// @Failure      500  {object} apierror.APIError
// @Router       /ventas [post]
func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.VentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		c.Error(err)
		return
	}
	hora, err := parseHora(req.Hora)
	if err != nil {
		c.Error(err)
		return
	}
	venta := &model.RegVenta{
		MontoTotal: req.MontoTotal,
		Fecha:      fecha,
		Hora:       hora,
		MPago:      req.MPago,
	}
	if err := h.repo.Create(c.Request.Context(), venta); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, venta)
}

// Actualizar godoc
// @Summary      Actualizar venta
// @Description  Reemplaza todos los campos mutables de la venta.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id   path     int              true "ID de la venta"
// @Param        body body     dto.VentaRequest true "Campos de la venta"
// @Success      200  {object} model.RegVenta
// @Failure      500  {object} apierror.APIError
// @Router       /ventas/{id} [put]
func (h *VentasHandler) Actualizar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req dto.VentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		c.Error(err)
		return
	}
	hora, err := parseHora(req.Hora)
	if err != nil {
		c.Error(err)
		return
	}
	fields := map[string]interface{}{
		"monto_total": req.MontoTotal,
		"fecha":       fecha,
		"hora":        hora,
		"m_pago":      req.MPago,
	}
	if err := h.repo.Update(c.Request.Context(), id, fields); err != nil {
		c.Error(err)
		return
	}
	venta, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, venta)
}

// Eliminar godoc
// @Summary      Eliminar venta
// @Description  Elimina la venta y primero todos sus producto_venta dependientes, dentro de una transaccion.
// @Tags         ventas
// @Produce      json
// @Param        id  path     int true "ID de la venta"
// @Success      200 {object} dto.MessageResponse
// @Failure      500 {object} apierror.APIError
// @Router       /ventas/{id} [delete]
func (h *VentasHandler) Eliminar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.repo.DeleteWithLineItems(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Venta deleted successfully"})
}
