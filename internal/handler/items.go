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

type ItemsHandler struct{ repo repository.ItemRepository }

func NewItemsHandler(repo repository.ItemRepository) *ItemsHandler {
	return &ItemsHandler{repo: repo}
}

// Listar godoc
// @Summary      Listar items
// @Description  Retorna todos los items con producto, edicion y lenguaje anidados.
// @Tags         items
// @Produce      json
// @Success      200 {array}  model.Item
// @Failure      500 {object} apierror.APIError
// @Router       /items [get]
func (h *ItemsHandler) Listar(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ObtenerPorID godoc
// @Summary  Obtener item por id
// @Tags     items
// @Produce  json
// @Param    id  path     int true "ID del item"
// @Success  200 {object} model.Item
// @Failure  404 {object} apierror.APIError
// @Failure  500 {object} apierror.APIError
// @Router   /items/{id} [get]
func (h *ItemsHandler) ObtenerPorID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.NotFound("Item"))
		return
	}
	item, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.NotFound("Item"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Crear godoc
// @Summary      Crear item
// @Description  Inserta un item. id_edicion omitido, null o 0 se persiste como NULL.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body body     dto.ItemRequest true "Campos del item"
// @Success      201  {object} model.Item
// @Failure      500  {object} apierror.APIError
// @Router       /items [post]
func (h *ItemsHandler) Crear(c *gin.Context) {
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	item := &model.Item{
		IDProducto: req.IDProducto,
		Precio:     req.Precio,
		Cantidad:   req.Cantidad,
		IDEdicion:  req.EdicionID(),
		IDLenguaje: req.IDLenguaje,
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Actualizar godoc
// @Summary      Actualizar item
// @Description  Reemplaza todos los campos mutables del item (no es un patch parcial).
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id   path     int             true "ID del item"
// @Param        body body     dto.ItemRequest true "Campos del item"
// @Success      200  {object} model.Item
// @Failure      500  {object} apierror.APIError
// @Router       /items/{id} [put]
func (h *ItemsHandler) Actualizar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}
	fields := map[string]interface{}{
		"id_producto": req.IDProducto,
		"precio":      req.Precio,
		"cantidad":    req.Cantidad,
		"id_edicion":  req.EdicionID(),
		"id_lenguaje": req.IDLenguaje,
	}
	if err := h.repo.Update(c.Request.Context(), id, fields); err != nil {
		c.Error(err)
		return
	}
	item, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Eliminar godoc
// @Summary  Eliminar item
// @Tags     items
// @Produce  json
// @Param    id  path     int true "ID del item"
// @Success  200 {object} dto.MessageResponse
// @Failure  500 {object} apierror.APIError
// @Router   /items/{id} [delete]
func (h *ItemsHandler) Eliminar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item deleted successfully"})
}
