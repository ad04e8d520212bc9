package handler

import (
	"net/http"

	"inventario/internal/repository"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler serves the read-only reference entities.
type CatalogoHandler struct{ repo repository.CatalogoRepository }

func NewCatalogoHandler(repo repository.CatalogoRepository) *CatalogoHandler {
	return &CatalogoHandler{repo: repo}
}

// ListarProductos godoc
// @Summary  Listar productos
// @Tags     catalogo
// @Produce  json
// @Success  200 {array}  model.Producto
// @Failure  500 {object} apierror.APIError
// @Router   /productos [get]
func (h *CatalogoHandler) ListarProductos(c *gin.Context) {
	productos, err := h.repo.ListProductos(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, productos)
}

// ListarEdiciones godoc
// @Summary  Listar ediciones
// @Tags     catalogo
// @Produce  json
// @Success  200 {array}  model.Edicion
// @Failure  500 {object} apierror.APIError
// @Router   /ediciones [get]
func (h *CatalogoHandler) ListarEdiciones(c *gin.Context) {
	ediciones, err := h.repo.ListEdiciones(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ediciones)
}

// ListarLenguajes godoc
// @Summary  Listar lenguajes
// @Tags     catalogo
// @Produce  json
// @Success  200 {array}  model.Lenguaje
// @Failure  500 {object} apierror.APIError
// @Router   /lenguajes [get]
func (h *CatalogoHandler) ListarLenguajes(c *gin.Context) {
	lenguajes, err := h.repo.ListLenguajes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, lenguajes)
}
