package router

import (
	"inventario/internal/config"
	"inventario/internal/handler"
	"inventario/internal/middleware"
	"inventario/internal/repository"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Repository ← DB. The DB handle is created once
// at startup and passed in explicitly — no ambient singletons.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Authorization", "Content-Type", "X-Request-ID"}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	catalogoRepo := repository.NewCatalogoRepository(db)
	itemRepo := repository.NewItemRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	productoVentaRepo := repository.NewProductoVentaRepository(db)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogoH := handler.NewCatalogoHandler(catalogoRepo)
	itemsH := handler.NewItemsHandler(itemRepo)
	ventasH := handler.NewVentasHandler(ventaRepo)
	productoVentaH := handler.NewProductoVentaHandler(productoVentaRepo)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Root())
	r.GET("/health", handler.Health(db))

	r.GET("/productos", catalogoH.ListarProductos)
	r.GET("/ediciones", catalogoH.ListarEdiciones)
	r.GET("/lenguajes", catalogoH.ListarLenguajes)

	items := r.Group("/items")
	{
		items.GET("", itemsH.Listar)
		items.GET("/:id", itemsH.ObtenerPorID)
		items.POST("", itemsH.Crear)
		items.PUT("/:id", itemsH.Actualizar)
		items.DELETE("/:id", itemsH.Eliminar)
	}

	ventas := r.Group("/ventas")
	{
		ventas.GET("", ventasH.Listar)
		ventas.GET("/:id", ventasH.ObtenerPorID)
		ventas.POST("", ventasH.Crear)
		ventas.PUT("/:id", ventasH.Actualizar)
		ventas.DELETE("/:id", ventasH.Eliminar)
	}

	productoVenta := r.Group("/producto_venta")
	{
		productoVenta.GET("", productoVentaH.Listar)
		productoVenta.GET("/:id", productoVentaH.ObtenerPorID)
		productoVenta.POST("", productoVentaH.Crear)
		productoVenta.PUT("/:id", productoVentaH.Actualizar)
		productoVenta.DELETE("/:id", productoVentaH.Eliminar)
	}

	// Swagger UI — generated from the inline handler annotations
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
