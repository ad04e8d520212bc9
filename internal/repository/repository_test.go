package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventario/internal/infra"
	"inventario/internal/model"
	"inventario/internal/repository"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, infra.Migrate(db))
	return db
}

// seedCatalogo inserts the reference rows used by item and sale tests.
func seedCatalogo(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Producto{Nombre: "One Piece Vol. 1"}).Error)
	require.NoError(t, db.Create(&model.Producto{Nombre: "Berserk Vol. 3"}).Error)
	require.NoError(t, db.Create(&model.Edicion{Nombre: "Deluxe"}).Error)
	require.NoError(t, db.Create(&model.Lenguaje{Nombre: "Espanol"}).Error)
	require.NoError(t, db.Create(&model.Lenguaje{Nombre: "Ingles"}).Error)
}

func uintPtr(v uint) *uint { return &v }

func TestCatalogoRepoLists(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	repo := repository.NewCatalogoRepository(db)
	ctx := context.Background()

	productos, err := repo.ListProductos(ctx)
	require.NoError(t, err)
	assert.Len(t, productos, 2)

	ediciones, err := repo.ListEdiciones(ctx)
	require.NoError(t, err)
	assert.Len(t, ediciones, 1)

	lenguajes, err := repo.ListLenguajes(ctx)
	require.NoError(t, err)
	assert.Len(t, lenguajes, 2)
}

func TestItemRepoCRUD(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()

	item := &model.Item{
		IDProducto: 1,
		Precio:     decimal.RequireFromString("9.99"),
		Cantidad:   5,
		IDLenguaje: 2,
	}
	require.NoError(t, repo.Create(ctx, item))
	require.NotZero(t, item.ID)

	got, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.IDProducto)
	assert.True(t, got.Precio.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 5, got.Cantidad)
	assert.Nil(t, got.IDEdicion)
	assert.Equal(t, uint(2), got.IDLenguaje)

	// Full replace, setting the edition
	fields := map[string]interface{}{
		"id_producto": uint(2),
		"precio":      decimal.RequireFromString("12.50"),
		"cantidad":    3,
		"id_edicion":  uintPtr(1),
		"id_lenguaje": uint(1),
	}
	require.NoError(t, repo.Update(ctx, item.ID, fields))
	got, err = repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.IDProducto)
	require.NotNil(t, got.IDEdicion)
	assert.Equal(t, uint(1), *got.IDEdicion)

	// Replacing again with a nil pointer clears the edition
	fields["id_edicion"] = (*uint)(nil)
	require.NoError(t, repo.Update(ctx, item.ID, fields))
	got, err = repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.IDEdicion)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.FindByID(ctx, item.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestItemRepoListEagerLoads(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	repo := repository.NewItemRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Item{
		IDProducto: 1,
		Precio:     decimal.RequireFromString("9.99"),
		Cantidad:   5,
		IDEdicion:  uintPtr(1),
		IDLenguaje: 1,
	}))
	require.NoError(t, repo.Create(ctx, &model.Item{
		IDProducto: 2,
		Precio:     decimal.RequireFromString("4.00"),
		Cantidad:   1,
		IDLenguaje: 2,
	}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Producto)
	assert.Equal(t, "One Piece Vol. 1", items[0].Producto.Nombre)
	require.NotNil(t, items[0].Edicion)
	assert.Equal(t, "Deluxe", items[0].Edicion.Nombre)
	require.NotNil(t, items[0].Lenguaje)

	// No edition on the second item: nothing to eager-load
	assert.Nil(t, items[1].Edicion)
	require.NotNil(t, items[1].Producto)
	assert.Equal(t, "Berserk Vol. 3", items[1].Producto.Nombre)
}

func crearVenta(t *testing.T, repo repository.VentaRepository, monto string) *model.RegVenta {
	t.Helper()
	v := &model.RegVenta{
		MontoTotal: decimal.RequireFromString(monto),
		MPago:      "efectivo",
	}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestVentaRepoListOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewVentaRepository(db)

	first := crearVenta(t, repo, "10.00")
	second := crearVenta(t, repo, "20.00")
	third := crearVenta(t, repo, "30.00")

	ventas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ventas, 3)
	assert.Equal(t, third.IDRegVenta, ventas[0].IDRegVenta)
	assert.Equal(t, second.IDRegVenta, ventas[1].IDRegVenta)
	assert.Equal(t, first.IDRegVenta, ventas[2].IDRegVenta)
}

func TestVentaRepoDeleteCascadesLineItems(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	ventaRepo := repository.NewVentaRepository(db)
	pvRepo := repository.NewProductoVentaRepository(db)
	ctx := context.Background()

	venta := crearVenta(t, ventaRepo, "25.00")
	otra := crearVenta(t, ventaRepo, "5.00")

	for _, pv := range []*model.ProductoVenta{
		{IDProducto: 1, IDRegVenta: venta.IDRegVenta, Cantidad: 2, Monto: decimal.RequireFromString("20.00")},
		{IDProducto: 2, IDRegVenta: venta.IDRegVenta, Cantidad: 1, Monto: decimal.RequireFromString("5.00")},
		{IDProducto: 1, IDRegVenta: otra.IDRegVenta, Cantidad: 1, Monto: decimal.RequireFromString("5.00")},
	} {
		require.NoError(t, pvRepo.Create(ctx, pv))
	}

	require.NoError(t, ventaRepo.DeleteWithLineItems(ctx, venta.IDRegVenta))

	// No line items reference the deleted sale afterwards
	var count int64
	require.NoError(t, db.Model(&model.ProductoVenta{}).
		Where("id_reg_venta = ?", venta.IDRegVenta).Count(&count).Error)
	assert.Zero(t, count)

	_, err := ventaRepo.FindByID(ctx, venta.IDRegVenta)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The unrelated sale keeps its line item
	kept, err := ventaRepo.FindByID(ctx, otra.IDRegVenta)
	require.NoError(t, err)
	assert.Len(t, kept.ProductoVenta, 1)
}

func TestVentaRepoFindByIDPreloadsLineItems(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	ventaRepo := repository.NewVentaRepository(db)
	pvRepo := repository.NewProductoVentaRepository(db)
	ctx := context.Background()

	venta := crearVenta(t, ventaRepo, "25.00")
	require.NoError(t, pvRepo.Create(ctx, &model.ProductoVenta{
		IDProducto: 1, IDRegVenta: venta.IDRegVenta, Cantidad: 2,
		Monto: decimal.RequireFromString("20.00"),
	}))

	got, err := ventaRepo.FindByID(ctx, venta.IDRegVenta)
	require.NoError(t, err)
	require.Len(t, got.ProductoVenta, 1)
	assert.Equal(t, uint(1), got.ProductoVenta[0].IDProducto)
}

func TestProductoVentaRepoListEagerLoads(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	ventaRepo := repository.NewVentaRepository(db)
	pvRepo := repository.NewProductoVentaRepository(db)
	ctx := context.Background()

	venta := crearVenta(t, ventaRepo, "25.00")
	require.NoError(t, pvRepo.Create(ctx, &model.ProductoVenta{
		IDProducto: 2, IDRegVenta: venta.IDRegVenta, Cantidad: 1,
		Monto: decimal.RequireFromString("25.00"),
	}))

	lineas, err := pvRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lineas, 1)
	require.NotNil(t, lineas[0].Producto)
	assert.Equal(t, "Berserk Vol. 3", lineas[0].Producto.Nombre)
	require.NotNil(t, lineas[0].RegVenta)
	assert.Equal(t, venta.IDRegVenta, lineas[0].RegVenta.IDRegVenta)
}

func TestProductoVentaRepoUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	seedCatalogo(t, db)
	ventaRepo := repository.NewVentaRepository(db)
	pvRepo := repository.NewProductoVentaRepository(db)
	ctx := context.Background()

	venta := crearVenta(t, ventaRepo, "25.00")
	pv := &model.ProductoVenta{
		IDProducto: 1, IDRegVenta: venta.IDRegVenta, Cantidad: 1,
		Monto: decimal.RequireFromString("10.00"),
	}
	require.NoError(t, pvRepo.Create(ctx, pv))

	require.NoError(t, pvRepo.Update(ctx, pv.ID, map[string]interface{}{
		"id_producto":  uint(2),
		"id_reg_venta": venta.IDRegVenta,
		"cantidad":     4,
		"monto":        decimal.RequireFromString("40.00"),
	}))
	got, err := pvRepo.FindByID(ctx, pv.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.IDProducto)
	assert.Equal(t, 4, got.Cantidad)
	assert.True(t, got.Monto.Equal(decimal.RequireFromString("40.00")))

	require.NoError(t, pvRepo.Delete(ctx, pv.ID))
	_, err = pvRepo.FindByID(ctx, pv.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
