package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kartoteka/kartoteka-api/internal/application/catalog"
	"github.com/kartoteka/kartoteka-api/internal/application/fulfillment"
	"github.com/kartoteka/kartoteka-api/internal/application/intake"
	"github.com/kartoteka/kartoteka-api/internal/application/inventory"
	"github.com/kartoteka/kartoteka-api/internal/application/pricing"
	"github.com/kartoteka/kartoteka-api/internal/application/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StorageUC   *storage.UseCase
	InventoryUC *inventory.UseCase
	OrderUC     *fulfillment.UseCase
	PricingUC   *pricing.UseCase
	CatalogUC   *catalog.UseCase
	IntakeUC    *intake.UseCase
	APIToken    string
}

// Router registra las rutas de la API. Las consultas son públicas; las rutas
// que mutan el libro o hablan con servicios externos exigen el Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	protected := AuthMiddleware(deps.APIToken)

	// Storage (ubicaciones físicas)
	st := api.Group("/storage")
	storageHandler := NewStorageHandler(deps.StorageUC)
	st.Get("/occupancy", storageHandler.Occupancy)
	st.Get("/next-free", storageHandler.NextFree)
	st.Get("/locations/:code", storageHandler.Describe)
	st.Post("/repack", protected, storageHandler.Repack)
	st.Delete("/codes/:code", protected, storageHandler.RemoveCode)

	// Inventory (libro CSV)
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/export/shoper", inventoryHandler.ExportShoper)
	inv.Post("/merge", protected, inventoryHandler.Merge)

	// Orders (Shoper + lista de recogida)
	orders := api.Group("/orders", protected)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/assign", orderHandler.Assign)
	orders.Get("/picking-list", orderHandler.PickingList)

	// Cards (precio + alta)
	cards := api.Group("/cards")
	pricingHandler := NewPricingHandler(deps.PricingUC)
	intakeHandler := NewIntakeHandler(deps.IntakeUC)
	cards.Get("/price", pricingHandler.Lookup)
	cards.Post("/recognize", protected, intakeHandler.Recognize)
	cards.Post("/", protected, intakeHandler.Save)

	// Catalog (sets TCG)
	cat := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	cat.Get("/sets", catalogHandler.Sets)
	cat.Post("/reload", protected, catalogHandler.Reload)
	cat.Post("/update", protected, catalogHandler.Update)
}
