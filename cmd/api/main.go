package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appcatalog "github.com/kartoteka/kartoteka-api/internal/application/catalog"
	appful "github.com/kartoteka/kartoteka-api/internal/application/fulfillment"
	appintake "github.com/kartoteka/kartoteka-api/internal/application/intake"
	appinv "github.com/kartoteka/kartoteka-api/internal/application/inventory"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	apppricing "github.com/kartoteka/kartoteka-api/internal/application/pricing"
	appstorage "github.com/kartoteka/kartoteka-api/internal/application/storage"
	dominv "github.com/kartoteka/kartoteka-api/internal/domain/inventory"
	domstorage "github.com/kartoteka/kartoteka-api/internal/domain/storage"
	infraai "github.com/kartoteka/kartoteka-api/internal/infrastructure/ai"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvstore"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/ftpupload"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/nbp"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/pricedb"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/report"
	infrashoper "github.com/kartoteka/kartoteka-api/internal/infrastructure/shoper"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/tcgapi"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/tcggo"
	httpRouter "github.com/kartoteka/kartoteka-api/internal/interfaces/http"
	"github.com/kartoteka/kartoteka-api/pkg/config"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	dims := domstorage.Dimensions{
		Boxes:     cfg.Storage.Boxes,
		Columns:   cfg.Storage.Columns,
		Positions: cfg.Storage.Positions,
	}

	// Libro de inventario sobre CSV + registro de códigos de producto sembrado
	// con los códigos ya presentes en el libro.
	bookRepo := csvstore.NewSnapshotRepository(cfg.Storage.BookPath, log)
	registry := dominv.NewProductCodeRegistry()
	snap, err := bookRepo.Load()
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.BookPath).Msg("cargar libro de inventario")
	}
	for _, row := range snap.Rows {
		registry.Assign(row.Key(), row.ProductCode)
	}
	log.Info().Int("rows", len(snap.Rows)).Int("codes", registry.Len()).Msg("libro de inventario cargado")

	// Precios: base local + proveedor externo + tipo de cambio NBP.
	priceStore, err := pricedb.NewStore(cfg.Pricing.PriceDBPath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Pricing.PriceDBPath).Msg("cargar base de precios")
	}
	fallbackRate, err := decimal.NewFromString(cfg.NBP.FallbackRate)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.NBP.FallbackRate).Msg("tasa EUR/PLN de respaldo inválida")
	}
	rates := nbp.NewClient(cfg.NBP.BaseURL, fallbackRate, log)
	priceProvider := tcggo.NewClient(cfg.Pricing.RapidAPIHost, cfg.Pricing.RapidAPIKey, log)
	pricingUC := apppricing.NewUseCase(priceStore, priceProvider, rates, log)

	// Catálogo de sets: archivos locales + API oficial para actualizaciones.
	setRepo := csvstore.NewSetRepository([]string{cfg.Catalog.SetsFileENG, cfg.Catalog.SetsFileJP}, log)
	setsClient := tcgapi.NewSetsClient(tcgapi.DefaultBaseURL, log)
	catalogUC, err := appcatalog.NewUseCase(setRepo, setsClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de sets")
	}

	// Servicios externos opcionales: sin configuración quedan en nil y los
	// casos de uso degradan (alta local sin tienda, sin reconocimiento).
	var shoperClient ports.ShoperClient
	if cfg.Shoper.APIURL != "" && cfg.Shoper.APIToken != "" {
		shoperClient = infrashoper.NewClient(cfg.Shoper.APIURL, cfg.Shoper.APIToken, log)
	}
	var uploader ports.ImageUploader
	if cfg.FTP.Host != "" {
		uploader = ftpupload.NewUploader(cfg.FTP.Host, cfg.FTP.User, cfg.FTP.Password, log)
	}
	var recognizer ports.CardRecognizer
	if cfg.AI.OpenAIAPIKey != "" {
		recognizer = infraai.NewOpenAIRecognizer(cfg.AI.OpenAIAPIKey, cfg.AI.Model)
	}

	storageUC := appstorage.NewUseCase(bookRepo, dims, log)
	inventoryUC := appinv.NewUseCase(bookRepo, registry, log)
	fulfillmentUC := appful.NewUseCase(bookRepo, shoperClient, report.NewPickingListGenerator(), log)
	intakeUC := appintake.NewUseCase(
		bookRepo, dims, registry, pricingUC,
		recognizer, shoperClient, uploader,
		appintake.Options{
			ImageBaseURL: cfg.Shoper.ImageBase,
			ImageDir:     cfg.FTP.ImageDir,
			DeliveryID:   cfg.Shoper.DeliveryID,
		},
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kartoteka API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"storage": fmt.Sprintf("%dx%dx%d", dims.Boxes, dims.Columns, dims.Positions),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StorageUC:   storageUC,
		InventoryUC: inventoryUC,
		OrderUC:     fulfillmentUC,
		PricingUC:   pricingUC,
		CatalogUC:   catalogUC,
		IntakeUC:    intakeUC,
		APIToken:    cfg.HTTP.APIToken,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
