// Package intake caso de uso de alta de cartas físicas: reconoce la carta si
// hace falta, le asigna el primer hueco libre del almacén, emite su código de
// producto, la tasa y opcionalmente la publica en la tienda con su foto.
package intake

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	apppricing "github.com/kartoteka/kartoteka-api/internal/application/pricing"
	"github.com/kartoteka/kartoteka-api/internal/domain"
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	dominv "github.com/kartoteka/kartoteka-api/internal/domain/inventory"
	dompricing "github.com/kartoteka/kartoteka-api/internal/domain/pricing"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	domstorage "github.com/kartoteka/kartoteka-api/internal/domain/storage"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// Options parámetros de publicación: dónde viven las fotos subidas y bajo qué
// URL pública las sirve la tienda.
type Options struct {
	ImageBaseURL string
	ImageDir     string
	DeliveryID   int
}

// UseCase da de alta cartas en el libro y, si la tienda está configurada,
// también en Shoper. Los puertos shoper y uploader pueden ser nil: el alta
// local funciona sin tienda.
type UseCase struct {
	repo       repository.SnapshotRepository
	dims       domstorage.Dimensions
	registry   *dominv.ProductCodeRegistry
	pricing    *apppricing.UseCase
	recognizer ports.CardRecognizer
	shoper     ports.ShoperClient
	uploader   ports.ImageUploader
	opts       Options
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.SnapshotRepository,
	dims domstorage.Dimensions,
	registry *dominv.ProductCodeRegistry,
	pricing *apppricing.UseCase,
	recognizer ports.CardRecognizer,
	shoper ports.ShoperClient,
	uploader ports.ImageUploader,
	opts Options,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		repo:       repo,
		dims:       dims,
		registry:   registry,
		pricing:    pricing,
		recognizer: recognizer,
		shoper:     shoper,
		uploader:   uploader,
		opts:       opts,
		log:        log,
	}
}

// Recognize identifica una carta a partir de su foto (base64).
func (uc *UseCase) Recognize(ctx context.Context, in dto.RecognizeRequest) (*dto.CardRecognitionDTO, error) {
	if uc.recognizer == nil {
		return nil, fmt.Errorf("%w: reconocimiento de cartas", domain.ErrNotConfigured)
	}
	image, err := base64.StdEncoding.DecodeString(in.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: imagen base64 inválida", domain.ErrInvalidInput)
	}
	return uc.recognizer.RecognizeCard(ctx, image)
}

// Save da de alta una copia física: primer hueco libre, código de producto
// estable, precio con multiplicadores de variante y fila nueva o existente en
// el libro. Con tienda configurada además publica el producto y sube la foto.
func (uc *UseCase) Save(ctx context.Context, in dto.IntakeRequest) (*dto.IntakeResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Number) == "" {
		return nil, fmt.Errorf("%w: name y number son requeridos", domain.ErrInvalidInput)
	}

	pricePLN, err := uc.resolvePrice(ctx, in)
	if err != nil {
		return nil, err
	}

	out := &dto.IntakeResponse{Name: composeName(in), PricePLN: pricePLN}
	err = uc.repo.Update(func(snap *entity.Snapshot) error {
		code := domstorage.NextFreeLocation(snap.Rows, uc.dims, 0)
		if code == "" {
			return domain.ErrStorageExhausted
		}
		out.WarehouseCode = code
		out.Description = domstorage.Describe(code)

		probe := &entity.InventoryRow{Name: in.Name, Number: in.Number, Set: in.Set}
		row := snap.FindByKey(probe.Key())
		if row == nil {
			row = &entity.InventoryRow{
				Name:   in.Name,
				Number: in.Number,
				Set:    in.Set,
				Suffix: in.Suffix,
				Price:  pricePLN,
			}
			snap.Rows = append(snap.Rows, row)
		}
		for _, col := range []string{
			"nazwa", "numer", "set", "suffix", "product_code", "warehouse_code",
			"cena", "image1", "category", "producer", "short_description", "description",
		} {
			snap.EnsureColumn(col)
		}

		row.ProductCode = fmt.Sprintf("%d", uc.registry.Assign(row.Key(), row.ProductCode))
		out.ProductCode = row.ProductCode

		codes := append(row.Codes(), code)
		row.SetCodes(codes)
		row.Qty = len(codes)
		if pricePLN != "" {
			row.Price = pricePLN
		}

		// Campos de tienda que viajan en el propio libro: así el export Shoper
		// sale completo sin pedir nada más.
		row.SetExtraField("category", "Karty Pokémon > "+in.Set)
		row.SetExtraField("producer", "Pokémon")
		row.SetExtraField("short_description", shortDescription(in))
		row.SetExtraField("description", longDescription(in, out))
		if in.Image != "" && uc.uploader != nil {
			out.ImageURL = strings.TrimSuffix(uc.opts.ImageBaseURL, "/") + "/" + row.ProductCode + ".jpg"
			row.Image = out.ImageURL
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.publish(ctx, in, out); err != nil {
		// el alta local ya está persistida; la publicación fallida se avisa
		uc.log.Error().Err(err).Str("code", out.WarehouseCode).Msg("no se pudo publicar en la tienda")
	}

	uc.log.Info().
		Str("card", out.Name).
		Str("warehouse_code", out.WarehouseCode).
		Str("product_code", out.ProductCode).
		Msg("carta dada de alta")
	return out, nil
}

// resolvePrice precio PLN final: el EUR explícito de la petición o el de
// mercado, siempre con los multiplicadores de variante.
func (uc *UseCase) resolvePrice(ctx context.Context, in dto.IntakeRequest) (string, error) {
	variant := dompricing.Variant{
		Holo:       in.Holo,
		Reverse:    in.Reverse,
		Pokeball:   in.Pokeball,
		Masterball: in.Masterball,
	}

	if in.PriceEUR != "" {
		eur, err := decimal.NewFromString(in.PriceEUR)
		if err != nil {
			return "", fmt.Errorf("%w: price_eur %q", domain.ErrInvalidInput, in.PriceEUR)
		}
		info, lerr := uc.pricing.LookupCardInfo(ctx, in.Name, in.Number, "")
		if lerr != nil {
			return "", lerr
		}
		rate, rerr := decimal.NewFromString(info.EURPLNRate)
		if rerr != nil {
			return "", rerr
		}
		pln := dompricing.ConvertEURToPLN(eur, rate)
		return dompricing.ApplyVariantMultiplier(pln, variant).StringFixed(2), nil
	}

	return uc.pricing.PriceForVariant(ctx, in.Name, in.Number, in.Set, variant)
}

// publish sube la foto y crea el producto en la tienda. Sin puertos
// configurados no hace nada.
func (uc *UseCase) publish(ctx context.Context, in dto.IntakeRequest, out *dto.IntakeResponse) error {
	if in.Image != "" && uc.uploader != nil {
		image, err := base64.StdEncoding.DecodeString(in.Image)
		if err != nil {
			return fmt.Errorf("%w: imagen base64 inválida", domain.ErrInvalidInput)
		}
		remote := path.Join(uc.opts.ImageDir, out.ProductCode+".jpg")
		if err := uc.uploader.UploadFile(ctx, remote, image); err != nil {
			return err
		}
	}

	if uc.shoper == nil {
		return nil
	}
	_, err := uc.shoper.AddProduct(ctx, ports.ShoperProduct{
		Code:        out.ProductCode,
		Name:        out.Name,
		Price:       out.PricePLN,
		Stock:       1,
		Delivery:    uc.opts.DeliveryID,
		ShortDesc:   shortDescription(in),
		Description: longDescription(in, out),
		ImageURL:    out.ImageURL,
	})
	return err
}

// composeName nombre de venta: "{nazwa} {suffix} {numer}".
func composeName(in dto.IntakeRequest) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{in.Name, in.Suffix, in.Number} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " ")
}

// Las descripciones van en polaco: es el idioma de la tienda.
func shortDescription(in dto.IntakeRequest) string {
	return fmt.Sprintf("<p>Karta Pokémon %s z zestawu %s.</p>", composeName(in), in.Set)
}

func longDescription(in dto.IntakeRequest, out *dto.IntakeResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Oryginalna karta Pokémon <strong>%s</strong>.</p>", composeName(in))
	fmt.Fprintf(&b, "<p>Zestaw: %s<br>Numer karty: %s</p>", in.Set, in.Number)
	if in.Holo {
		b.WriteString("<p>Wersja: Holo</p>")
	}
	if in.Reverse {
		b.WriteString("<p>Wersja: Reverse Holo</p>")
	}
	if in.Pokeball {
		b.WriteString("<p>Wersja: Poké Ball</p>")
	}
	if in.Masterball {
		b.WriteString("<p>Wersja: Master Ball</p>")
	}
	b.WriteString("<p>Stan: Near Mint. Karta wysyłana w twardym ochraniaczu.</p>")
	return b.String()
}
