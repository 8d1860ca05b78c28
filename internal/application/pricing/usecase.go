// Package pricing caso de uso de tasación: precio EUR de mercado (caché local
// primero, proveedor después), tipo de cambio y precios finales en PLN.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	dompricing "github.com/kartoteka/kartoteka-api/internal/domain/pricing"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

var pct80 = decimal.NewFromFloat(0.8)

// UseCase tasa cartas combinando caché, proveedor de precios y tipo de cambio.
type UseCase struct {
	cache    repository.PriceRepository
	provider ports.CardPriceProvider
	rates    ports.ExchangeRateProvider
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(cache repository.PriceRepository, provider ports.CardPriceProvider, rates ports.ExchangeRateProvider, log *logger.Logger) *UseCase {
	return &UseCase{cache: cache, provider: provider, rates: rates, log: log}
}

// LookupCardInfo devuelve el precio EUR de la carta, el tipo de cambio
// aplicado y los dos precios en PLN: el de venta (con margen) y el 80% que se
// ofrece por compras. Una carta sin precio publicado devuelve precios vacíos,
// no un error.
func (uc *UseCase) LookupCardInfo(ctx context.Context, name, number, setCode string) (*dto.CardInfoResponse, error) {
	out := &dto.CardInfoResponse{Name: name, Number: number}

	priceEUR, cached := uc.cache.Lookup(name, number)
	if !cached {
		info, err := uc.provider.LookupCard(ctx, name, number, setCode)
		if err != nil {
			return nil, err
		}
		if info != nil {
			priceEUR = info.PriceEUR
			out.ImageURL = info.ImageURL
			out.LogoURL = info.LogoURL
			if priceEUR != "" {
				if cerr := uc.cache.Put(name, number, priceEUR); cerr != nil {
					uc.log.Warn().Err(cerr).Msg("no se pudo cachear el precio")
				}
			}
		}
	}

	rate := uc.rates.EURPLN(ctx)
	out.EURPLNRate = rate.String()

	if priceEUR == "" {
		return out, nil
	}
	eur, err := decimal.NewFromString(priceEUR)
	if err != nil {
		uc.log.Warn().Str("price", priceEUR).Msg("precio EUR no parseable del proveedor")
		return out, nil
	}

	pln := dompricing.ConvertEURToPLN(eur, rate)
	out.PriceEUR = eur.StringFixed(2)
	out.PricePLN = pln.StringFixed(2)
	out.PricePLN80 = pln.Mul(pct80).Round(2).StringFixed(2)
	return out, nil
}

// PriceForVariant tasa una carta y aplica los multiplicadores de variante
// (holo/reverse, Poké Ball, Master Ball) al precio PLN de venta.
func (uc *UseCase) PriceForVariant(ctx context.Context, name, number, setCode string, v dompricing.Variant) (string, error) {
	info, err := uc.LookupCardInfo(ctx, name, number, setCode)
	if err != nil {
		return "", err
	}
	if info.PricePLN == "" {
		return "", nil
	}
	pln, err := decimal.NewFromString(info.PricePLN)
	if err != nil {
		return "", err
	}
	return dompricing.ApplyVariantMultiplier(pln, v).StringFixed(2), nil
}
