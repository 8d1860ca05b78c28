package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/pricing"
)

// PricingHandler maneja las consultas de precio de cartas.
type PricingHandler struct {
	uc *pricing.UseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *pricing.UseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Lookup godoc
// @Summary      Consultar precio de una carta
// @Description  Busca primero en la base local y después en el proveedor externo.
// @Description  Devuelve precio EUR, tasa EUR/PLN y precios PLN (bruto y 80%).
// @Tags         pricing
// @Produce      json
// @Param        name    query  string  true   "Nombre de la carta"
// @Param        number  query  string  true   "Número dentro del set"
// @Param        set     query  string  false  "Código del set (ej. sv8)"
// @Success      200  {object}  dto.CardInfoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cards/price [get]
func (h *PricingHandler) Lookup(c *fiber.Ctx) error {
	name := c.Query("name")
	number := c.Query("number")
	if name == "" || number == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y number son requeridos"})
	}
	out, err := h.uc.LookupCardInfo(c.UserContext(), name, number, c.Query("set"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
