package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kartoteka/kartoteka-api/internal/application/fulfillment"
)

// OrderHandler maneja las peticiones HTTP de pedidos y su recogida.
type OrderHandler struct {
	uc *fulfillment.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *fulfillment.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Assign godoc
// @Summary      Asignar ubicaciones a los pedidos nuevos
// @Description  Descarga los pedidos con estado "new" de Shoper y asigna a cada
// @Description  línea el grupo de ubicaciones más compacto (menor distancia
// @Description  Manhattan entre sí; a igualdad, el de códigos más bajos).
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AssignResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/orders/assign [post]
func (h *OrderHandler) Assign(c *fiber.Ctx) error {
	out, err := h.uc.AssignNewOrders(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PickingList godoc
// @Summary      Lista de recogida en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/orders/picking-list [get]
func (h *OrderHandler) PickingList(c *fiber.Ctx) error {
	pdf, err := h.uc.PickingList(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("lista_kompletacji_%s.pdf", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
