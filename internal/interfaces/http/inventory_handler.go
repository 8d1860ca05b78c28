package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar filas del inventario
// @Tags         inventory
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Merge godoc
// @Summary      Fusionar archivos CSV en el libro
// @Description  Combina los CSV indicados con el inventario actual. Los archivos
// @Description  ausentes se saltan y se reportan en la respuesta.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MergeRequest  true  "Rutas de los CSV a fusionar"
// @Success      200   {object}  dto.MergeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/merge [post]
func (h *InventoryHandler) Merge(c *fiber.Ctx) error {
	var in dto.MergeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "files es requerido"})
	}
	out, err := h.uc.MergeFiles(in.Files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportShoper godoc
// @Summary      Exportar el inventario en formato de importación Shoper
// @Tags         inventory
// @Produce      text/csv
// @Success      200  {string}  string  "CSV separado por punto y coma"
// @Router       /api/inventory/export/shoper [get]
func (h *InventoryHandler) ExportShoper(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.ExportShoper(&buf); err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("shoper_%s.csv", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
