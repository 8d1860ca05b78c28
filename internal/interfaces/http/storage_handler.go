package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/storage"
)

// StorageHandler maneja las peticiones HTTP del almacén físico (ubicaciones).
type StorageHandler struct {
	uc *storage.UseCase
}

// NewStorageHandler construye el handler.
func NewStorageHandler(uc *storage.UseCase) *StorageHandler {
	return &StorageHandler{uc: uc}
}

// Occupancy godoc
// @Summary      Ocupación por cartón y columna
// @Tags         storage
// @Produce      json
// @Success      200  {object}  dto.OccupancyResponse
// @Router       /api/storage/occupancy [get]
func (h *StorageHandler) Occupancy(c *fiber.Ctx) error {
	out, err := h.uc.Occupancy()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// NextFree godoc
// @Summary      Siguiente ubicación libre
// @Tags         storage
// @Produce      json
// @Param        after  query  string  false  "Buscar a partir de esta ubicación (exclusiva)"
// @Success      200  {object}  dto.NextFreeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/storage/next-free [get]
func (h *StorageHandler) NextFree(c *fiber.Ctx) error {
	out, err := h.uc.NextFree(c.Query("after"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Describe godoc
// @Summary      Describir una ubicación
// @Tags         storage
// @Produce      json
// @Param        code  path  string  true  "Código de ubicación (ej. K01R2P0015)"
// @Success      200  {object}  dto.LocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/storage/locations/{code} [get]
func (h *StorageHandler) Describe(c *fiber.Ctx) error {
	out, err := h.uc.Describe(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Repack godoc
// @Summary      Compactar una columna
// @Description  Reasigna las cartas de la columna a posiciones consecutivas desde la 1.
// @Tags         storage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RepackRequest  true  "Cartón y columna"
// @Success      200   {object}  dto.RepackResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/storage/repack [post]
func (h *StorageHandler) Repack(c *fiber.Ctx) error {
	var in dto.RepackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Repack(in.Box, in.Column)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveCode godoc
// @Summary      Retirar una carta por su ubicación
// @Description  Elimina el código del libro y compacta la columna afectada.
// @Tags         storage
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código de ubicación"
// @Success      200   {object}  dto.RemoveCodeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/storage/codes/{code} [delete]
func (h *StorageHandler) RemoveCode(c *fiber.Ctx) error {
	out, err := h.uc.RemoveCode(c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
