package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kartoteka/kartoteka-api/internal/application/catalog"
)

// CatalogHandler maneja las peticiones HTTP del catálogo de sets TCG.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Sets godoc
// @Summary      Listar sets conocidos
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog/sets [get]
func (h *CatalogHandler) Sets(c *fiber.Ctx) error {
	return c.JSON(h.uc.Sets())
}

// Reload godoc
// @Summary      Recargar el catálogo desde disco
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog/reload [post]
func (h *CatalogHandler) Reload(c *fiber.Ctx) error {
	if err := h.uc.Reload(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.uc.Sets())
}

// Update godoc
// @Summary      Actualizar el catálogo desde el API remoto
// @Description  Descarga la lista oficial de sets y añade los que falten.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogUpdateResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/catalog/update [post]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	out, err := h.uc.Update(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
