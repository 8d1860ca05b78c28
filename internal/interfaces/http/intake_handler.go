package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/intake"
)

// IntakeHandler maneja el alta de cartas: reconocimiento por imagen y guardado.
type IntakeHandler struct {
	uc *intake.UseCase
}

// NewIntakeHandler construye el handler.
func NewIntakeHandler(uc *intake.UseCase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

// Recognize godoc
// @Summary      Reconocer una carta por su foto
// @Description  Envía la imagen al modelo de visión y devuelve nombre, número y sufijo.
// @Tags         intake
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecognizeRequest  true  "Imagen en base64"
// @Success      200   {object}  dto.CardRecognitionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/cards/recognize [post]
func (h *IntakeHandler) Recognize(c *fiber.Ctx) error {
	var in dto.RecognizeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Image == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "image es requerido"})
	}
	out, err := h.uc.Recognize(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Dar de alta una carta
// @Description  Asigna la primera ubicación libre, resuelve el precio según la
// @Description  variante y publica el producto en la tienda si está configurada.
// @Tags         intake
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IntakeRequest  true  "Datos de la carta"
// @Success      201   {object}  dto.IntakeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cards [post]
func (h *IntakeHandler) Save(c *fiber.Ctx) error {
	var in dto.IntakeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
