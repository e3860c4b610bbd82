package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/application/lifecycle"
)

// SubstageHandler maneja las peticiones HTTP para sub-etapas.
type SubstageHandler struct {
	uc *lifecycle.SubstageUseCase
}

// NewSubstageHandler construye el handler.
func NewSubstageHandler(uc *lifecycle.SubstageUseCase) *SubstageHandler {
	return &SubstageHandler{uc: uc}
}

// List godoc
// @Summary      Listar sub-etapas
// @Tags         sub-etapas
// @Produce      json
// @Success      200  {array}  dto.SubstageResponse
// @Router       /api/sub-etapas [get]
func (h *SubstageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sub-etapa
// @Tags         sub-etapas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubstageRequest  true  "Datos de la sub-etapa"
// @Success      201   {object}  dto.SubstageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sub-etapas [post]
func (h *SubstageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubstageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "VALIDATION", "name, expected_duration, stage_id y responsible son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar sub-etapa
// @Tags         sub-etapas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la sub-etapa"
// @Param        body  body  dto.UpdateSubstageRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SubstageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sub-etapas/{id} [put]
func (h *SubstageHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	var in dto.UpdateSubstageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "sub-etapa no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sub-etapa
// @Tags         sub-etapas
// @Produce      json
// @Param        id  path  int  true  "ID de la sub-etapa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sub-etapas/{id} [delete]
func (h *SubstageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Sub-etapa eliminada correctamente"})
}

// Start godoc
// @Summary      Iniciar sub-etapa
// @Tags         sub-etapas
// @Produce      json
// @Param        id  path  int  true  "ID de la sub-etapa"
// @Success      200  {object}  dto.SubstageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sub-etapas/{id}/iniciar [post]
func (h *SubstageHandler) Start(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	out, err := h.uc.Start(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Finish godoc
// @Summary      Finalizar sub-etapa
// @Tags         sub-etapas
// @Produce      json
// @Param        id  path  int  true  "ID de la sub-etapa"
// @Success      200  {object}  dto.SubstageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sub-etapas/{id}/finalizar [post]
func (h *SubstageHandler) Finish(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	out, err := h.uc.Finish(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
