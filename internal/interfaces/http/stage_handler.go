package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/application/lifecycle"
)

// StageHandler maneja las peticiones HTTP para etapas de cultivo, incluida
// la máquina de estados y el ciclo de reinicio.
type StageHandler struct {
	uc *lifecycle.StageUseCase
}

// NewStageHandler construye el handler.
func NewStageHandler(uc *lifecycle.StageUseCase) *StageHandler {
	return &StageHandler{uc: uc}
}

// List godoc
// @Summary      Listar etapas
// @Tags         etapas
// @Produce      json
// @Success      200  {array}  dto.StageResponse
// @Router       /api/etapas [get]
func (h *StageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear etapa
// @Tags         etapas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStageRequest  true  "Datos de la etapa"
// @Success      201   {object}  dto.StageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/etapas [post]
func (h *StageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "VALIDATION", "name, expected_duration y responsible son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar etapa
// @Tags         etapas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la etapa"
// @Param        body  body  dto.UpdateStageRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/etapas/{id} [put]
func (h *StageHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	var in dto.UpdateStageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "etapa no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar etapa
// @Tags         etapas
// @Produce      json
// @Param        id  path  int  true  "ID de la etapa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/etapas/{id} [delete]
func (h *StageHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Etapa eliminada correctamente"})
}

// Start godoc
// @Summary      Iniciar etapa
// @Tags         etapas
// @Produce      json
// @Param        id  path  int  true  "ID de la etapa"
// @Success      200  {object}  dto.StageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/etapas/{id}/iniciar [post]
func (h *StageHandler) Start(c *fiber.Ctx) error {
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
// @Summary      Finalizar etapa
// @Tags         etapas
// @Produce      json
// @Param        id  path  int  true  "ID de la etapa"
// @Success      200  {object}  dto.StageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/etapas/{id}/finalizar [post]
func (h *StageHandler) Finish(c *fiber.Ctx) error {
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

// Complete godoc
// @Summary      Completar ciclo de etapa
// @Tags         etapas
// @Produce      json
// @Param        id  path  int  true  "ID de la etapa"
// @Success      200  {object}  dto.StageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/etapas/{id}/completar [post]
func (h *StageHandler) Complete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	out, err := h.uc.Complete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Restart godoc
// @Summary      Reiniciar etapa en un nuevo ciclo
// @Tags         etapas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la etapa"
// @Param        body  body  dto.RestartStageRequest  false  "Nombre del ciclo"
// @Success      201   {object}  dto.StageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/etapas/{id}/reiniciar [post]
func (h *StageHandler) Restart(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	var in dto.RestartStageRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
	}
	out, err := h.uc.Restart(id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Summary godoc
// @Summary      Resumen de cierre de etapa
// @Tags         etapas
// @Produce      json
// @Param        id  path  int  true  "ID de la etapa"
// @Success      200  {object}  dto.StageSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/etapas/{id}/resumen [get]
func (h *StageHandler) Summary(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	out, err := h.uc.Summary(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
