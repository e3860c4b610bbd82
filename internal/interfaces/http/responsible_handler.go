package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/application/usecase"
)

// ResponsibleHandler maneja las peticiones HTTP para responsables.
type ResponsibleHandler struct {
	uc *usecase.ResponsibleUseCase
}

// NewResponsibleHandler construye el handler.
func NewResponsibleHandler(uc *usecase.ResponsibleUseCase) *ResponsibleHandler {
	return &ResponsibleHandler{uc: uc}
}

// List godoc
// @Summary      Listar responsables
// @Tags         responsables
// @Produce      json
// @Success      200  {array}  dto.ResponsibleResponse
// @Router       /api/responsables [get]
func (h *ResponsibleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListByLocation godoc
// @Summary      Listar responsables de una locación
// @Tags         responsables
// @Produce      json
// @Param        id  path  int  true  "ID de la locación"
// @Success      200  {array}  dto.ResponsibleResponse
// @Router       /api/responsables/locacion/{id} [get]
func (h *ResponsibleHandler) ListByLocation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "MISSING_ID", "id inválido")
	}
	out, err := h.uc.ListByLocation(int64(id))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear responsable
// @Tags         responsables
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateResponsibleRequest  true  "Datos del responsable"
// @Success      201   {object}  dto.ResponsibleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/responsables [post]
func (h *ResponsibleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateResponsibleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "VALIDATION", "name y location_id son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar responsable
// @Tags         responsables
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del responsable"
// @Param        body  body  dto.UpdateResponsibleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ResponsibleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/responsables/{id} [put]
func (h *ResponsibleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	var in dto.UpdateResponsibleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "responsable no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar responsable
// @Tags         responsables
// @Produce      json
// @Param        id  path  int  true  "ID del responsable"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/responsables/{id} [delete]
func (h *ResponsibleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Responsable eliminado correctamente"})
}
