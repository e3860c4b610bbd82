package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/application/usecase"
)

// PostitHandler maneja las peticiones HTTP para notas post-it.
type PostitHandler struct {
	uc *usecase.PostitUseCase
}

// NewPostitHandler construye el handler.
func NewPostitHandler(uc *usecase.PostitUseCase) *PostitHandler {
	return &PostitHandler{uc: uc}
}

// List godoc
// @Summary      Listar post-its
// @Tags         postits
// @Produce      json
// @Success      200  {array}  dto.PostitResponse
// @Router       /api/postits [get]
func (h *PostitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear post-it
// @Tags         postits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePostitRequest  true  "Datos de la nota"
// @Success      201   {object}  dto.PostitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/postits [post]
func (h *PostitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePostitRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "VALIDATION", "title y content son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar post-it
// @Tags         postits
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la nota"
// @Param        body  body  dto.UpdatePostitRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PostitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/postits/{id} [put]
func (h *PostitHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	var in dto.UpdatePostitRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "post-it no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar post-it
// @Tags         postits
// @Produce      json
// @Param        id  path  int  true  "ID de la nota"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/postits/{id} [delete]
func (h *PostitHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Post-it eliminado correctamente"})
}
