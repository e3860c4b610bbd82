package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/application/usecase"
)

// RecipeHandler maneja recetas e imágenes subidas: listado, carga multipart,
// descarga y borrado.
type RecipeHandler struct {
	recipes *usecase.RecipeUseCase
	images  *usecase.RecipeImageUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(recipes *usecase.RecipeUseCase, images *usecase.RecipeImageUseCase) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, images: images}
}

// List godoc
// @Summary      Listar recetas
// @Tags         recetas
// @Produce      json
// @Success      200  {array}  dto.RecipeResponse
// @Router       /api/recetas [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	out, err := h.recipes.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Upload godoc
// @Summary      Subir receta
// @Tags         recetas
// @Accept       multipart/form-data
// @Produce      json
// @Param        name  formData  string  true  "Nombre de la receta"
// @Param        file  formData  file    true  "Archivo"
// @Success      201   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/recetas/upload [post]
func (h *RecipeHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "no se encontró archivo")
	}
	name := c.FormValue("name")
	if name == "" {
		return badRequest(c, "VALIDATION", "nombre es obligatorio")
	}
	out, err := h.recipes.Upload(name, file)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Download godoc
// @Summary      Descargar receta
// @Tags         recetas
// @Produce      octet-stream
// @Param        id  path  int  true  "ID de la receta"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recetas/{id}/download [get]
func (h *RecipeHandler) Download(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	path, filename, err := h.recipes.Download(id)
	if err != nil {
		return fail(c, err)
	}
	return c.Download(path, filename)
}

// Delete godoc
// @Summary      Eliminar receta
// @Tags         recetas
// @Produce      json
// @Param        id  path  int  true  "ID de la receta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recetas/{id} [delete]
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	if err := h.recipes.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Receta eliminada correctamente"})
}

// ListImages godoc
// @Summary      Listar imágenes de recetas
// @Tags         recetas
// @Produce      json
// @Success      200  {array}  dto.RecipeImageResponse
// @Router       /api/recetas/imagenes [get]
func (h *RecipeHandler) ListImages(c *fiber.Ctx) error {
	out, err := h.images.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UploadImage godoc
// @Summary      Subir imagen
// @Tags         recetas
// @Accept       multipart/form-data
// @Produce      json
// @Param        title    formData  string  true   "Título"
// @Param        comment  formData  string  false  "Comentario"
// @Param        image    formData  file    true   "Imagen"
// @Success      201      {object}  dto.RecipeImageResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/recetas/imagenes/upload [post]
func (h *RecipeHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "no se encontró imagen")
	}
	title := c.FormValue("title")
	if title == "" {
		return badRequest(c, "VALIDATION", "título es obligatorio")
	}
	out, err := h.images.Upload(title, c.FormValue("comment"), file)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateImage godoc
// @Summary      Actualizar imagen
// @Tags         recetas
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la imagen"
// @Param        body  body  dto.UpdateRecipeImageRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RecipeImageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recetas/imagenes/{id} [put]
func (h *RecipeHandler) UpdateImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	var in dto.UpdateRecipeImageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.images.Update(id, in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c, "imagen no encontrada")
	}
	return c.JSON(out)
}

// DeleteImage godoc
// @Summary      Eliminar imagen
// @Tags         recetas
// @Produce      json
// @Param        id  path  int  true  "ID de la imagen"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recetas/imagenes/{id} [delete]
func (h *RecipeHandler) DeleteImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "MISSING_ID", err.Error())
	}
	if err := h.images.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Imagen eliminada correctamente"})
}
