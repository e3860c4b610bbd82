package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cultivapp/cultivo-api/internal/application/export"
)

// ExportHandler genera la descarga del inventario completo en Excel.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Excel godoc
// @Summary      Exportar inventario a Excel
// @Tags         exportar
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/exportar-excel [get]
func (h *ExportHandler) Excel(c *fiber.Ctx) error {
	f, filename, err := h.uc.Workbook()
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return f.Write(c.Response().BodyWriter())
}
