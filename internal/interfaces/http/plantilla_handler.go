package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/application/usecase"
	"github.com/jhoicas/gpec-api/internal/domain"
)

// PlantillaHandler maneja la subida, listado y mantenimiento de plantillas.
type PlantillaHandler struct {
	uc *usecase.PlantillaUseCase
}

// NewPlantillaHandler construye el handler inyectando el caso de uso.
func NewPlantillaHandler(uc *usecase.PlantillaUseCase) *PlantillaHandler {
	return &PlantillaHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir plantilla
// @Tags         plantillas
// @Accept       multipart/form-data
// @Produce      json
// @Param        archivo       formData  file    true  "Archivo .docx o .xlsx"
// @Param        tipo_empresa  formData  string  true  "Tipo de empresa"
// @Success      201  {object}  dto.PlantillaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plantillas [post]
func (h *PlantillaHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "archivo es requerido"})
	}
	tipoEmpresa := c.FormValue("tipo_empresa")
	if tipoEmpresa == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo_empresa es requerido"})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer f.Close()

	out, err := h.uc.Upload(c.Context(), fh.Filename, tipoEmpresa, GetUserID(c), f, fh.Size)
	if err != nil {
		return plantillaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar plantillas
// @Tags         plantillas
// @Produce      json
// @Success      200  {array}  dto.PlantillaResponse
// @Router       /api/plantillas [get]
func (h *PlantillaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Faltantes godoc
// @Summary      Plantillas con binario ausente
// @Tags         plantillas
// @Produce      json
// @Success      200  {array}  dto.PlantillaResponse
// @Router       /api/plantillas/faltantes [get]
func (h *PlantillaHandler) Faltantes(c *fiber.Ctx) error {
	out, err := h.uc.Faltantes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Restaurar godoc
// @Summary      Restaurar plantillas base
// @Tags         plantillas
// @Produce      json
// @Param        tipo_empresa  query  string  false  "Tipo de empresa a asignar"
// @Success      200  {object}  dto.RestaurarResponse
// @Router       /api/plantillas/restaurar [post]
func (h *PlantillaHandler) Restaurar(c *fiber.Ctx) error {
	tipoEmpresa := c.Query("tipo_empresa", "General")
	out, err := h.uc.Restaurar(c.Context(), tipoEmpresa, GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plantilla
// @Tags         plantillas
// @Produce      json
// @Param        id   path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plantillas/{id} [delete]
func (h *PlantillaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return plantillaError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "plantilla eliminada"})
}

func plantillaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo y tipo_empresa son requeridos"})
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "solo se aceptan archivos .docx y .xlsx"})
	case errors.Is(err, domain.ErrPlantillaNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantilla no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
