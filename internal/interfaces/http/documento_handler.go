package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/application/usecase"
	"github.com/jhoicas/gpec-api/internal/domain"
)

// DocumentoHandler maneja la generación de documentos y su historial.
type DocumentoHandler struct {
	uc *usecase.DocumentoUseCase
}

// NewDocumentoHandler construye el handler inyectando el caso de uso.
func NewDocumentoHandler(uc *usecase.DocumentoUseCase) *DocumentoHandler {
	return &DocumentoHandler{uc: uc}
}

// Generar godoc
// @Summary      Generar documento
// @Description  Rellena la plantilla con los datos de la empresa y devuelve el archivo.
// @Tags         documentos
// @Produce      application/octet-stream
// @Param        empresaId    path  string  true  "ID de la empresa"
// @Param        plantillaId  path  string  true  "ID de la plantilla"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documentos/generar/{empresaId}/{plantillaId} [get]
func (h *DocumentoHandler) Generar(c *fiber.Ctx) error {
	out, err := h.uc.Generar(c.Context(), c.Params("empresaId"), c.Params("plantillaId"), GetUserID(c))
	if err != nil {
		return documentoError(c, err)
	}

	c.Set(fiber.HeaderContentType, out.MimeType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename*=UTF-8''`+url.PathEscape(out.Nombre))
	return c.Send(out.Data)
}

// Historial godoc
// @Summary      Historial de documentos generados
// @Tags         documentos
// @Produce      json
// @Param        propios  query  bool  false  "Solo los del usuario autenticado"
// @Success      200  {array}  dto.HistorialResponse
// @Router       /api/documentos/historial [get]
func (h *DocumentoHandler) Historial(c *fiber.Ctx) error {
	propios := c.QueryBool("propios", false)
	out, err := h.uc.Historial(GetUserID(c), propios)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar registro del historial
// @Tags         documentos
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documentos/eliminar/{id} [delete]
func (h *DocumentoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return documentoError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro eliminado"})
}

func documentoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmpresaNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "EMPRESA_NOT_FOUND", Message: "empresa no encontrada"})
	case errors.Is(err, domain.ErrPlantillaNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLANTILLA_NOT_FOUND", Message: "plantilla no encontrada"})
	case errors.Is(err, domain.ErrPlantillaMissing):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PLANTILLA_FILE_MISSING", Message: "el archivo de la plantilla no existe en el almacenamiento"})
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "tipo de plantilla no soportado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
