package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/application/usecase"
	"github.com/jhoicas/gpec-api/internal/domain"
)

// EmpresaHandler maneja las peticiones HTTP para el recurso Empresa.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler construye el handler inyectando el caso de uso.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpresaRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return empresaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [get]
func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Success      200  {array}  dto.EmpresaResponse
// @Router       /api/empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateEmpresaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [put]
func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	// Decodificación estricta: una clave fuera de la lista de campos
	// permitidos rechaza toda la petición en vez de ignorarse.
	var in dto.UpdateEmpresaRequest
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido o con campos no permitidos"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return empresaError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [delete]
func (h *EmpresaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return empresaError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empresa eliminada"})
}

func empresaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "todos los campos son requeridos"})
	case errors.Is(err, domain.ErrInvalidFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "codigo_ciiu y numero_empleados deben ser numéricos"})
	case errors.Is(err, domain.ErrNITAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NIT", Message: "empresa con ese NIT ya existe"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
