package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/application/usecase"
	"github.com/jhoicas/gpec-api/internal/domain"
)

// UsuarioHandler maneja la administración de usuarios y el perfil propio.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler inyectando el caso de uso.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return usuarioError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del usuario"
// @Param        body  body  dto.UpdateUsuarioRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return usuarioError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar el perfil del usuario autenticado
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Datos del perfil"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/usuarios/actualizar [put]
func (h *UsuarioHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return usuarioError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Cambiar el estado de un usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del usuario"
// @Param        body  body  dto.EstadoRequest true  "Nuevo estado (bool o activo/inactivo)"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/estado [patch]
func (h *UsuarioHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.EstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateEstado(c.Params("id"), in.Estado); err != nil {
		return usuarioError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return usuarioError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}

func usuarioError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el correo ya está registrado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
