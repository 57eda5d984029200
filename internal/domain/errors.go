package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo ya está registrado")
	ErrNITAlreadyExists   = errors.New("el NIT ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidFormat      = errors.New("formato inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInactiveUser       = errors.New("usuario inactivo")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrEmpresaNotFound    = errors.New("empresa no encontrada")
	ErrPlantillaNotFound  = errors.New("plantilla no encontrada")
	ErrPlantillaMissing   = errors.New("el archivo de la plantilla no existe")
	ErrUnsupportedFormat  = errors.New("formato de plantilla no compatible")
)
