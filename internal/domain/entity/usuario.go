package entity

import "time"

// Roles de usuario.
const (
	RolAdministrador = "administrador"
	RolDigitador     = "digitador"
	RolUsuarioFinal  = "usuario_final"
)

// Estados de cuenta. Un usuario inactivo no puede iniciar sesión
// aunque su contraseña sea correcta.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Usuario cuenta de la plataforma.
type Usuario struct {
	ID             string
	Nombre         string
	Apellido       string
	Telefono       string
	Correo         string
	ContrasenaHash string
	Rol            string // administrador | digitador | usuario_final
	Estado         string // activo | inactivo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
