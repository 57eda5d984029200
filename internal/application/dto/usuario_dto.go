package dto

// CreateUsuarioRequest alta de usuario desde la pantalla de administración.
type CreateUsuarioRequest struct {
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Telefono   string `json:"telefono"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"`
	Estado     string `json:"estado"`
}

// UpdateUsuarioRequest actualización parcial de un usuario por ID.
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Telefono *string `json:"telefono"`
	Correo   *string `json:"correo"`
	Rol      *string `json:"rol"`
	Estado   *string `json:"estado"`
}

// UpdateProfileRequest el usuario autenticado edita su propio perfil.
type UpdateProfileRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
}

// EstadoRequest cambio de estado. Acepta booleano (pantalla de switch) o el
// string activo/inactivo; el caso de uso normaliza.
type EstadoRequest struct {
	Estado any `json:"estado"`
}

// UsuarioResponse representación de salida de un usuario. Nunca incluye el
// hash de contraseña.
type UsuarioResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
	Rol      string `json:"rol"`
	Estado   string `json:"estado"`
}
