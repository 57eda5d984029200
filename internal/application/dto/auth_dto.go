package dto

// RegisterRequest alta pública de usuario.
type RegisterRequest struct {
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Telefono   string `json:"telefono"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse token de sesión más los datos que el cliente muestra de inmediato.
type LoginResponse struct {
	Token    string `json:"token"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Rol      string `json:"rol"`
}

// RecoverRequest solicitud de recuperación de contraseña.
type RecoverRequest struct {
	Correo string `json:"correo"`
}

// RecoverResponse token de recuperación de corta vida.
type RecoverResponse struct {
	ResetToken string `json:"resetToken"`
}

// ResetPasswordRequest canje del token de recuperación.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NuevaContrasena string `json:"nuevaContrasena"`
}
