package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/gpec-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret          string
	ExpMinutes      int // token de sesión
	ResetExpMinutes int // token de recuperación de contraseña
	Issuer          string
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación
// de contraseña.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el correo ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	existing, err := uc.usuarioRepo.GetByCorreo(in.Correo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Apellido:       in.Apellido,
		Telefono:       in.Telefono,
		Correo:         in.Correo,
		ContrasenaHash: string(hash),
		Rol:            entity.RolUsuarioFinal,
		Estado:         entity.EstadoActivo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica correo/contraseña, exige cuenta activa y genera el JWT.
// La cuenta inactiva se comprueba después de la contraseña: una contraseña
// incorrecta nunca revela el estado de la cuenta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByCorreo(in.Correo)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if u.Estado != entity.EstadoActivo {
		return nil, domain.ErrInactiveUser
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, u.ID, u.Correo, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Correo:   u.Correo,
		Rol:      u.Rol,
	}, nil
}

// Recover emite un token de recuperación de corta vida para un correo
// existente. Devuelve ErrUserNotFound si el correo no está registrado.
func (uc *AuthUseCase) Recover(correo string) (string, error) {
	u, err := uc.usuarioRepo.GetByCorreo(correo)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrUserNotFound
	}
	return pkgjwt.GenerateReset(uc.jwtCfg.Secret, u.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ResetExpMinutes)
}

// ResetPassword canjea el token de recuperación una vez y fija el nuevo hash.
func (uc *AuthUseCase) ResetPassword(token, nuevaContrasena string) error {
	userID, err := pkgjwt.ParseReset(uc.jwtCfg.Secret, token)
	if err != nil {
		return domain.ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nuevaContrasena), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.UpdateContrasena(userID, string(hash))
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Telefono: u.Telefono,
		Correo:   u.Correo,
		Rol:      u.Rol,
		Estado:   u.Estado,
	}
}
