package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
)

// UsuarioUseCase administración de usuarios.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List devuelve todos los usuarios sin hash de contraseña.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *usuarioToResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return usuarioToResponse(u), nil
}

// Create alta administrativa de un usuario con rol y estado explícitos.
// Correo duplicado devuelve ErrEmailAlreadyExists.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Nombre == "" || in.Correo == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCorreo(in.Correo)
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
	rol := in.Rol
	if rol == "" {
		rol = entity.RolUsuarioFinal
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoActivo
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Apellido:       in.Apellido,
		Telefono:       in.Telefono,
		Correo:         in.Correo,
		ContrasenaHash: string(hash),
		Rol:            rol,
		Estado:         estado,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return usuarioToResponse(u), nil
}

// Update actualización parcial por ID. Si cambia el correo, comprueba que no
// pertenezca a otro usuario.
func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Correo != nil && *in.Correo != u.Correo {
		otro, err := uc.repo.GetByCorreo(*in.Correo)
		if err != nil {
			return nil, err
		}
		if otro != nil && otro.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		u.Apellido = *in.Apellido
	}
	if in.Telefono != nil {
		u.Telefono = *in.Telefono
	}
	if in.Correo != nil {
		u.Correo = *in.Correo
	}
	if in.Rol != nil {
		u.Rol = *in.Rol
	}
	if in.Estado != nil {
		u.Estado = *in.Estado
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return usuarioToResponse(u), nil
}

// UpdateProfile el usuario autenticado edita su nombre, apellido y correo.
func (uc *UsuarioUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Correo != "" && in.Correo != u.Correo {
		otro, err := uc.repo.GetByCorreo(in.Correo)
		if err != nil {
			return nil, err
		}
		if otro != nil && otro.ID != userID {
			return nil, domain.ErrEmailAlreadyExists
		}
		u.Correo = in.Correo
	}
	if in.Nombre != "" {
		u.Nombre = in.Nombre
	}
	if in.Apellido != "" {
		u.Apellido = in.Apellido
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return usuarioToResponse(u), nil
}

// UpdateEstado normaliza el estado recibido (booleano o string) a
// activo/inactivo y lo persiste.
func (uc *UsuarioUseCase) UpdateEstado(id string, estado any) error {
	normalizado, err := normalizarEstado(estado)
	if err != nil {
		return err
	}
	return uc.repo.UpdateEstado(id, normalizado)
}

// Delete elimina un usuario por ID.
func (uc *UsuarioUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func normalizarEstado(v any) (string, error) {
	switch e := v.(type) {
	case bool:
		if e {
			return entity.EstadoActivo, nil
		}
		return entity.EstadoInactivo, nil
	case string:
		if e == entity.EstadoActivo || e == entity.EstadoInactivo {
			return e, nil
		}
	}
	return "", domain.ErrInvalidInput
}

func usuarioToResponse(u *entity.Usuario) *dto.UsuarioResponse {
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
