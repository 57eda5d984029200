package repository

import "github.com/jhoicas/gpec-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios.
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByCorreo(correo string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	Update(u *entity.Usuario) error
	UpdateEstado(id, estado string) error
	UpdateContrasena(id, hash string) error
	Delete(id string) error
}
