package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const usuarioCols = `id, nombre, apellido, telefono, correo, contrasena, rol, estado, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellido, u.Telefono, u.Correo, u.ContrasenaHash,
		u.Rol, u.Estado, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCorreo obtiene un usuario por correo.
func (r *UsuarioRepo) GetByCorreo(correo string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE correo = $1 LIMIT 1`
	return r.scanOne(query, correo)
}

func (r *UsuarioRepo) scanOne(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Telefono, &u.Correo, &u.ContrasenaHash,
		&u.Rol, &u.Estado, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Telefono, &u.Correo,
			&u.ContrasenaHash, &u.Rol, &u.Estado, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza los datos de un usuario.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, apellido = $3, telefono = $4, correo = $5,
			contrasena = $6, rol = $7, estado = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Apellido, u.Telefono, u.Correo, u.ContrasenaHash,
		u.Rol, u.Estado, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateEstado cambia solo el estado (activo/inactivo) de un usuario.
func (r *UsuarioRepo) UpdateEstado(id, estado string) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE usuarios SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateContrasena reemplaza el hash de contraseña de un usuario.
func (r *UsuarioRepo) UpdateContrasena(id, hash string) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE usuarios SET contrasena = $2, updated_at = now() WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update contrasena: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
