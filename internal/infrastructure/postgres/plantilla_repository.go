package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
)

var _ repository.PlantillaRepository = (*PlantillaRepo)(nil)

// PlantillaRepo implementación del puerto PlantillaRepository sobre PostgreSQL.
type PlantillaRepo struct {
	pool *pgxpool.Pool
}

// NewPlantillaRepository construye el adaptador de persistencia para plantillas.
func NewPlantillaRepository(pool *pgxpool.Pool) *PlantillaRepo {
	return &PlantillaRepo{pool: pool}
}

// Create persiste la fila de metadatos de una plantilla ya almacenada.
func (r *PlantillaRepo) Create(p *entity.Plantilla) error {
	query := `
		INSERT INTO plantillas (id, nombre, tipo, ruta, tipo_empresa, creado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Tipo, p.Ruta, p.TipoEmpresa, p.CreadoPor, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert plantilla: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID.
func (r *PlantillaRepo) GetByID(id string) (*entity.Plantilla, error) {
	query := `
		SELECT id, nombre, tipo, ruta, tipo_empresa, creado_por, created_at
		FROM plantillas WHERE id = $1`
	var p entity.Plantilla
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Tipo, &p.Ruta, &p.TipoEmpresa, &p.CreadoPor, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plantilla: %w", err)
	}
	return &p, nil
}

// List devuelve todas las plantillas con el nombre del creador resuelto.
func (r *PlantillaRepo) List() ([]*entity.PlantillaConCreador, error) {
	query := `
		SELECT p.id, p.nombre, p.tipo, p.ruta, p.tipo_empresa, p.creado_por, p.created_at,
			COALESCE(u.nombre, '') AS creador
		FROM plantillas p
		LEFT JOIN usuarios u ON p.creado_por = u.id
		ORDER BY p.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list plantillas: %w", err)
	}
	defer rows.Close()

	var list []*entity.PlantillaConCreador
	for rows.Next() {
		var p entity.PlantillaConCreador
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Tipo, &p.Ruta, &p.TipoEmpresa,
			&p.CreadoPor, &p.CreatedAt, &p.CreadorNombre); err != nil {
			return nil, fmt.Errorf("scan plantilla: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ExistsByNombre informa si ya hay una plantilla registrada con ese nombre.
// Lo usa restaurar-plantillas para no duplicar las plantillas base.
func (r *PlantillaRepo) ExistsByNombre(nombre string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM plantillas WHERE nombre = $1)`, nombre).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists plantilla: %w", err)
	}
	return exists, nil
}

// Delete elimina la fila de metadatos de una plantilla.
func (r *PlantillaRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM plantillas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plantilla: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
