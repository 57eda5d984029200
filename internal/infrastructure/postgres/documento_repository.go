package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
)

var _ repository.DocumentoRepository = (*DocumentoRepo)(nil)

// DocumentoRepo implementación del puerto DocumentoRepository sobre PostgreSQL.
type DocumentoRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentoRepository construye el adaptador de persistencia del historial.
func NewDocumentoRepository(pool *pgxpool.Pool) *DocumentoRepo {
	return &DocumentoRepo{pool: pool}
}

// Create inserta un registro de historial. Se llama solo después de un
// render exitoso.
func (r *DocumentoRepo) Create(d *entity.DocumentoGenerado) error {
	query := `
		INSERT INTO documentos_generados (id, nombre_documento, plantilla_id, empresa_id, generado_por, fecha_generacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		d.ID, d.NombreDocumento, d.PlantillaID, d.EmpresaID, d.GeneradoPor, d.FechaGeneracion,
	)
	if err != nil {
		return fmt.Errorf("insert documento generado: %w", err)
	}
	return nil
}

// Historial devuelve los registros más recientes primero, con empresa y
// autor resueltos. Si generadoPor no está vacío, filtra a ese usuario.
func (r *DocumentoRepo) Historial(generadoPor string) ([]*entity.DocumentoHistorial, error) {
	query := `
		SELECT dg.id, dg.nombre_documento, dg.fecha_generacion,
			COALESCE(e.nombre, '') AS empresa,
			COALESCE(u.nombre, '') AS usuario
		FROM documentos_generados dg
		LEFT JOIN empresas e ON dg.empresa_id = e.id
		LEFT JOIN usuarios u ON dg.generado_por = u.id`
	args := []any{}
	if generadoPor != "" {
		query += ` WHERE dg.generado_por = $1`
		args = append(args, generadoPor)
	}
	query += ` ORDER BY dg.fecha_generacion DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("historial documentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.DocumentoHistorial
	for rows.Next() {
		var d entity.DocumentoHistorial
		if err := rows.Scan(&d.ID, &d.Nombre, &d.FechaGeneracion, &d.Empresa, &d.Usuario); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un registro del historial. No toca plantilla ni empresa.
func (r *DocumentoRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM documentos_generados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete documento generado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
