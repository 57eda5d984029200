package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	pool *pgxpool.Pool
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(pool *pgxpool.Pool) *EmpresaRepo {
	return &EmpresaRepo{pool: pool}
}

const empresaCols = `id, nombre, codigo_ciiu, actividad_economica, numero_empleados, direccion,
	correo, telefono, nit, representante_legal, ciudad, digito_v, diseno, responsable_psb,
	conjugacion, conjugacion_ii, gentilicio, dato_2121_7, telefono_sst, correo_sst, nr,
	matricula_cc, tipo, tipo_empresa, created_at, updated_at`

func scanEmpresa(row interface{ Scan(...any) error }) (*entity.Empresa, error) {
	var e entity.Empresa
	err := row.Scan(
		&e.ID, &e.Nombre, &e.CodigoCIIU, &e.ActividadEconomica, &e.NumeroEmpleados,
		&e.Direccion, &e.Correo, &e.Telefono, &e.NIT, &e.RepresentanteLegal, &e.Ciudad,
		&e.DigitoV, &e.Diseno, &e.ResponsablePSB, &e.Conjugacion, &e.ConjugacionII,
		&e.Gentilicio, &e.Dato21217, &e.TelefonoSST, &e.CorreoSST, &e.NR,
		&e.MatriculaCC, &e.Tipo, &e.TipoEmpresa, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste una nueva empresa.
func (r *EmpresaRepo) Create(e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (` + empresaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Nombre, e.CodigoCIIU, e.ActividadEconomica, e.NumeroEmpleados,
		e.Direccion, e.Correo, e.Telefono, e.NIT, e.RepresentanteLegal, e.Ciudad,
		e.DigitoV, e.Diseno, e.ResponsablePSB, e.Conjugacion, e.ConjugacionII,
		e.Gentilicio, e.Dato21217, e.TelefonoSST, e.CorreoSST, e.NR,
		e.MatriculaCC, e.Tipo, e.TipoEmpresa, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNITAlreadyExists
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaCols + ` FROM empresas WHERE id = $1`
	e, err := scanEmpresa(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return e, nil
}

// GetByNIT obtiene una empresa por NIT.
func (r *EmpresaRepo) GetByNIT(nit string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaCols + ` FROM empresas WHERE nit = $1`
	e, err := scanEmpresa(r.pool.QueryRow(context.Background(), query, nit))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by NIT: %w", err)
	}
	return e, nil
}

// List devuelve todas las empresas.
func (r *EmpresaRepo) List() ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaCols + ` FROM empresas ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		e, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza una empresa existente (fila completa; el merge parcial
// ocurre en el caso de uso).
func (r *EmpresaRepo) Update(e *entity.Empresa) error {
	query := `
		UPDATE empresas SET nombre = $2, codigo_ciiu = $3, actividad_economica = $4,
			numero_empleados = $5, direccion = $6, correo = $7, telefono = $8, nit = $9,
			representante_legal = $10, ciudad = $11, digito_v = $12, diseno = $13,
			responsable_psb = $14, conjugacion = $15, conjugacion_ii = $16, gentilicio = $17,
			dato_2121_7 = $18, telefono_sst = $19, correo_sst = $20, nr = $21,
			matricula_cc = $22, tipo = $23, tipo_empresa = $24, updated_at = $25
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Nombre, e.CodigoCIIU, e.ActividadEconomica, e.NumeroEmpleados,
		e.Direccion, e.Correo, e.Telefono, e.NIT, e.RepresentanteLegal, e.Ciudad,
		e.DigitoV, e.Diseno, e.ResponsablePSB, e.Conjugacion, e.ConjugacionII,
		e.Gentilicio, e.Dato21217, e.TelefonoSST, e.CorreoSST, e.NR,
		e.MatriculaCC, e.Tipo, e.TipoEmpresa, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNITAlreadyExists
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa por ID.
func (r *EmpresaRepo) Delete(id string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
