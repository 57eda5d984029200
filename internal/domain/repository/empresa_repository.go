package repository

import "github.com/jhoicas/gpec-api/internal/domain/entity"

// EmpresaRepository puerto de persistencia para empresas.
type EmpresaRepository interface {
	Create(e *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	GetByNIT(nit string) (*entity.Empresa, error)
	List() ([]*entity.Empresa, error)
	Update(e *entity.Empresa) error
	Delete(id string) error
}
