package repository

import "github.com/jhoicas/gpec-api/internal/domain/entity"

// PlantillaRepository puerto de persistencia para plantillas.
type PlantillaRepository interface {
	Create(p *entity.Plantilla) error
	GetByID(id string) (*entity.Plantilla, error)
	// List devuelve todas las plantillas con el nombre del creador resuelto.
	List() ([]*entity.PlantillaConCreador, error)
	ExistsByNombre(nombre string) (bool, error)
	Delete(id string) error
}
