package repository

import "github.com/jhoicas/gpec-api/internal/domain/entity"

// DocumentoRepository puerto de persistencia para el historial de documentos.
type DocumentoRepository interface {
	Create(d *entity.DocumentoGenerado) error
	// Historial devuelve los registros más recientes primero. Si generadoPor
	// no está vacío, filtra a los documentos de ese usuario.
	Historial(generadoPor string) ([]*entity.DocumentoHistorial, error)
	Delete(id string) error
}
