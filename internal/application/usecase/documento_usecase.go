package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
	"github.com/jhoicas/gpec-api/internal/infrastructure/render"
	"github.com/jhoicas/gpec-api/internal/infrastructure/storage"
	"github.com/jhoicas/gpec-api/pkg/logger"
	"github.com/jhoicas/gpec-api/pkg/metrics"
)

// DocumentoUseCase generación de documentos e historial.
type DocumentoUseCase struct {
	empresaRepo   repository.EmpresaRepository
	plantillaRepo repository.PlantillaRepository
	documentoRepo repository.DocumentoRepository
	store         storage.Store
	renderer      *render.DocumentRenderer
	metrics       *metrics.Metrics
	log           *logger.Logger
}

func NewDocumentoUseCase(
	empresaRepo repository.EmpresaRepository,
	plantillaRepo repository.PlantillaRepository,
	documentoRepo repository.DocumentoRepository,
	store storage.Store,
	renderer *render.DocumentRenderer,
	m *metrics.Metrics,
	log *logger.Logger,
) *DocumentoUseCase {
	return &DocumentoUseCase{
		empresaRepo:   empresaRepo,
		plantillaRepo: plantillaRepo,
		documentoRepo: documentoRepo,
		store:         store,
		renderer:      renderer,
		metrics:       m,
		log:           log,
	}
}

// Generar renderiza la plantilla con los datos de la empresa y devuelve el
// binario listo para descargar. El historial se registra únicamente después
// de un render exitoso; un render fallido no deja rastro.
func (uc *DocumentoUseCase) Generar(ctx context.Context, empresaID, plantillaID, generadoPor string) (*dto.DocumentoRender, error) {
	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}

	plantilla, err := uc.plantillaRepo.GetByID(plantillaID)
	if err != nil {
		return nil, err
	}
	if plantilla == nil {
		return nil, domain.ErrPlantillaNotFound
	}

	tpl, err := uc.store.Read(ctx, plantilla.Ruta)
	if err != nil {
		if errors.Is(err, storage.ErrNotExists) {
			return nil, domain.ErrPlantillaMissing
		}
		return nil, err
	}

	out, mime, err := uc.renderer.Render(tpl, plantilla.Tipo, empresa.Placeholders())
	if err != nil {
		uc.metrics.ErroresRender.Inc()
		uc.log.Error().Err(err).Str("plantilla", plantilla.Nombre).Str("empresa", empresa.Nombre).Msg("error al renderizar documento")
		return nil, err
	}

	nombre := fmt.Sprintf("%s - %s.%s", empresa.Nombre, plantilla.Nombre, plantilla.Tipo)
	d := &entity.DocumentoGenerado{
		ID:              uuid.New().String(),
		NombreDocumento: nombre,
		PlantillaID:     plantillaID,
		EmpresaID:       empresaID,
		GeneradoPor:     generadoPor,
		FechaGeneracion: time.Now(),
	}
	if err := uc.documentoRepo.Create(d); err != nil {
		return nil, err
	}
	uc.metrics.DocumentosGenerados.WithLabelValues(plantilla.Tipo).Inc()
	uc.log.Info().Str("documento", nombre).Str("generado_por", generadoPor).Msg("documento generado")

	return &dto.DocumentoRender{Nombre: nombre, MimeType: mime, Data: out}, nil
}

// Historial devuelve los documentos generados, más recientes primero. Con
// propios=true filtra a los del usuario autenticado.
func (uc *DocumentoUseCase) Historial(userID string, propios bool) ([]dto.HistorialResponse, error) {
	filtro := ""
	if propios {
		filtro = userID
	}
	list, err := uc.documentoRepo.Historial(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistorialResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.HistorialResponse{
			ID:              d.ID,
			Nombre:          d.Nombre,
			FechaGeneracion: d.FechaGeneracion,
			Empresa:         d.Empresa,
			Usuario:         d.Usuario,
		})
	}
	return items, nil
}

// Eliminar borra un registro del historial por ID.
func (uc *DocumentoUseCase) Eliminar(id string) error {
	return uc.documentoRepo.Delete(id)
}
