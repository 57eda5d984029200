package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
	"github.com/jhoicas/gpec-api/internal/infrastructure/render"
	"github.com/jhoicas/gpec-api/internal/infrastructure/storage"
	"github.com/jhoicas/gpec-api/pkg/logger"
	"github.com/jhoicas/gpec-api/pkg/metrics"
)

var tituloEs = cases.Title(language.Spanish)

// PlantillaUseCase gestión de plantillas: subida, listado, borrado y
// restauración de las plantillas base.
type PlantillaUseCase struct {
	repo        repository.PlantillaRepository
	store       storage.Store
	defaultsDir string // carpeta local con las plantillas base de fábrica
	metrics     *metrics.Metrics
	log         *logger.Logger
}

func NewPlantillaUseCase(repo repository.PlantillaRepository, store storage.Store, defaultsDir string, m *metrics.Metrics, log *logger.Logger) *PlantillaUseCase {
	return &PlantillaUseCase{repo: repo, store: store, defaultsDir: defaultsDir, metrics: m, log: log}
}

// Upload valida la extensión contra la lista permitida (.docx/.xlsx), guarda
// el binario bajo una clave con prefijo UUID y registra la fila. El nombre
// visible se guarda sin extensión y tipo_empresa se normaliza a mayúscula
// inicial.
func (uc *PlantillaUseCase) Upload(ctx context.Context, fileName, tipoEmpresa, creadoPor string, r io.Reader, size int64) (*dto.PlantillaResponse, error) {
	if fileName == "" || tipoEmpresa == "" {
		return nil, domain.ErrInvalidInput
	}

	tipo, mime, err := tipoPorExtension(fileName)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := id + "_" + filepath.Base(fileName)
	if err := uc.store.Save(ctx, key, r, size, mime); err != nil {
		return nil, fmt.Errorf("guardar plantilla: %w", err)
	}

	p := &entity.Plantilla{
		ID:          id,
		Nombre:      strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)),
		Tipo:        tipo,
		Ruta:        key,
		TipoEmpresa: tituloEs.String(strings.ToLower(strings.TrimSpace(tipoEmpresa))),
		CreadoPor:   creadoPor,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	uc.metrics.PlantillasSubidas.Inc()
	uc.log.Info().Str("plantilla", p.Nombre).Str("tipo", p.Tipo).Msg("plantilla subida")

	return plantillaToResponse(p, creadoPor), nil
}

// List devuelve todas las plantillas con el nombre del creador resuelto.
func (uc *PlantillaUseCase) List() ([]dto.PlantillaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlantillaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *plantillaToResponse(&p.Plantilla, p.CreadorNombre))
	}
	return items, nil
}

// Delete elimina la fila y, en el mejor esfuerzo, el binario. Un fallo al
// borrar el archivo se registra pero no impide borrar el registro.
func (uc *PlantillaUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrPlantillaNotFound
	}
	if err := uc.store.Delete(ctx, p.Ruta); err != nil {
		uc.log.Warn().Err(err).Str("ruta", p.Ruta).Msg("no se pudo borrar el archivo de la plantilla")
	}
	return uc.repo.Delete(id)
}

// Faltantes devuelve las plantillas cuya fila existe pero cuyo binario ya no
// resuelve en el almacenamiento.
func (uc *PlantillaUseCase) Faltantes(ctx context.Context) ([]dto.PlantillaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	var faltantes []dto.PlantillaResponse
	for _, p := range list {
		ok, err := uc.store.Exists(ctx, p.Ruta)
		if err != nil {
			return nil, err
		}
		if !ok {
			faltantes = append(faltantes, *plantillaToResponse(&p.Plantilla, p.CreadorNombre))
		}
	}
	if faltantes == nil {
		faltantes = []dto.PlantillaResponse{}
	}
	return faltantes, nil
}

// Restaurar recorre la carpeta de plantillas base y da de alta las que aún no
// existen por nombre. Es idempotente: las ya registradas se omiten.
func (uc *PlantillaUseCase) Restaurar(ctx context.Context, tipoEmpresa, creadoPor string) (*dto.RestaurarResponse, error) {
	entries, err := os.ReadDir(uc.defaultsDir)
	if err != nil {
		return nil, fmt.Errorf("leer plantillas base: %w", err)
	}

	out := &dto.RestaurarResponse{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, _, err := tipoPorExtension(name); err != nil {
			continue
		}
		nombre := strings.TrimSuffix(name, filepath.Ext(name))
		exists, err := uc.repo.ExistsByNombre(nombre)
		if err != nil {
			return nil, err
		}
		if exists {
			out.Omitidas = append(out.Omitidas, nombre)
			continue
		}

		path := filepath.Join(uc.defaultsDir, name)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("abrir plantilla base %s: %w", name, err)
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}
		if _, err := uc.Upload(ctx, name, tipoEmpresa, creadoPor, f, info.Size()); err != nil {
			f.Close()
			return nil, fmt.Errorf("restaurar plantilla %s: %w", name, err)
		}
		f.Close()
		out.Restauradas++
	}
	return out, nil
}

// tipoPorExtension mapea la extensión del archivo al tipo de plantilla y su
// MIME type. Cualquier otra extensión devuelve ErrUnsupportedFormat.
func tipoPorExtension(fileName string) (tipo, mime string, err error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".docx":
		return entity.TipoDocx, render.MimeDocx, nil
	case ".xlsx":
		return entity.TipoXlsx, render.MimeXlsx, nil
	default:
		return "", "", domain.ErrUnsupportedFormat
	}
}

func plantillaToResponse(p *entity.Plantilla, creador string) *dto.PlantillaResponse {
	return &dto.PlantillaResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Tipo:        p.Tipo,
		Ruta:        p.Ruta,
		TipoEmpresa: p.TipoEmpresa,
		CreadoPor:   creador,
		CreatedAt:   p.CreatedAt,
	}
}
