package usecase

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/domain/repository"
)

var soloDigitos = regexp.MustCompile(`^\d+$`)

// EmpresaUseCase reglas de negocio para empresas.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso con el puerto de persistencia.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create crea una empresa. Los 22 campos son obligatorios (ErrInvalidInput),
// codigo_ciiu y numero_empleados deben ser solo dígitos (ErrInvalidFormat) y
// el NIT debe ser único (ErrNITAlreadyExists).
func (uc *EmpresaUseCase) Create(in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	requeridos := []string{
		in.Nombre, in.CodigoCIIU, in.ActividadEconomica, in.NumeroEmpleados,
		in.Direccion, in.Correo, in.Telefono, in.NIT, in.RepresentanteLegal,
		in.Ciudad, in.DigitoV, in.Diseno, in.ResponsablePSB, in.Conjugacion,
		in.ConjugacionII, in.Gentilicio, in.Dato21217, in.TelefonoSST,
		in.CorreoSST, in.NR, in.MatriculaCC, in.Tipo, in.TipoEmpresa,
	}
	for _, v := range requeridos {
		if v == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	if !soloDigitos.MatchString(in.CodigoCIIU) || !soloDigitos.MatchString(in.NumeroEmpleados) {
		return nil, domain.ErrInvalidFormat
	}
	existing, err := uc.repo.GetByNIT(in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrNITAlreadyExists
	}

	now := time.Now()
	e := &entity.Empresa{
		ID:                 uuid.New().String(),
		Nombre:             in.Nombre,
		CodigoCIIU:         in.CodigoCIIU,
		ActividadEconomica: in.ActividadEconomica,
		NumeroEmpleados:    in.NumeroEmpleados,
		Direccion:          in.Direccion,
		Correo:             in.Correo,
		Telefono:           in.Telefono,
		NIT:                in.NIT,
		RepresentanteLegal: in.RepresentanteLegal,
		Ciudad:             in.Ciudad,
		DigitoV:            in.DigitoV,
		Diseno:             in.Diseno,
		ResponsablePSB:     in.ResponsablePSB,
		Conjugacion:        in.Conjugacion,
		ConjugacionII:      in.ConjugacionII,
		Gentilicio:         in.Gentilicio,
		Dato21217:          in.Dato21217,
		TelefonoSST:        in.TelefonoSST,
		CorreoSST:          in.CorreoSST,
		NR:                 in.NR,
		MatriculaCC:        in.MatriculaCC,
		Tipo:               in.Tipo,
		TipoEmpresa:        in.TipoEmpresa,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return entityToEmpresaResponse(e), nil
}

// GetByID obtiene una empresa por ID. (nil, nil) si no existe.
func (uc *EmpresaUseCase) GetByID(id string) (*dto.EmpresaResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return entityToEmpresaResponse(e), nil
}

// List devuelve todas las empresas.
func (uc *EmpresaUseCase) List() ([]dto.EmpresaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEmpresaResponse(e))
	}
	return items, nil
}

// Update aplica un merge parcial de campos permitidos. Si cambia el NIT,
// vuelve a comprobar unicidad contra las demás filas antes de aplicar.
func (uc *EmpresaUseCase) Update(id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}

	if in.NIT != nil && *in.NIT != e.NIT {
		otra, err := uc.repo.GetByNIT(*in.NIT)
		if err != nil {
			return nil, err
		}
		if otra != nil && otra.ID != id {
			return nil, domain.ErrNITAlreadyExists
		}
	}
	if in.CodigoCIIU != nil && !soloDigitos.MatchString(*in.CodigoCIIU) {
		return nil, domain.ErrInvalidFormat
	}
	if in.NumeroEmpleados != nil && !soloDigitos.MatchString(*in.NumeroEmpleados) {
		return nil, domain.ErrInvalidFormat
	}

	aplicar := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	aplicar(&e.Nombre, in.Nombre)
	aplicar(&e.CodigoCIIU, in.CodigoCIIU)
	aplicar(&e.ActividadEconomica, in.ActividadEconomica)
	aplicar(&e.NumeroEmpleados, in.NumeroEmpleados)
	aplicar(&e.Direccion, in.Direccion)
	aplicar(&e.Correo, in.Correo)
	aplicar(&e.Telefono, in.Telefono)
	aplicar(&e.NIT, in.NIT)
	aplicar(&e.RepresentanteLegal, in.RepresentanteLegal)
	aplicar(&e.Ciudad, in.Ciudad)
	aplicar(&e.DigitoV, in.DigitoV)
	aplicar(&e.Diseno, in.Diseno)
	aplicar(&e.ResponsablePSB, in.ResponsablePSB)
	aplicar(&e.Conjugacion, in.Conjugacion)
	aplicar(&e.ConjugacionII, in.ConjugacionII)
	aplicar(&e.Gentilicio, in.Gentilicio)
	aplicar(&e.Dato21217, in.Dato21217)
	aplicar(&e.TelefonoSST, in.TelefonoSST)
	aplicar(&e.CorreoSST, in.CorreoSST)
	aplicar(&e.NR, in.NR)
	aplicar(&e.MatriculaCC, in.MatriculaCC)
	aplicar(&e.Tipo, in.Tipo)
	aplicar(&e.TipoEmpresa, in.TipoEmpresa)
	e.UpdatedAt = time.Now()

	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return entityToEmpresaResponse(e), nil
}

// Delete elimina una empresa por ID. ErrNotFound si no existe.
func (uc *EmpresaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func entityToEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:                 e.ID,
		Nombre:             e.Nombre,
		CodigoCIIU:         e.CodigoCIIU,
		ActividadEconomica: e.ActividadEconomica,
		NumeroEmpleados:    e.NumeroEmpleados,
		Direccion:          e.Direccion,
		Correo:             e.Correo,
		Telefono:           e.Telefono,
		NIT:                e.NIT,
		RepresentanteLegal: e.RepresentanteLegal,
		Ciudad:             e.Ciudad,
		DigitoV:            e.DigitoV,
		Diseno:             e.Diseno,
		ResponsablePSB:     e.ResponsablePSB,
		Conjugacion:        e.Conjugacion,
		ConjugacionII:      e.ConjugacionII,
		Gentilicio:         e.Gentilicio,
		Dato21217:          e.Dato21217,
		TelefonoSST:        e.TelefonoSST,
		CorreoSST:          e.CorreoSST,
		NR:                 e.NR,
		MatriculaCC:        e.MatriculaCC,
		Tipo:               e.Tipo,
		TipoEmpresa:        e.TipoEmpresa,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
