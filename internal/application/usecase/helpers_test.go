package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/infrastructure/storage"
	"github.com/jhoicas/gpec-api/pkg/logger"
	"github.com/jhoicas/gpec-api/pkg/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia y almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmpresaRepo struct {
	byID map[string]*entity.Empresa
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{byID: map[string]*entity.Empresa{}}
}

func (r *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	return r.byID[id], nil
}

func (r *fakeEmpresaRepo) GetByNIT(nit string) (*entity.Empresa, error) {
	for _, e := range r.byID {
		if e.NIT == nit {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmpresaRepo) List() ([]*entity.Empresa, error) {
	out := make([]*entity.Empresa, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmpresaRepo) Update(e *entity.Empresa) error {
	if _, ok := r.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmpresaRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeUsuarioRepo struct {
	byID map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{byID: map[string]*entity.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.byID[id], nil
}

func (r *fakeUsuarioRepo) GetByCorreo(correo string) (*entity.Usuario, error) {
	for _, u := range r.byID {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) UpdateEstado(id, estado string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Estado = estado
	return nil
}

func (r *fakeUsuarioRepo) UpdateContrasena(id, hash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ContrasenaHash = hash
	return nil
}

func (r *fakeUsuarioRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakePlantillaRepo struct {
	byID map[string]*entity.Plantilla
}

func newFakePlantillaRepo() *fakePlantillaRepo {
	return &fakePlantillaRepo{byID: map[string]*entity.Plantilla{}}
}

func (r *fakePlantillaRepo) Create(p *entity.Plantilla) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakePlantillaRepo) GetByID(id string) (*entity.Plantilla, error) {
	return r.byID[id], nil
}

func (r *fakePlantillaRepo) List() ([]*entity.PlantillaConCreador, error) {
	out := make([]*entity.PlantillaConCreador, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, &entity.PlantillaConCreador{Plantilla: *p})
	}
	return out, nil
}

func (r *fakePlantillaRepo) ExistsByNombre(nombre string) (bool, error) {
	for _, p := range r.byID {
		if p.Nombre == nombre {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePlantillaRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeDocumentoRepo struct {
	rows []*entity.DocumentoGenerado
}

func (r *fakeDocumentoRepo) Create(d *entity.DocumentoGenerado) error {
	r.rows = append(r.rows, d)
	return nil
}

func (r *fakeDocumentoRepo) Historial(generadoPor string) ([]*entity.DocumentoHistorial, error) {
	var out []*entity.DocumentoHistorial
	for _, d := range r.rows {
		if generadoPor != "" && d.GeneradoPor != generadoPor {
			continue
		}
		out = append(out, &entity.DocumentoHistorial{
			ID:              d.ID,
			Nombre:          d.NombreDocumento,
			FechaGeneracion: d.FechaGeneracion,
		})
	}
	return out, nil
}

func (r *fakeDocumentoRepo) Delete(id string) error {
	for i, d := range r.rows {
		if d.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeStore almacenamiento en memoria.
type fakeStore struct {
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *fakeStore) Read(_ context.Context, key string) ([]byte, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrNotExists
	}
	return data, nil
}

func (s *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.objects[key]
	return ok, nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Otros helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func testMetrics() *metrics.Metrics {
	return metrics.New()
}

// minimalDocx contenedor .docx mínimo con marcadores en el cuerpo.
func minimalDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + body + `</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// updateReq alias para armar actualizaciones parciales de empresa sin repetir
// el literal del DTO en cada test.
type updateReq = dto.UpdateEmpresaRequest

func dtoUpdate(fn func(*updateReq)) updateReq {
	var u updateReq
	fn(&u)
	return u
}

// empresaCompleta petición de alta con los 22 campos de negocio llenos.
func empresaCompleta() dto.CreateEmpresaRequest {
	return dto.CreateEmpresaRequest{
		Nombre:             "Acme SAS",
		CodigoCIIU:         "6201",
		ActividadEconomica: "Desarrollo de software",
		NumeroEmpleados:    "10",
		Direccion:          "Calle 1 # 2-3",
		Correo:             "contacto@acme.co",
		Telefono:           "3000000000",
		NIT:                "900123456",
		RepresentanteLegal: "Ana Gómez",
		Ciudad:             "Bogotá",
		DigitoV:            "7",
		Diseno:             "estándar",
		ResponsablePSB:     "Luis Ruiz",
		Conjugacion:        "la",
		ConjugacionII:      "de la",
		Gentilicio:         "bogotana",
		Dato21217:          "N/A",
		TelefonoSST:        "3011111111",
		CorreoSST:          "sst@acme.co",
		NR:                 "NR-01",
		MatriculaCC:        "M-123",
		Tipo:               "privada",
		TipoEmpresa:        "Comercial",
	}
}
