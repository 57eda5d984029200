package entity

import "time"

// Empresa registro de una empresa cliente. Cada campo de negocio es una
// fuente de sustitución para los marcadores [[campo]] de las plantillas,
// con la clave igual al nombre de columna.
type Empresa struct {
	ID                 string
	Nombre             string
	CodigoCIIU         string // solo dígitos
	ActividadEconomica string
	NumeroEmpleados    string // solo dígitos
	Direccion          string
	Correo             string
	Telefono           string
	NIT                string // único
	RepresentanteLegal string
	Ciudad             string
	DigitoV            string
	Diseno             string
	ResponsablePSB     string
	Conjugacion        string
	ConjugacionII      string
	Gentilicio         string
	Dato21217          string
	TelefonoSST        string
	CorreoSST          string
	NR                 string
	MatriculaCC        string
	Tipo               string
	TipoEmpresa        string // Bar, Billar, Parque, Iglesia, Colegio, ...
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Placeholders devuelve el mapa campo -> valor que consume el renderizador.
// Las claves coinciden con los nombres de columna de la tabla empresas.
func (e *Empresa) Placeholders() map[string]string {
	return map[string]string{
		"nombre":              e.Nombre,
		"codigo_ciiu":         e.CodigoCIIU,
		"actividad_economica": e.ActividadEconomica,
		"numero_empleados":    e.NumeroEmpleados,
		"direccion":           e.Direccion,
		"correo":              e.Correo,
		"telefono":            e.Telefono,
		"nit":                 e.NIT,
		"representante_legal": e.RepresentanteLegal,
		"ciudad":              e.Ciudad,
		"digito_v":            e.DigitoV,
		"diseno":              e.Diseno,
		"responsable_psb":     e.ResponsablePSB,
		"conjugacion":         e.Conjugacion,
		"conjugacion_ii":      e.ConjugacionII,
		"gentilicio":          e.Gentilicio,
		"dato_2121_7":         e.Dato21217,
		"telefono_sst":        e.TelefonoSST,
		"correo_sst":          e.CorreoSST,
		"nr":                  e.NR,
		"matricula_cc":        e.MatriculaCC,
		"tipo":                e.Tipo,
		"tipo_empresa":        e.TipoEmpresa,
	}
}
