package dto

import "time"

// CreateEmpresaRequest alta de empresa. Los 22 campos de negocio son
// obligatorios: todos son fuentes de sustitución para las plantillas.
type CreateEmpresaRequest struct {
	Nombre             string `json:"nombre"`
	CodigoCIIU         string `json:"codigo_ciiu"`
	ActividadEconomica string `json:"actividad_economica"`
	NumeroEmpleados    string `json:"numero_empleados"`
	Direccion          string `json:"direccion"`
	Correo             string `json:"correo"`
	Telefono           string `json:"telefono"`
	NIT                string `json:"nit"`
	RepresentanteLegal string `json:"representante_legal"`
	Ciudad             string `json:"ciudad"`
	DigitoV            string `json:"digito_v"`
	Diseno             string `json:"diseno"`
	ResponsablePSB     string `json:"responsable_psb"`
	Conjugacion        string `json:"conjugacion"`
	ConjugacionII      string `json:"conjugacion_ii"`
	Gentilicio         string `json:"gentilicio"`
	Dato21217          string `json:"dato_2121_7"`
	TelefonoSST        string `json:"telefono_sst"`
	CorreoSST          string `json:"correo_sst"`
	NR                 string `json:"nr"`
	MatriculaCC        string `json:"matricula_cc"`
	Tipo               string `json:"tipo"`
	TipoEmpresa        string `json:"tipo_empresa"`
}

// UpdateEmpresaRequest actualización parcial con campos permitidos
// explícitos: las claves desconocidas se rechazan en el handler en lugar de
// pasar de largo hacia el UPDATE.
type UpdateEmpresaRequest struct {
	Nombre             *string `json:"nombre"`
	CodigoCIIU         *string `json:"codigo_ciiu"`
	ActividadEconomica *string `json:"actividad_economica"`
	NumeroEmpleados    *string `json:"numero_empleados"`
	Direccion          *string `json:"direccion"`
	Correo             *string `json:"correo"`
	Telefono           *string `json:"telefono"`
	NIT                *string `json:"nit"`
	RepresentanteLegal *string `json:"representante_legal"`
	Ciudad             *string `json:"ciudad"`
	DigitoV            *string `json:"digito_v"`
	Diseno             *string `json:"diseno"`
	ResponsablePSB     *string `json:"responsable_psb"`
	Conjugacion        *string `json:"conjugacion"`
	ConjugacionII      *string `json:"conjugacion_ii"`
	Gentilicio         *string `json:"gentilicio"`
	Dato21217          *string `json:"dato_2121_7"`
	TelefonoSST        *string `json:"telefono_sst"`
	CorreoSST          *string `json:"correo_sst"`
	NR                 *string `json:"nr"`
	MatriculaCC        *string `json:"matricula_cc"`
	Tipo               *string `json:"tipo"`
	TipoEmpresa        *string `json:"tipo_empresa"`
}

// EmpresaResponse representación de salida de una empresa.
type EmpresaResponse struct {
	ID                 string    `json:"id"`
	Nombre             string    `json:"nombre"`
	CodigoCIIU         string    `json:"codigo_ciiu"`
	ActividadEconomica string    `json:"actividad_economica"`
	NumeroEmpleados    string    `json:"numero_empleados"`
	Direccion          string    `json:"direccion"`
	Correo             string    `json:"correo"`
	Telefono           string    `json:"telefono"`
	NIT                string    `json:"nit"`
	RepresentanteLegal string    `json:"representante_legal"`
	Ciudad             string    `json:"ciudad"`
	DigitoV            string    `json:"digito_v"`
	Diseno             string    `json:"diseno"`
	ResponsablePSB     string    `json:"responsable_psb"`
	Conjugacion        string    `json:"conjugacion"`
	ConjugacionII      string    `json:"conjugacion_ii"`
	Gentilicio         string    `json:"gentilicio"`
	Dato21217          string    `json:"dato_2121_7"`
	TelefonoSST        string    `json:"telefono_sst"`
	CorreoSST          string    `json:"correo_sst"`
	NR                 string    `json:"nr"`
	MatriculaCC        string    `json:"matricula_cc"`
	Tipo               string    `json:"tipo"`
	TipoEmpresa        string    `json:"tipo_empresa"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
