package dto

import "time"

// PlantillaResponse fila de listado de plantillas.
type PlantillaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Tipo        string    `json:"tipo"`
	Ruta        string    `json:"ruta"`
	TipoEmpresa string    `json:"tipo_empresa"`
	CreadoPor   string    `json:"creado_por"`
	CreatedAt   time.Time `json:"created_at"`
}

// RestaurarResponse resultado de restaurar las plantillas base.
type RestaurarResponse struct {
	Restauradas int      `json:"restauradas"`
	Omitidas    []string `json:"omitidas,omitempty"`
}
