package entity

import "time"

// DocumentoGenerado registro de historial: un documento renderizado con éxito.
// Solo se inserta después de que el render terminó; nunca antes.
type DocumentoGenerado struct {
	ID              string
	NombreDocumento string
	PlantillaID     string
	EmpresaID       string
	GeneradoPor     string
	FechaGeneracion time.Time
}

// DocumentoHistorial fila de historial con empresa y autor resueltos.
type DocumentoHistorial struct {
	ID              string
	Nombre          string
	FechaGeneracion time.Time
	Empresa         string
	Usuario         string
}
