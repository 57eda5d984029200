package dto

import "time"

// DocumentoRender resultado de un render: el binario listo para descargar.
type DocumentoRender struct {
	Nombre   string // "<empresa> - <plantilla>.<ext>"
	MimeType string
	Data     []byte
}

// HistorialResponse fila del historial de documentos generados.
type HistorialResponse struct {
	ID              string    `json:"id"`
	Nombre          string    `json:"nombre"`
	FechaGeneracion time.Time `json:"fecha_generacion"`
	Empresa         string    `json:"empresa"`
	Usuario         string    `json:"usuario"`
}
