package entity

import "time"

// Tipos de plantilla soportados. Cualquier otra extensión se rechaza
// en la subida con ErrUnsupportedFormat.
const (
	TipoDocx = "docx"
	TipoXlsx = "xlsx"
)

// Plantilla archivo Word/Excel con marcadores [[campo]].
type Plantilla struct {
	ID          string
	Nombre      string // nombre visible, sin extensión
	Tipo        string // docx | xlsx
	Ruta        string // clave en el almacenamiento (disco o bucket)
	TipoEmpresa string // tipo de empresa al que aplica, en mayúscula inicial
	CreadoPor   string // FK usuarios.id
	CreatedAt   time.Time
}

// PlantillaConCreador fila de listado con el nombre del creador resuelto.
type PlantillaConCreador struct {
	Plantilla
	CreadorNombre string
}
