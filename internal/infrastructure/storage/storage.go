// Package storage abstrae dónde viven los binarios de las plantillas:
// disco local bajo una carpeta de uploads o un bucket compatible S3.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotExists el objeto no existe en el backend.
var ErrNotExists = errors.New("storage: el objeto no existe")

// Store puerto de almacenamiento de archivos de plantilla.
type Store interface {
	// Save guarda el contenido bajo la clave indicada.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Read devuelve el binario completo; ErrNotExists si la clave no resuelve.
	Read(ctx context.Context, key string) ([]byte, error)
	// Exists informa si la clave resuelve a un binario legible.
	Exists(ctx context.Context, key string) (bool, error)
	// Delete elimina el objeto. Borrar una clave inexistente no es error.
	Delete(ctx context.Context, key string) error
}
