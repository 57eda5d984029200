package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var _ Store = (*LocalStore)(nil)

// LocalStore guarda las plantillas en disco bajo una carpeta de uploads,
// igual que la carpeta uploads/ del despliegue original.
type LocalStore struct {
	dir string
}

// NewLocalStore crea la carpeta si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear carpeta de uploads %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// path resuelve la clave dentro de la carpeta, rechazando escapes con "..".
func (s *LocalStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.Join(s.dir, key))
	if !strings.HasPrefix(clean, filepath.Clean(s.dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("clave fuera de la carpeta de uploads: %s", key)
	}
	return clean, nil
}

func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("crear %s: %w", p, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("escribir %s: %w", p, err)
	}
	return nil
}

func (s *LocalStore) Read(ctx context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExists
		}
		return nil, fmt.Errorf("leer %s: %w", p, err)
	}
	return data, nil
}

func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	p, err := s.path(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar %s: %w", p, err)
	}
	return nil
}
