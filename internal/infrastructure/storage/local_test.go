package storage_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gpec-api/internal/infrastructure/storage"
)

func newLocal(t *testing.T) *storage.LocalStore {
	t.Helper()
	s, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLocalStore_SaveReadDelete(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()
	contenido := []byte("contenido de plantilla")

	require.NoError(t, s.Save(ctx, "abc_plantilla.docx", bytes.NewReader(contenido), int64(len(contenido)), "application/octet-stream"))

	ok, err := s.Exists(ctx, "abc_plantilla.docx")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := s.Read(ctx, "abc_plantilla.docx")
	require.NoError(t, err)
	assert.Equal(t, contenido, data)

	require.NoError(t, s.Delete(ctx, "abc_plantilla.docx"))
	ok, err = s.Exists(ctx, "abc_plantilla.docx")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStore_ReadInexistente(t *testing.T) {
	s := newLocal(t)
	_, err := s.Read(context.Background(), "no-existe.docx")
	assert.ErrorIs(t, err, storage.ErrNotExists)
}

// Borrar una clave inexistente no es error.
func TestLocalStore_DeleteInexistente(t *testing.T) {
	s := newLocal(t)
	assert.NoError(t, s.Delete(context.Background(), "no-existe.docx"))
}

// Las claves no pueden escapar de la carpeta de uploads.
func TestLocalStore_ClaveConEscape(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	err := s.Save(ctx, "../fuera.docx", bytes.NewReader([]byte("x")), 1, "")
	assert.Error(t, err)

	_, err = s.Read(ctx, "../../etc/passwd")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotExists)
}
