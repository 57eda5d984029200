package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/gpec-api/pkg/config"
)

var _ Store = (*MinioStore)(nil)

// MinioStore backend S3-compatible (MinIO, S3, Spaces) para las plantillas.
type MinioStore struct {
	mc     *minio.Client
	bucket string
}

// NewMinioStore crea el cliente y asegura que el bucket exista.
func NewMinioStore(ctx context.Context, cfg config.StorageConfig) (*MinioStore, error) {
	if cfg.S3Endpoint == "" {
		return nil, fmt.Errorf("minio: endpoint requerido")
	}
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil, fmt.Errorf("minio: access key y secret key requeridos")
	}

	mc, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: crear cliente: %w", err)
	}

	s := &MinioStore{mc: mc, bucket: cfg.S3Bucket}
	exists, err := mc.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("minio: verificar bucket: %w", err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio: crear bucket: %w", err)
		}
	}
	return s, nil
}

func (s *MinioStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.mc.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("minio: subir %s: %w", key, err)
	}
	return nil
}

func (s *MinioStore) Read(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.mc.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio: obtener %s: %w", key, err)
	}
	defer obj.Close()
	// GetObject es perezoso: el primer Read materializa el error NoSuchKey.
	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotExists
		}
		return nil, fmt.Errorf("minio: leer %s: %w", key, err)
	}
	return data, nil
}

func (s *MinioStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.mc.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *MinioStore) Delete(ctx context.Context, key string) error {
	return s.mc.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
