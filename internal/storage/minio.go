package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"shipdocs/internal/config"
)

// minioStorage implements Storage against an S3-compatible backend (MinIO,
// AWS S3, etc.), for deployments where a shared object store replaces the
// local content directory. It is safe for concurrent use.
type minioStorage struct {
	client    *minio.Client
	bucket    string
	nowMillis func() int64
}

// NewMinIO creates an object-store-backed Storage. It validates connectivity
// and ensures the bucket exists, creating it if missing.
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &minioStorage{
		client:    cli,
		bucket:    cfg.Bucket,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// Save uploads the content under the same generated-name policy as local
// storage, keyed beneath uploads/documents_gallery/ so stored paths stay
// interchangeable between backends.
func (m *minioStorage) Save(ctx context.Context, originalName string, r io.Reader, size int64) (string, error) {
	key := "uploads/documents_gallery/" + GeneratedName(originalName, m.nowMillis())

	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		UserMetadata: map[string]string{"original-filename": originalName},
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return key, nil
}
