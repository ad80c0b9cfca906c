package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioConfig configures the transcript archive bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioUploader mirrors completed per-file output directories into an
// S3-compatible bucket. Upload failures are reported by the caller and
// never affect the batch outcome.
type MinioUploader struct {
	client *minio.Client
	bucket string
	log    *zap.SugaredLogger
}

func NewMinioUploader(ctx context.Context, cfg MinioConfig, log *zap.SugaredLogger) (*MinioUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioUploader{client: client, bucket: cfg.Bucket, log: log}, nil
}

// UploadDir uploads every regular file directly inside localDir under
// <prefix>/ in the bucket.
func (u *MinioUploader) UploadDir(ctx context.Context, localDir, prefix string) error {
	entries, err := os.ReadDir(localDir)
	if err != nil {
		return fmt.Errorf("read %s: %w", localDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		localPath := filepath.Join(localDir, entry.Name())
		objectName := prefix + "/" + entry.Name()

		info, err := u.client.FPutObject(ctx, u.bucket, objectName, localPath, minio.PutObjectOptions{})
		if err != nil {
			return fmt.Errorf("upload %s: %w", localPath, err)
		}
		u.log.Debugw("archived transcript", "object", objectName, "size", info.Size)
	}
	return nil
}
