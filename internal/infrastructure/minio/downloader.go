package minio

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	minioRepository "pixline/internal/domain/repository/minio"
)

type Downloader struct {
	minioClient *minio.Client
	cfg         *StoreConfig
}

func NewDownloader(minioClient *minio.Client, cfg *StoreConfig) *Downloader {
	return &Downloader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// GetObject streams the blob stored under key. The stat call forces the
// not-found error to surface here instead of on the first read.
func (d *Downloader) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := d.minioClient.GetObject(ctx, d.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()

		return nil, translateNotFound(err, key)
	}

	return obj, nil
}

func (d *Downloader) StatObject(ctx context.Context, key string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(d.cfg.Timeout)*time.Millisecond)
	defer cancel()

	info, err := d.minioClient.StatObject(ctx, d.cfg.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return 0, translateNotFound(err, key)
	}

	return info.Size, nil
}

func translateNotFound(err error, key string) error {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
		return minioRepository.MissingObjectError{Key: key}
	}

	return err
}
