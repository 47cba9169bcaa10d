// Package storage persists uploaded product images behind the portable
// gocloud.dev blob API, so the bucket can be a local directory in development
// and GCS or S3 in production without code changes.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobImageStore implements ImageStore on top of a gocloud.dev bucket.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// ImageStoreParams holds dependencies for the image store, injected by Fx.
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStore opens the configured bucket and returns an ImageStore.
func NewBlobImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config.Images
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("images bucket URL is not configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Image bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save writes the image bytes under the given key and returns the public URL.
func (s *blobImageStore) Save(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", key)
	}

	s.logger.Debug("Image stored",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}
