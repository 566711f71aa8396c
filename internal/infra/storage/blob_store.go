// Package storage persists product images through gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers: local filesystem for development, GCS for production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"

	"greeniecart/config"
	"greeniecart/internal/domain/service"
)

// blobStore is a concrete implementation of the ObjectStore interface backed
// by a gocloud.dev bucket.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StoreParams holds dependencies for the blob store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and wires its lifetime into the fx
// lifecycle.
func NewBlobStore(params StoreParams) (service.ObjectStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Blob store initialized", slog.String("bucket", cfg.BucketURL))

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload writes the object and returns its public URL.
func (s *blobStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Abort the write so no partial object lands in the bucket.
		_ = writer.Close()

		return "", errors.Wrapf(err, "write object %s", key)
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "close writer for %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object. Missing objects are not an error so retried
// cleanups stay idempotent.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrapf(err, "stat object %s", key)
	}
	if !exists {
		return nil
	}

	return errors.Wrapf(s.bucket.Delete(ctx, key), "delete object %s", key)
}
