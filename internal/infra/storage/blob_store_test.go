package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
)

func newTestStore(t *testing.T) *blobStore {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "file://"+t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: "https://cdn.greeniecart.app",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBlobStore_UploadAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "products/abc/1_leaf.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.greeniecart.app/products/abc/1_leaf.png", url)

	data, err := store.bucket.ReadAll(ctx, "products/abc/1_leaf.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(ctx, "products/abc/1_leaf.png"))

	exists, err := store.bucket.Exists(ctx, "products/abc/1_leaf.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStore_DeleteMissingKeyIsNoop(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "products/never/uploaded.png"))
}
