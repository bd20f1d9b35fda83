package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/careercharma/learnhub-api/internal/core/ports"
)

const publicBaseURL = "https://storage.googleapis.com"

// ErrNotConfigured is returned by uploads when no bucket is set.
var ErrNotConfigured = errors.New("object storage is not configured")

type Config struct {
	Bucket          string
	CredentialsFile string
}

type writerFunc func(ctx context.Context, key, contentType string) io.WriteCloser

// GCSUploader stores media in a Google Cloud Storage bucket as publicly
// readable objects.
type GCSUploader struct {
	bucket    string
	client    *gcs.Client
	newWriter writerFunc
	log       zerolog.Logger
}

// NewGCSUploader opens a storage client. With an empty bucket the uploader
// is returned unconfigured and every upload fails with ErrNotConfigured.
func NewGCSUploader(ctx context.Context, cfg Config, log zerolog.Logger) (*GCSUploader, error) {
	u := &GCSUploader{bucket: cfg.Bucket, log: log}
	if cfg.Bucket == "" {
		log.Warn().Msg("STORAGE_BUCKET not set, uploads are disabled")
		return u, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	u.client = client
	u.newWriter = func(ctx context.Context, key, contentType string) io.WriteCloser {
		w := client.Bucket(cfg.Bucket).Object(key).NewWriter(ctx)
		w.ContentType = contentType
		w.PredefinedACL = "publicRead"
		return w
	}
	return u, nil
}

// Upload writes f to {folder}/{uuid}{ext} and returns its public URL.
func (u *GCSUploader) Upload(ctx context.Context, folder string, f *ports.UploadFile) (ports.StoredObject, error) {
	if u.newWriter == nil {
		return ports.StoredObject{}, ErrNotConfigured
	}

	key := ObjectKey(folder, f.Name)
	// Close commits the object; cancelling the writer context discards it.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w := u.newWriter(wctx, key, f.ContentType)
	if _, err := io.Copy(w, f.Body); err != nil {
		cancel()
		return ports.StoredObject{}, fmt.Errorf("upload %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return ports.StoredObject{}, fmt.Errorf("upload %s: %w", key, err)
	}

	u.log.Debug().Str("key", key).Int64("size", f.Size).Msg("object uploaded")
	return ports.StoredObject{URL: PublicURL(u.bucket, key), Key: key}, nil
}

func (u *GCSUploader) Close() error {
	if u.client == nil {
		return nil
	}
	return u.client.Close()
}

// ObjectKey names a new object under folder, keeping the original extension.
func ObjectKey(folder, filename string) string {
	return path.Join(folder, uuid.NewString()+strings.ToLower(filepath.Ext(filename)))
}

func PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", publicBaseURL, bucket, key)
}
