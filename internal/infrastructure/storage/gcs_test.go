package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type memWriter struct {
	bytes.Buffer
	ctx      context.Context
	closed   bool
	closeErr error
}

func (w *memWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func newMemUploader(w *memWriter, gotKey *string) *GCSUploader {
	return &GCSUploader{
		bucket: "learnhub-media",
		log:    zerolog.Nop(),
		newWriter: func(ctx context.Context, key, _ string) io.WriteCloser {
			*gotKey = key
			w.ctx = ctx
			return w
		},
	}
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("topics", "Cover.PNG")
	require.True(t, strings.HasPrefix(key, "topics/"))
	require.True(t, strings.HasSuffix(key, ".png"))
	require.Len(t, key, len("topics/")+36+len(".png"))
	require.NotEqual(t, key, ObjectKey("topics", "Cover.PNG"))
}

func TestPublicURL(t *testing.T) {
	require.Equal(t,
		"https://storage.googleapis.com/learnhub-media/videos/a.mp4",
		PublicURL("learnhub-media", "videos/a.mp4"))
}

func TestUpload_WritesObject(t *testing.T) {
	w := &memWriter{}
	var key string
	u := newMemUploader(w, &key)

	obj, err := u.Upload(context.Background(), "articles", &ports.UploadFile{
		Name: "a.jpg", ContentType: "image/jpeg", Size: 5, Body: strings.NewReader("hello"),
	})
	require.NoError(t, err)
	require.True(t, w.closed)
	require.Equal(t, "hello", w.String())
	require.Equal(t, key, obj.Key)
	require.Equal(t, PublicURL("learnhub-media", key), obj.URL)
}

func TestUpload_CloseError(t *testing.T) {
	w := &memWriter{closeErr: errors.New("403 forbidden")}
	var key string
	u := newMemUploader(w, &key)

	_, err := u.Upload(context.Background(), "topics", &ports.UploadFile{Name: "a.png", Body: strings.NewReader("x")})
	require.Error(t, err)
}

func TestUpload_NotConfigured(t *testing.T) {
	u, err := NewGCSUploader(context.Background(), Config{}, zerolog.Nop())
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "topics", &ports.UploadFile{Name: "a.png", Body: strings.NewReader("x")})
	require.ErrorIs(t, err, ErrNotConfigured)
	require.NoError(t, u.Close())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestUpload_ReadErrorAbortsWithoutCommit(t *testing.T) {
	w := &memWriter{}
	var key string
	u := newMemUploader(w, &key)

	_, err := u.Upload(context.Background(), "videos", &ports.UploadFile{Name: "a.mp4", Body: failingReader{}})
	require.ErrorContains(t, err, "connection reset")
	require.False(t, w.closed, "a failed copy must not finalize the object")
	require.ErrorIs(t, w.ctx.Err(), context.Canceled)
}
