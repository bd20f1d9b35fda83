package handler

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

// MaxUploadSize caps a single uploaded file.
const MaxUploadSize = 50 << 20

type mediaKind struct {
	mimePrefix string
	types      []string
	wrongMime  string
	wrongType  string
}

var (
	imageMedia = mediaKind{
		mimePrefix: "image/",
		types:      []string{"jpeg", "jpg", "png", "gif", "webp"},
		wrongMime:  "Only image files are allowed!",
		wrongType:  "Invalid file type. Only JPEG, JPG, PNG, GIF, and WEBP files are allowed!",
	}
	videoMedia = mediaKind{
		mimePrefix: "video/",
		types:      []string{"mp4", "avi", "mov", "wmv", "flv", "mkv", "webm"},
		wrongMime:  "Only video files are allowed!",
		wrongType:  "Invalid file type. Only MP4, AVI, MOV, WMV, FLV, MKV, and WEBM files are allowed!",
	}
)

// accepts checks the extension, and for images the mime subtype, against
// the allowed types.
func (k mediaKind) accepts(filename, contentType string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if !containsAny(ext, k.types) {
		return false
	}
	if k.mimePrefix == imageMedia.mimePrefix {
		return containsAny(strings.ToLower(contentType), k.types)
	}
	return true
}

func containsAny(s string, subs []string) bool {
	if s == "" {
		return false
	}
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// formFile returns the single file uploaded under field, or nil when the
// request carries no file. Callers must closeUpload the result.
func formFile(c echo.Context, field string, kind mediaKind) (*ports.UploadFile, error) {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domain.Wrap(domain.KindValidation, err, "invalid multipart form")
	}

	total := 0
	for _, files := range form.File {
		total += len(files)
	}
	if total > 1 {
		return nil, domain.NewError(domain.KindValidation, "Too many files. Only one file is allowed")
	}

	files := form.File[field]
	if len(files) == 0 {
		if total == 1 {
			return nil, domain.NewError(domain.KindValidation, "Unexpected field")
		}
		return nil, nil
	}

	fh := files[0]
	if fh.Size > MaxUploadSize {
		return nil, domain.NewError(domain.KindValidation, "File size too large. Maximum size is 50MB")
	}
	contentType := fh.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, kind.mimePrefix) {
		return nil, domain.NewError(domain.KindValidation, kind.wrongMime)
	}
	if !kind.accepts(fh.Filename, contentType) {
		return nil, domain.NewError(domain.KindValidation, kind.wrongType)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, domain.Wrap(domain.KindInternal, err, "Error processing file upload")
	}
	return &ports.UploadFile{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	}, nil
}

func closeUpload(f *ports.UploadFile) {
	if f == nil {
		return
	}
	if cl, ok := f.Body.(io.Closer); ok {
		_ = cl.Close()
	}
}
