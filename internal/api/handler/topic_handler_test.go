package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

type stubTopicService struct {
	createFn func(ctx context.Context, name string, image *ports.UploadFile) (*domain.Topic, error)
}

func (s *stubTopicService) CreateTopic(ctx context.Context, name string, image *ports.UploadFile) (*domain.Topic, error) {
	return s.createFn(ctx, name, image)
}

func (s *stubTopicService) ListTopics(context.Context) ([]domain.Topic, error) { return nil, nil }

func (s *stubTopicService) UpdateTopic(context.Context, int, string, *ports.UploadFile) (*domain.Topic, error) {
	return nil, nil
}

func (s *stubTopicService) DeleteTopic(context.Context, int) error { return nil }

type formPart struct {
	field, filename, contentType, content string
}

func multipartContext(t *testing.T, target string, values map[string]string, files ...formPart) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := io.WriteString(part, f.content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestTopicHandler_Create(t *testing.T) {
	stub := &stubTopicService{
		createFn: func(_ context.Context, name string, image *ports.UploadFile) (*domain.Topic, error) {
			if name != "Go" {
				t.Fatalf("unexpected name %q", name)
			}
			if image == nil || image.Name != "cover.png" || image.ContentType != "image/png" {
				t.Fatalf("unexpected image: %+v", image)
			}
			body, _ := io.ReadAll(image.Body)
			if string(body) != "png-bytes" {
				t.Fatalf("unexpected image body %q", body)
			}
			return &domain.Topic{ID: 1, Name: name, TopicImage: "https://cdn/cover.png"}, nil
		},
	}
	c, rec := multipartContext(t, "/api/topic/create", map[string]string{"name": "Go"},
		formPart{"topicImage", "cover.png", "image/png", "png-bytes"})

	if err := NewTopicHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["message"] != "Successfully created topic" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestTopicHandler_Create_WithoutFile(t *testing.T) {
	stub := &stubTopicService{
		createFn: func(_ context.Context, _ string, image *ports.UploadFile) (*domain.Topic, error) {
			if image != nil {
				t.Fatalf("expected no image")
			}
			return nil, domain.NewError(domain.KindValidation, "Please add all fields")
		},
	}
	c, _ := multipartContext(t, "/api/topic/create", map[string]string{"name": "Go"})

	err := NewTopicHandler(stub).Create(c)
	expectKind(t, err, http.StatusBadRequest, "Please add all fields")
}

func TestTopicHandler_Create_RejectsUploads(t *testing.T) {
	noCall := &stubTopicService{
		createFn: func(context.Context, string, *ports.UploadFile) (*domain.Topic, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}

	cases := map[string]struct {
		files []formPart
		msg   string
	}{
		"not an image": {
			files: []formPart{{"topicImage", "notes.txt", "text/plain", "x"}},
			msg:   "Only image files are allowed!",
		},
		"unsupported image type": {
			files: []formPart{{"topicImage", "cover.bmp", "image/bmp", "x"}},
			msg:   "Invalid file type. Only JPEG, JPG, PNG, GIF, and WEBP files are allowed!",
		},
		"two files": {
			files: []formPart{
				{"topicImage", "a.png", "image/png", "x"},
				{"topicImage", "b.png", "image/png", "y"},
			},
			msg: "Too many files. Only one file is allowed",
		},
		"wrong field": {
			files: []formPart{{"articleImage", "a.png", "image/png", "x"}},
			msg:   "Unexpected field",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := multipartContext(t, "/api/topic/create", map[string]string{"name": "Go"}, tc.files...)
			err := NewTopicHandler(noCall).Create(c)
			expectKind(t, err, http.StatusBadRequest, tc.msg)
		})
	}
}

func TestMediaKind_AcceptsVideoByExtension(t *testing.T) {
	if !videoMedia.accepts("lesson.MP4", "video/quicktime") {
		t.Fatalf("expected mp4 to be accepted")
	}
	if videoMedia.accepts("lesson.exe", "video/mp4") {
		t.Fatalf("expected exe to be rejected")
	}
}
