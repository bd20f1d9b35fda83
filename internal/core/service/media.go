package service

import (
	"context"

	"github.com/careercharma/learnhub-api/internal/api/metrics"
	"github.com/careercharma/learnhub-api/internal/core/ports"
)

// Storage folders per media owner.
const (
	folderTopics   = "topics"
	folderArticles = "articles"
	folderCourses  = "courses"
	folderVideos   = "videos"
)

func upload(ctx context.Context, storage ports.ObjectStorage, folder string, f *ports.UploadFile) (ports.StoredObject, error) {
	obj, err := storage.Upload(ctx, folder, f)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(folder, "error").Inc()
		return ports.StoredObject{}, err
	}
	metrics.UploadsTotal.WithLabelValues(folder, "ok").Inc()
	metrics.UploadBytes.WithLabelValues(folder).Observe(float64(f.Size))
	return obj, nil
}

// firstNonEmpty returns v unless it is empty, in which case fallback.
func firstNonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
