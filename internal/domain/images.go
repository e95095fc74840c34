package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// ImageService owns post images: validated uploads, reads with a default
// fallback, and the content type stored alongside the post row.
type ImageService struct {
	posts        PostRepository
	storage      ImageStorage
	defaultImage ImagePayload
	logger       *slog.Logger
}

// NewImageService creates an ImageService. defaultImage is served for posts
// that have no stored image.
func NewImageService(
	posts PostRepository,
	storage ImageStorage,
	defaultImage ImagePayload,
	logger *slog.Logger,
) *ImageService {
	return &ImageService{
		posts:        posts,
		storage:      storage,
		defaultImage: defaultImage,
		logger:       logger,
	}
}

// GetOrDefault returns the post's image, or the default image if none has
// been uploaded. Returns ErrPostNotFound if no post has that id.
func (s *ImageService) GetOrDefault(ctx context.Context, postID int64) (ImagePayload, error) {
	contentType, err := s.posts.FindImageContentType(ctx, postID)
	if err != nil {
		return ImagePayload{}, err
	}

	if contentType == "" || !s.storage.Exists(postID) {
		return s.defaultImage, nil
	}

	data, err := s.storage.Read(postID)
	if err != nil {
		return ImagePayload{}, fmt.Errorf("read image for post %d: %w", postID, err)
	}
	return ImagePayload{ContentType: contentType, Data: data}, nil
}

// Update validates and stores a new image for the post, recording its
// content type on the post row. Returns ErrImageRequired for an empty
// upload, ErrInvalidImageType for a non-image content type, and
// ErrPostNotFound if no post has that id.
func (s *ImageService) Update(ctx context.Context, postID int64, contentType string, data []byte) error {
	if len(data) == 0 {
		return ErrImageRequired
	}
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("%w: %q", ErrInvalidImageType, contentType)
	}

	if err := s.posts.UpdateImageContentType(ctx, postID, contentType); err != nil {
		return err
	}

	if err := s.storage.Save(postID, data); err != nil {
		return fmt.Errorf("save image for post %d: %w", postID, err)
	}

	s.logger.Info("post image updated", "post_id", postID, "content_type", contentType, "size", len(data))
	return nil
}
