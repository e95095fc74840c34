package domain

import "errors"

// Sentinel errors surfaced by repositories and services. Callers match them
// with errors.Is; the HTTP layer decides presentation.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	ErrImageRequired    = errors.New("image file is required")
	ErrInvalidImageType = errors.New("content type is not an image")
)
