package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// CommentService owns the comment lifecycle. Comments are always addressed
// by (postID, commentID) so a comment can never be read or modified through
// the wrong post.
type CommentService struct {
	comments CommentRepository
	logger   *slog.Logger
}

// NewCommentService creates a CommentService over the given repository.
func NewCommentService(comments CommentRepository, logger *slog.Logger) *CommentService {
	return &CommentService{comments: comments, logger: logger}
}

// GetComments returns the post's comments in ascending id order.
func (s *CommentService) GetComments(ctx context.Context, postID int64) ([]Comment, error) {
	return s.comments.FindByPostID(ctx, postID)
}

// GetComment retrieves one comment. Returns ErrCommentNotFound if the
// (postID, commentID) pair does not exist.
func (s *CommentService) GetComment(ctx context.Context, postID, commentID int64) (Comment, error) {
	return s.comments.FindByPostIDAndID(ctx, postID, commentID)
}

// AddComment creates a comment under a post and returns it.
func (s *CommentService) AddComment(ctx context.Context, postID int64, text string) (Comment, error) {
	id, err := s.comments.Insert(ctx, postID, text)
	if err != nil {
		return Comment{}, fmt.Errorf("insert comment for post %d: %w", postID, err)
	}

	s.logger.Info("comment added", "post_id", postID, "comment_id", id)
	return s.getAfterWrite(ctx, postID, id)
}

// UpdateComment replaces a comment's text and returns the updated comment.
// Returns ErrCommentNotFound if the (postID, commentID) pair does not exist.
func (s *CommentService) UpdateComment(ctx context.Context, postID, commentID int64, text string) (Comment, error) {
	if err := s.comments.Update(ctx, postID, commentID, text); err != nil {
		return Comment{}, err
	}
	return s.getAfterWrite(ctx, postID, commentID)
}

// DeleteComment removes a comment. Returns ErrCommentNotFound if the
// (postID, commentID) pair does not exist.
func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID int64) error {
	return s.comments.Delete(ctx, postID, commentID)
}

// getAfterWrite re-reads a comment we just wrote. A miss here is a
// programming error, not user input.
func (s *CommentService) getAfterWrite(ctx context.Context, postID, commentID int64) (Comment, error) {
	c, err := s.comments.FindByPostIDAndID(ctx, postID, commentID)
	if errors.Is(err, ErrCommentNotFound) {
		return Comment{}, fmt.Errorf("comment disappeared after write: postID=%d, commentID=%d", postID, commentID)
	}
	if err != nil {
		return Comment{}, err
	}
	return c, nil
}
