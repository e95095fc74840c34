package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// PostService is the core domain service for posts. It owns the search flow
// (parse, count, clamp, fetch, assemble) and the post lifecycle.
type PostService struct {
	posts     PostRepository
	tags      TagRepository
	images    ImageStorage
	assembler *Assembler
	logger    *slog.Logger
}

// NewPostService creates a PostService over the given repositories.
func NewPostService(
	posts PostRepository,
	tags TagRepository,
	images ImageStorage,
	assembler *Assembler,
	logger *slog.Logger,
) *PostService {
	return &PostService{
		posts:     posts,
		tags:      tags,
		images:    images,
		assembler: assembler,
		logger:    logger,
	}
}

// Search parses rawQuery into a title substring and required tags, clamps
// pageNumber to the valid range for the match count, and returns one
// assembled page. pageSize must be positive.
func (s *PostService) Search(ctx context.Context, rawQuery string, pageNumber, pageSize int) (Page, error) {
	q := ParseSearch(rawQuery)

	total, err := s.posts.CountBySearch(ctx, q.TitleSubstring, q.Tags)
	if err != nil {
		return Page{}, fmt.Errorf("count posts: %w", err)
	}

	page, lastPage, offset := pageBounds(total, pageNumber, pageSize)

	rows, err := s.posts.SearchPage(ctx, q.TitleSubstring, q.Tags, offset, pageSize)
	if err != nil {
		return Page{}, fmt.Errorf("search posts: %w", err)
	}

	posts, err := s.assembler.AssembleMany(ctx, rows)
	if err != nil {
		return Page{}, err
	}

	s.logger.Debug("post search",
		"query", rawQuery,
		"title_substring", q.TitleSubstring,
		"tags", q.Tags,
		"total", total,
		"page", page,
	)

	return Page{
		Posts:      posts,
		PageNumber: page,
		PageSize:   pageSize,
		LastPage:   lastPage,
	}, nil
}

// GetPost retrieves one assembled post. Returns ErrPostNotFound if no post
// has that id.
func (s *PostService) GetPost(ctx context.Context, id int64) (Post, error) {
	row, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return Post{}, err
	}
	return s.assembler.AssembleOne(ctx, row)
}

// CreatePost creates a post with the given tags and returns its assembled
// form.
func (s *PostService) CreatePost(ctx context.Context, title, text string, tags []string) (Post, error) {
	id, err := s.posts.Insert(ctx, title, text)
	if err != nil {
		return Post{}, fmt.Errorf("insert post: %w", err)
	}

	if err := s.tags.ReplaceTags(ctx, id, tags); err != nil {
		return Post{}, fmt.Errorf("replace tags for post %d: %w", id, err)
	}

	s.logger.Info("post created", "id", id)
	return s.getAfterWrite(ctx, id)
}

// UpdatePost replaces the title, text and tag set of an existing post and
// returns its assembled form. Returns ErrPostNotFound if no post has that
// id.
func (s *PostService) UpdatePost(ctx context.Context, id int64, title, text string, tags []string) (Post, error) {
	if err := s.posts.Update(ctx, id, title, text); err != nil {
		return Post{}, err
	}

	if err := s.tags.ReplaceTags(ctx, id, tags); err != nil {
		return Post{}, fmt.Errorf("replace tags for post %d: %w", id, err)
	}

	return s.getAfterWrite(ctx, id)
}

// DeletePost removes a post along with its image file. Comments and tag
// links cascade at the storage layer. Returns ErrPostNotFound if no post has
// that id.
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if err := s.posts.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := s.images.Delete(id); err != nil {
		return fmt.Errorf("delete image for post %d: %w", id, err)
	}

	s.logger.Info("post deleted", "id", id)
	return nil
}

// IncrementLikes atomically bumps the post's like counter and returns the
// new value. Returns ErrPostNotFound if no post has that id.
func (s *PostService) IncrementLikes(ctx context.Context, id int64) (int, error) {
	return s.posts.IncrementLikes(ctx, id)
}

// getAfterWrite re-reads a post we just wrote. A miss here is a programming
// error, not user input, so it is not reported as ErrPostNotFound.
func (s *PostService) getAfterWrite(ctx context.Context, id int64) (Post, error) {
	row, err := s.posts.FindByID(ctx, id)
	if errors.Is(err, ErrPostNotFound) {
		return Post{}, fmt.Errorf("post disappeared after write: id=%d", id)
	}
	if err != nil {
		return Post{}, err
	}
	return s.assembler.AssembleOne(ctx, row)
}
