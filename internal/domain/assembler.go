package domain

import (
	"context"
	"fmt"
)

// Assembler merges post rows with their comment counts and tag sets. For a
// list of rows it issues exactly one batched comment-count lookup and one
// batched tag lookup, however many rows there are, instead of a pair of
// queries per row.
type Assembler struct {
	comments CommentRepository
	tags     TagRepository
}

// NewAssembler creates an Assembler over the given repositories.
func NewAssembler(comments CommentRepository, tags TagRepository) *Assembler {
	return &Assembler{comments: comments, tags: tags}
}

// AssembleOne builds a full Post from a single row.
func (a *Assembler) AssembleOne(ctx context.Context, row PostRow) (Post, error) {
	count, err := a.comments.CountByPostID(ctx, row.ID)
	if err != nil {
		return Post{}, fmt.Errorf("count comments for post %d: %w", row.ID, err)
	}

	tags, err := a.tags.FindTagsByPostID(ctx, row.ID)
	if err != nil {
		return Post{}, fmt.Errorf("find tags for post %d: %w", row.ID, err)
	}

	return newPost(row, count, tags), nil
}

// AssembleMany builds full Posts from rows, preserving the input order.
// Rows absent from the batched results get a zero comment count and an empty
// tag set.
func (a *Assembler) AssembleMany(ctx context.Context, rows []PostRow) ([]Post, error) {
	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	counts, err := a.comments.CountByPostIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count comments for posts: %w", err)
	}

	tagsByPost, err := a.tags.FindTagsByPostIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find tags for posts: %w", err)
	}

	posts := make([]Post, len(rows))
	for i, row := range rows {
		posts[i] = newPost(row, counts[row.ID], tagsByPost[row.ID])
	}
	return posts, nil
}

func newPost(row PostRow, commentsCount int, tags []string) Post {
	if tags == nil {
		tags = []string{}
	}
	return Post{
		ID:            row.ID,
		Title:         row.Title,
		Text:          row.Text,
		LikesCount:    row.LikesCount,
		CommentsCount: commentsCount,
		Tags:          tags,
	}
}
