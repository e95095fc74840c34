package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blackmichael/blog-service/internal/domain"
)

// CommentStore implements domain.CommentRepository. Every mutation is keyed
// by the (post_id, id) pair, so an existing comment addressed through the
// wrong post reads as not found.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore creates a CommentStore over the given database.
func NewCommentStore(s *Store) *CommentStore {
	return &CommentStore{db: s.db}
}

// FindByPostID returns the post's comments in ascending id order.
func (s *CommentStore) FindByPostID(ctx context.Context, postID int64) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, text
		FROM comments
		WHERE post_id = $1
		ORDER BY id ASC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments for post %d: %w", postID, err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Text); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// FindByPostIDAndID retrieves one comment.
func (s *CommentStore) FindByPostIDAndID(ctx context.Context, postID, commentID int64) (domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, post_id, text
		FROM comments
		WHERE post_id = $1 AND id = $2`,
		postID, commentID,
	).Scan(&c.ID, &c.PostID, &c.Text)
	if err == sql.ErrNoRows {
		return domain.Comment{}, notFoundComment(postID, commentID)
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("query comment %d for post %d: %w", commentID, postID, err)
	}
	return c, nil
}

// Insert creates a comment under a post, returning the assigned id.
func (s *CommentStore) Insert(ctx context.Context, postID int64, text string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (post_id, text)
		VALUES ($1, $2)
		RETURNING id`,
		postID, text,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert comment for post %d: %w", postID, err)
	}
	return id, nil
}

// Update replaces a comment's text.
func (s *CommentStore) Update(ctx context.Context, postID, commentID int64, text string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE comments
		SET text = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE post_id = $2 AND id = $3`,
		text, postID, commentID,
	)
	if err != nil {
		return fmt.Errorf("update comment %d for post %d: %w", commentID, postID, err)
	}
	return requireCommentRow(res, postID, commentID)
}

// Delete removes a comment.
func (s *CommentStore) Delete(ctx context.Context, postID, commentID int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM comments WHERE post_id = $1 AND id = $2`,
		postID, commentID,
	)
	if err != nil {
		return fmt.Errorf("delete comment %d for post %d: %w", commentID, postID, err)
	}
	return requireCommentRow(res, postID, commentID)
}

// CountByPostID returns the number of comments under a post.
func (s *CommentStore) CountByPostID(ctx context.Context, postID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count comments for post %d: %w", postID, err)
	}
	return count, nil
}

// CountByPostIDs counts comments for each of the given posts in a single
// query. Posts without comments have no entry in the result; an empty id
// list short-circuits without touching the database.
func (s *CommentStore) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int, error) {
	result := make(map[int64]int)
	if len(postIDs) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`
		SELECT post_id, COUNT(*) AS cnt
		FROM comments
		WHERE post_id IN (%s)
		GROUP BY post_id`,
		placeholders(1, len(postIDs)),
	)

	args := make([]any, len(postIDs))
	for i, id := range postIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count comments for posts %v: %w", postIDs, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID int64
			count  int
		)
		if err := rows.Scan(&postID, &count); err != nil {
			return nil, fmt.Errorf("scan comment count: %w", err)
		}
		result[postID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment counts: %w", err)
	}
	return result, nil
}

func notFoundComment(postID, commentID int64) error {
	return fmt.Errorf("comment %d for post %d: %w", commentID, postID, domain.ErrCommentNotFound)
}

func requireCommentRow(res sql.Result, postID, commentID int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFoundComment(postID, commentID)
	}
	return nil
}
