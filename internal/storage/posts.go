package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blackmichael/blog-service/internal/domain"
)

// PostStore implements domain.PostRepository.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a PostStore over the given database.
func NewPostStore(s *Store) *PostStore {
	return &PostStore{db: s.db}
}

// Insert creates a post with zero likes and no image.
func (s *PostStore) Insert(ctx context.Context, title, text string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, text)
		VALUES ($1, $2)
		RETURNING id`,
		title, text,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	return id, nil
}

// FindByID retrieves a single post row.
func (s *PostStore) FindByID(ctx context.Context, id int64) (domain.PostRow, error) {
	var row domain.PostRow
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, text, likes_count
		FROM posts
		WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.Title, &row.Text, &row.LikesCount)
	if err == sql.ErrNoRows {
		return domain.PostRow{}, fmt.Errorf("post %d: %w", id, domain.ErrPostNotFound)
	}
	if err != nil {
		return domain.PostRow{}, fmt.Errorf("query post %d: %w", id, err)
	}
	return row, nil
}

// Update replaces the title and text of an existing post.
func (s *PostStore) Update(ctx context.Context, id int64, title, text string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE posts
		SET title = $1,
			text = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`,
		title, text, id,
	)
	if err != nil {
		return fmt.Errorf("update post %d: %w", id, err)
	}
	return requireRow(res, id)
}

// DeleteByID removes a post row. Comments and tag links cascade via foreign
// keys.
func (s *PostStore) DeleteByID(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return requireRow(res, id)
}

// IncrementLikes bumps the like counter in a single statement, so two
// concurrent likes on the same post cannot lose an update.
func (s *PostStore) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		UPDATE posts
		SET likes_count = likes_count + 1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING likes_count`,
		id,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("post %d: %w", id, domain.ErrPostNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("increment likes for post %d: %w", id, err)
	}
	return count, nil
}

// SearchPage retrieves one page of rows matching the title substring and,
// when tags is non-empty, linked to every tag in tags. A post linked to a
// superset of the requested tags still matches: the join is restricted to
// the requested names, so the per-post row count equals len(tags) exactly
// when all of them are linked.
func (s *PostStore) SearchPage(ctx context.Context, titleSubstring string, tags []string, offset, limit int) ([]domain.PostRow, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if len(tags) == 0 {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, title, text, likes_count
			FROM posts
			WHERE lower(title) LIKE '%' || lower($1) || '%'
			ORDER BY id DESC
			LIMIT $2 OFFSET $3`,
			titleSubstring, limit, offset,
		)
	} else {
		query := fmt.Sprintf(`
			SELECT p.id, p.title, p.text, p.likes_count
			FROM posts p
			JOIN post_tags pt ON pt.post_id = p.id
			JOIN tags t ON t.id = pt.tag_id
			WHERE lower(p.title) LIKE '%%' || lower($1) || '%%'
				AND t.name IN (%s)
			GROUP BY p.id, p.title, p.text, p.likes_count
			HAVING COUNT(*) = $%d
			ORDER BY p.id DESC
			LIMIT $%d OFFSET $%d`,
			placeholders(2, len(tags)), len(tags)+2, len(tags)+3, len(tags)+4,
		)
		rows, err = s.db.QueryContext(ctx, query, searchArgs(titleSubstring, tags, limit, offset)...)
	}
	if err != nil {
		return nil, fmt.Errorf("query posts (title=%q, tags=%v): %w", titleSubstring, tags, err)
	}
	defer rows.Close()

	var result []domain.PostRow
	for rows.Next() {
		var row domain.PostRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Text, &row.LikesCount); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return result, nil
}

// CountBySearch counts the rows matching the same predicate as SearchPage.
func (s *PostStore) CountBySearch(ctx context.Context, titleSubstring string, tags []string) (int64, error) {
	var (
		count int64
		err   error
	)

	if len(tags) == 0 {
		err = s.db.QueryRowContext(ctx, `
			SELECT COUNT(*)
			FROM posts
			WHERE lower(title) LIKE '%' || lower($1) || '%'`,
			titleSubstring,
		).Scan(&count)
	} else {
		query := fmt.Sprintf(`
			SELECT COUNT(*)
			FROM (
				SELECT p.id
				FROM posts p
				JOIN post_tags pt ON pt.post_id = p.id
				JOIN tags t ON t.id = pt.tag_id
				WHERE lower(p.title) LIKE '%%' || lower($1) || '%%'
					AND t.name IN (%s)
				GROUP BY p.id
				HAVING COUNT(*) = $%d
			) matched`,
			placeholders(2, len(tags)), len(tags)+2,
		)
		err = s.db.QueryRowContext(ctx, query, searchArgs(titleSubstring, tags, -1, -1)...).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("count posts (title=%q, tags=%v): %w", titleSubstring, tags, err)
	}
	return count, nil
}

// FindImageContentType returns the stored image content type, or "" if no
// image has been uploaded.
func (s *PostStore) FindImageContentType(ctx context.Context, id int64) (string, error) {
	var contentType sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT image_content_type FROM posts WHERE id = $1`, id,
	).Scan(&contentType)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("post %d: %w", id, domain.ErrPostNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("query image content type for post %d: %w", id, err)
	}
	return contentType.String, nil
}

// UpdateImageContentType records the content type of the post's image.
func (s *PostStore) UpdateImageContentType(ctx context.Context, id int64, contentType string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE posts
		SET image_content_type = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`,
		contentType, id,
	)
	if err != nil {
		return fmt.Errorf("update image content type for post %d: %w", id, err)
	}
	return requireRow(res, id)
}

// searchArgs assembles the argument list for the tag-filtered search
// queries: title substring, tag names, the expected match count, then
// limit/offset when they are non-negative.
func searchArgs(titleSubstring string, tags []string, limit, offset int) []any {
	args := make([]any, 0, len(tags)+4)
	args = append(args, titleSubstring)
	for _, t := range tags {
		args = append(args, t)
	}
	args = append(args, len(tags))
	if limit >= 0 {
		args = append(args, limit, offset)
	}
	return args
}

// requireRow maps a zero-row mutation to ErrPostNotFound.
func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("post %d: %w", id, domain.ErrPostNotFound)
	}
	return nil
}
