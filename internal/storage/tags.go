package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/blackmichael/blog-service/internal/domain"
)

// TagStore implements domain.TagRepository. Tag names form a shared
// vocabulary: "java" on one post and "java" on another are the same tags
// row, created on first use and never deleted.
type TagStore struct {
	db *sql.DB
}

// NewTagStore creates a TagStore over the given database.
func NewTagStore(s *Store) *TagStore {
	return &TagStore{db: s.db}
}

// FindTagsByPostID returns the tags linked to a post in ascending order.
func (s *TagStore) FindTagsByPostID(ctx context.Context, postID int64) ([]string, error) {
	byPost, err := s.FindTagsByPostIDs(ctx, []int64{postID})
	if err != nil {
		return nil, err
	}

	tags := byPost[postID]
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// FindTagsByPostIDs returns tags for each of the given posts in a single
// query. Posts without tags have no entry in the result; an empty id list
// short-circuits without touching the database.
func (s *TagStore) FindTagsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string)
	if len(postIDs) == 0 {
		return result, nil
	}

	query := fmt.Sprintf(`
		SELECT pt.post_id, t.name
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id IN (%s)
		ORDER BY pt.post_id, t.name`,
		placeholders(1, len(postIDs)),
	)

	args := make([]any, len(postIDs))
	for i, id := range postIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tags for posts %v: %w", postIDs, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID int64
			name   string
		)
		if err := rows.Scan(&postID, &name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		result[postID] = append(result[postID], name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return result, nil
}

// ReplaceTags replaces the post's tag links with the normalized form of tags
// inside a single transaction: delete the old links, upsert the vocabulary,
// relink. The upsert is a plain insert with ON CONFLICT DO NOTHING, so two
// posts adopting the same new tag name concurrently cannot race into a
// duplicate row.
func (s *TagStore) ReplaceTags(ctx context.Context, postID int64, tags []string) error {
	tags = domain.NormalizeTags(tags)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM post_tags WHERE post_id = $1`, postID,
	); err != nil {
		return fmt.Errorf("delete tag links for post %d: %w", postID, err)
	}

	if len(tags) > 0 {
		values := make([]string, len(tags))
		args := make([]any, len(tags))
		for i, t := range tags {
			values[i] = fmt.Sprintf("($%d)", i+1)
			args[i] = t
		}

		upsert := fmt.Sprintf(
			`INSERT INTO tags (name) VALUES %s ON CONFLICT (name) DO NOTHING`,
			strings.Join(values, ", "),
		)
		if _, err := tx.ExecContext(ctx, upsert, args...); err != nil {
			return fmt.Errorf("upsert tags %v: %w", tags, err)
		}

		link := fmt.Sprintf(`
			INSERT INTO post_tags (post_id, tag_id)
			SELECT $1, id
			FROM tags
			WHERE name IN (%s)
			ON CONFLICT DO NOTHING`,
			placeholders(2, len(tags)),
		)
		linkArgs := append([]any{postID}, args...)
		if _, err := tx.ExecContext(ctx, link, linkArgs...); err != nil {
			return fmt.Errorf("link tags to post %d: %w", postID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
