package domain

import "context"

// PostRepository defines persistence operations for post rows.
type PostRepository interface {
	// Insert creates a post with zero likes and no image, returning the
	// assigned id.
	Insert(ctx context.Context, title, text string) (int64, error)

	// FindByID retrieves a single post row. Returns ErrPostNotFound if no
	// row has that id.
	FindByID(ctx context.Context, id int64) (PostRow, error)

	// Update replaces the title and text of an existing post. Returns
	// ErrPostNotFound if no row has that id.
	Update(ctx context.Context, id int64, title, text string) error

	// DeleteByID removes a post row. Comments and tag links cascade at the
	// storage layer; the image file is the caller's responsibility. Returns
	// ErrPostNotFound if no row has that id.
	DeleteByID(ctx context.Context, id int64) error

	// IncrementLikes atomically increments the like counter and returns the
	// new value. Returns ErrPostNotFound if no row has that id.
	IncrementLikes(ctx context.Context, id int64) (int, error)

	// SearchPage retrieves one page of rows whose title contains
	// titleSubstring case-insensitively and, when tags is non-empty, that
	// are linked to every tag in tags. Rows are ordered by id descending.
	SearchPage(ctx context.Context, titleSubstring string, tags []string, offset, limit int) ([]PostRow, error)

	// CountBySearch counts the rows matching the same predicate as
	// SearchPage.
	CountBySearch(ctx context.Context, titleSubstring string, tags []string) (int64, error)

	// FindImageContentType returns the stored image content type, or the
	// empty string if the post has no image. Returns ErrPostNotFound if no
	// row has that id.
	FindImageContentType(ctx context.Context, id int64) (string, error)

	// UpdateImageContentType records the content type of the post's image.
	// Returns ErrPostNotFound if no row has that id.
	UpdateImageContentType(ctx context.Context, id int64, contentType string) error
}

// TagRepository owns the shared tag vocabulary and the post-tag relation.
type TagRepository interface {
	// FindTagsByPostID returns the tags linked to a post in ascending
	// order, or an empty slice if there are none.
	FindTagsByPostID(ctx context.Context, postID int64) ([]string, error)

	// FindTagsByPostIDs returns tags for each of the given posts in a
	// single query. Posts without tags have no entry in the result.
	FindTagsByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]string, error)

	// ReplaceTags atomically replaces the post's tag links with the
	// normalized form of tags, creating missing vocabulary entries.
	ReplaceTags(ctx context.Context, postID int64, tags []string) error
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	// FindByPostID returns the post's comments in ascending id order.
	FindByPostID(ctx context.Context, postID int64) ([]Comment, error)

	// FindByPostIDAndID retrieves one comment. Returns ErrCommentNotFound
	// if the (postID, commentID) pair does not exist.
	FindByPostIDAndID(ctx context.Context, postID, commentID int64) (Comment, error)

	// Insert creates a comment under a post, returning the assigned id.
	Insert(ctx context.Context, postID int64, text string) (int64, error)

	// Update replaces a comment's text. Returns ErrCommentNotFound if the
	// (postID, commentID) pair does not exist.
	Update(ctx context.Context, postID, commentID int64, text string) error

	// Delete removes a comment. Returns ErrCommentNotFound if the
	// (postID, commentID) pair does not exist.
	Delete(ctx context.Context, postID, commentID int64) error

	// CountByPostID returns the number of comments under a post.
	CountByPostID(ctx context.Context, postID int64) (int, error)

	// CountByPostIDs counts comments for each of the given posts in a
	// single query. Posts without comments have no entry in the result.
	CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int, error)
}

// ImageStorage stores post image bytes keyed by post id.
type ImageStorage interface {
	Save(postID int64, data []byte) error
	Read(postID int64) ([]byte, error)
	Exists(postID int64) bool
	Delete(postID int64) error
}
