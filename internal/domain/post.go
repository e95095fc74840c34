package domain

// PostRow is a raw post row as stored, before tags and comment counts are
// attached.
type PostRow struct {
	// ID is the store-assigned identity of the post.
	ID int64

	// Title is the post title.
	Title string

	// Text is the post body.
	Text string

	// LikesCount is the number of likes, only ever incremented.
	LikesCount int
}

// Post is a fully assembled post: the stored row plus its tag set and
// comment count.
type Post struct {
	ID            int64
	Title         string
	Text          string
	LikesCount    int
	CommentsCount int
	Tags          []string
}

// Comment is a single comment under a post. Comments are owned by their post
// and are removed when the post is deleted.
type Comment struct {
	ID     int64
	PostID int64
	Text   string
}

// Page is one page of a post listing.
type Page struct {
	Posts      []Post
	PageNumber int
	PageSize   int
	LastPage   int
}

// HasPrev reports whether a page precedes this one.
func (p Page) HasPrev() bool { return p.PageNumber > 1 }

// HasNext reports whether a page follows this one.
func (p Page) HasNext() bool { return p.PageNumber < p.LastPage }

// ImagePayload is an image body together with its content type.
type ImagePayload struct {
	ContentType string
	Data        []byte
}
