package domain

import (
	"context"
	"fmt"
	"sort"
)

// In-memory repository fakes. The tag and comment fakes count their lookup
// calls so tests can pin down the batching discipline of the assembler.

type fakePostRepo struct {
	nextID       int64
	rows         map[int64]PostRow
	contentTypes map[int64]string

	searchRows []PostRow
	total      int64

	lastTitle  string
	lastTags   []string
	lastOffset int
	lastLimit  int

	failFindByID bool
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		rows:         make(map[int64]PostRow),
		contentTypes: make(map[int64]string),
	}
}

func (f *fakePostRepo) Insert(_ context.Context, title, text string) (int64, error) {
	f.nextID++
	f.rows[f.nextID] = PostRow{ID: f.nextID, Title: title, Text: text}
	return f.nextID, nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id int64) (PostRow, error) {
	row, ok := f.rows[id]
	if !ok || f.failFindByID {
		return PostRow{}, fmt.Errorf("post %d: %w", id, ErrPostNotFound)
	}
	return row, nil
}

func (f *fakePostRepo) Update(_ context.Context, id int64, title, text string) error {
	row, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("post %d: %w", id, ErrPostNotFound)
	}
	row.Title, row.Text = title, text
	f.rows[id] = row
	return nil
}

func (f *fakePostRepo) DeleteByID(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("post %d: %w", id, ErrPostNotFound)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakePostRepo) IncrementLikes(_ context.Context, id int64) (int, error) {
	row, ok := f.rows[id]
	if !ok {
		return 0, fmt.Errorf("post %d: %w", id, ErrPostNotFound)
	}
	row.LikesCount++
	f.rows[id] = row
	return row.LikesCount, nil
}

func (f *fakePostRepo) SearchPage(_ context.Context, titleSubstring string, tags []string, offset, limit int) ([]PostRow, error) {
	f.lastTitle, f.lastTags, f.lastOffset, f.lastLimit = titleSubstring, tags, offset, limit
	return f.searchRows, nil
}

func (f *fakePostRepo) CountBySearch(_ context.Context, titleSubstring string, tags []string) (int64, error) {
	f.lastTitle, f.lastTags = titleSubstring, tags
	return f.total, nil
}

func (f *fakePostRepo) FindImageContentType(_ context.Context, id int64) (string, error) {
	if _, ok := f.rows[id]; !ok {
		return "", fmt.Errorf("post %d: %w", id, ErrPostNotFound)
	}
	return f.contentTypes[id], nil
}

func (f *fakePostRepo) UpdateImageContentType(_ context.Context, id int64, contentType string) error {
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("post %d: %w", id, ErrPostNotFound)
	}
	f.contentTypes[id] = contentType
	return nil
}

type fakeTagRepo struct {
	tags map[int64][]string

	singleCalls  int
	batchCalls   int
	replaceCalls int
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[int64][]string)}
}

func (f *fakeTagRepo) FindTagsByPostID(_ context.Context, postID int64) ([]string, error) {
	f.singleCalls++
	tags := f.tags[postID]
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (f *fakeTagRepo) FindTagsByPostIDs(_ context.Context, postIDs []int64) (map[int64][]string, error) {
	f.batchCalls++
	result := make(map[int64][]string)
	for _, id := range postIDs {
		if tags := f.tags[id]; len(tags) > 0 {
			result[id] = tags
		}
	}
	return result, nil
}

func (f *fakeTagRepo) ReplaceTags(_ context.Context, postID int64, tags []string) error {
	f.replaceCalls++
	normalized := NormalizeTags(tags)
	if len(normalized) == 0 {
		delete(f.tags, postID)
		return nil
	}
	f.tags[postID] = normalized
	return nil
}

type fakeCommentRepo struct {
	nextID   int64
	comments map[int64]Comment

	singleCountCalls int
	batchCountCalls  int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]Comment)}
}

func (f *fakeCommentRepo) FindByPostID(_ context.Context, postID int64) ([]Comment, error) {
	var result []Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeCommentRepo) FindByPostIDAndID(_ context.Context, postID, commentID int64) (Comment, error) {
	c, ok := f.comments[commentID]
	if !ok || c.PostID != postID {
		return Comment{}, fmt.Errorf("comment %d for post %d: %w", commentID, postID, ErrCommentNotFound)
	}
	return c, nil
}

func (f *fakeCommentRepo) Insert(_ context.Context, postID int64, text string) (int64, error) {
	f.nextID++
	f.comments[f.nextID] = Comment{ID: f.nextID, PostID: postID, Text: text}
	return f.nextID, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, postID, commentID int64, text string) error {
	c, ok := f.comments[commentID]
	if !ok || c.PostID != postID {
		return fmt.Errorf("comment %d for post %d: %w", commentID, postID, ErrCommentNotFound)
	}
	c.Text = text
	f.comments[commentID] = c
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, postID, commentID int64) error {
	c, ok := f.comments[commentID]
	if !ok || c.PostID != postID {
		return fmt.Errorf("comment %d for post %d: %w", commentID, postID, ErrCommentNotFound)
	}
	delete(f.comments, commentID)
	return nil
}

func (f *fakeCommentRepo) CountByPostID(_ context.Context, postID int64) (int, error) {
	f.singleCountCalls++
	count := 0
	for _, c := range f.comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) CountByPostIDs(_ context.Context, postIDs []int64) (map[int64]int, error) {
	f.batchCountCalls++
	result := make(map[int64]int)
	for _, id := range postIDs {
		for _, c := range f.comments {
			if c.PostID == id {
				result[id]++
			}
		}
	}
	return result, nil
}

type fakeImageStorage struct {
	images  map[int64][]byte
	deleted []int64
}

func newFakeImageStorage() *fakeImageStorage {
	return &fakeImageStorage{images: make(map[int64][]byte)}
}

func (f *fakeImageStorage) Save(postID int64, data []byte) error {
	f.images[postID] = data
	return nil
}

func (f *fakeImageStorage) Read(postID int64) ([]byte, error) {
	data, ok := f.images[postID]
	if !ok {
		return nil, fmt.Errorf("no image for post %d", postID)
	}
	return data, nil
}

func (f *fakeImageStorage) Exists(postID int64) bool {
	_, ok := f.images[postID]
	return ok
}

func (f *fakeImageStorage) Delete(postID int64) error {
	delete(f.images, postID)
	f.deleted = append(f.deleted, postID)
	return nil
}
