package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleManyBatchesLookups(t *testing.T) {
	comments := newFakeCommentRepo()
	tags := newFakeTagRepo()
	assembler := NewAssembler(comments, tags)

	tags.tags[1] = []string{"go", "sql"}
	_, err := comments.Insert(context.Background(), 2, "first")
	require.NoError(t, err)
	_, err = comments.Insert(context.Background(), 2, "second")
	require.NoError(t, err)

	rows := []PostRow{
		{ID: 3, Title: "c"},
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
	}

	posts, err := assembler.AssembleMany(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// One round-trip per concern, independent of row count.
	assert.Equal(t, 1, comments.batchCountCalls)
	assert.Equal(t, 1, tags.batchCalls)
	assert.Zero(t, comments.singleCountCalls)
	assert.Zero(t, tags.singleCalls)

	// Input order preserved; absent batch entries become zero values.
	assert.Equal(t, int64(3), posts[0].ID)
	assert.Zero(t, posts[0].CommentsCount)
	assert.Equal(t, []string{}, posts[0].Tags)

	assert.Equal(t, int64(1), posts[1].ID)
	assert.Equal(t, []string{"go", "sql"}, posts[1].Tags)

	assert.Equal(t, int64(2), posts[2].ID)
	assert.Equal(t, 2, posts[2].CommentsCount)
}

func TestAssembleManyEmpty(t *testing.T) {
	comments := newFakeCommentRepo()
	tags := newFakeTagRepo()
	assembler := NewAssembler(comments, tags)

	posts, err := assembler.AssembleMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.LessOrEqual(t, comments.batchCountCalls, 1)
	assert.LessOrEqual(t, tags.batchCalls, 1)
}

func TestAssembleOne(t *testing.T) {
	comments := newFakeCommentRepo()
	tags := newFakeTagRepo()
	assembler := NewAssembler(comments, tags)

	tags.tags[7] = []string{"java"}
	_, err := comments.Insert(context.Background(), 7, "hi")
	require.NoError(t, err)

	post, err := assembler.AssembleOne(context.Background(), PostRow{ID: 7, Title: "t", Text: "x", LikesCount: 4})
	require.NoError(t, err)

	assert.Equal(t, int64(7), post.ID)
	assert.Equal(t, 4, post.LikesCount)
	assert.Equal(t, 1, post.CommentsCount)
	assert.Equal(t, []string{"java"}, post.Tags)
}
