package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagStoreReplaceTags(t *testing.T) {
	store := newTestStore(t)
	posts := NewPostStore(store)
	tags := NewTagStore(store)
	ctx := context.Background()

	id, err := posts.Insert(ctx, "tagged", "text")
	require.NoError(t, err)

	require.NoError(t, tags.ReplaceTags(ctx, id, []string{"  Java ", "spring", "JAVA", ""}))

	got, err := tags.FindTagsByPostID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"java", "spring"}, got)

	// A second replace swaps the whole set.
	require.NoError(t, tags.ReplaceTags(ctx, id, []string{"go"}))
	got, err = tags.FindTagsByPostID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, got)

	// Replacing with nothing clears the links.
	require.NoError(t, tags.ReplaceTags(ctx, id, nil))
	got, err = tags.FindTagsByPostID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestTagStoreReplaceTagsIdempotent(t *testing.T) {
	store := newTestStore(t)
	posts := NewPostStore(store)
	tags := NewTagStore(store)
	ctx := context.Background()

	id, err := posts.Insert(ctx, "tagged", "text")
	require.NoError(t, err)

	input := []string{"java", "spring"}
	require.NoError(t, tags.ReplaceTags(ctx, id, input))
	require.NoError(t, tags.ReplaceTags(ctx, id, input))

	got, err := tags.FindTagsByPostID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"java", "spring"}, got)
}

func TestTagStoreSharedVocabulary(t *testing.T) {
	store := newTestStore(t)
	posts := NewPostStore(store)
	tags := NewTagStore(store)
	ctx := context.Background()

	first, err := posts.Insert(ctx, "one", "text")
	require.NoError(t, err)
	second, err := posts.Insert(ctx, "two", "text")
	require.NoError(t, err)

	require.NoError(t, tags.ReplaceTags(ctx, first, []string{"java"}))
	require.NoError(t, tags.ReplaceTags(ctx, second, []string{"java"}))

	// Both posts link to the same tag row.
	var count int
	err = store.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM tags WHERE name = $1", "java").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Dropping the tag from one post does not affect the other.
	require.NoError(t, tags.ReplaceTags(ctx, first, nil))
	got, err := tags.FindTagsByPostID(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, []string{"java"}, got)
}

func TestTagStoreBatchLookup(t *testing.T) {
	store := newTestStore(t)
	posts := NewPostStore(store)
	tags := NewTagStore(store)
	ctx := context.Background()

	first, err := posts.Insert(ctx, "one", "text")
	require.NoError(t, err)
	second, err := posts.Insert(ctx, "two", "text")
	require.NoError(t, err)
	bare, err := posts.Insert(ctx, "three", "text")
	require.NoError(t, err)

	require.NoError(t, tags.ReplaceTags(ctx, first, []string{"java", "db"}))
	require.NoError(t, tags.ReplaceTags(ctx, second, []string{"go"}))

	byPost, err := tags.FindTagsByPostIDs(ctx, []int64{first, second, bare})
	require.NoError(t, err)

	assert.Equal(t, []string{"db", "java"}, byPost[first])
	assert.Equal(t, []string{"go"}, byPost[second])

	// Posts without tags are simply absent from the map.
	_, ok := byPost[bare]
	assert.False(t, ok)

	empty, err := tags.FindTagsByPostIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
