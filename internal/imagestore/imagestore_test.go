package imagestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSRoundTrip(t *testing.T) {
	fs, err := NewFS(t.TempDir())
	require.NoError(t, err)

	assert.False(t, fs.Exists(1))

	data := []byte{0xde, 0xad, 0xbe, 0xef}
	require.NoError(t, fs.Save(1, data))
	assert.True(t, fs.Exists(1))

	got, err := fs.Read(1)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Saving again replaces the previous bytes.
	require.NoError(t, fs.Save(1, []byte{0x01}))
	got, err = fs.Read(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, got)

	require.NoError(t, fs.Delete(1))
	assert.False(t, fs.Exists(1))

	// Deleting an absent image is not an error.
	require.NoError(t, fs.Delete(1))
}

func TestDefaultImage(t *testing.T) {
	img := DefaultImage()
	assert.Equal(t, "image/svg+xml", img.ContentType)
	assert.NotEmpty(t, img.Data)
}
