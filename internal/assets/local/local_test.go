package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesFileAndReturnsPublicPath(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, "venues")
	require.NoError(t, err)

	ref, err := s.Save(context.Background(), "photo.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "venues/photo.jpg", ref)

	data, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSaveNormalizesClientPath(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, "venues")
	require.NoError(t, err)

	ref, err := s.Save(context.Background(), `C:\fotos\mi foto.jpg`, strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "venues/mi_foto.jpg", ref)

	_, err = os.Stat(filepath.Join(dir, "mi_foto.jpg"))
	require.NoError(t, err)
}

func TestSaveRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir, "venues")
	require.NoError(t, err)

	// ".." survives normalization as a bare name and must be refused.
	_, err = s.Save(context.Background(), "..", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "assets")

	_, err := NewStore(dir, "venues")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
