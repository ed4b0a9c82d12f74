package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Put(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "shirt.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/images/shirt.png", ref)

	content, err := os.ReadFile(filepath.Join(dir, "shirt.png"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestFileStore_Put_StripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "../../etc/shirt.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/images/shirt.png", ref)

	_, err = os.Stat(filepath.Join(dir, "shirt.png"))
	require.NoError(t, err)
}

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
