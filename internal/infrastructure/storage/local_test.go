package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domainTask "taskboard/internal/domain/task"

	"github.com/stretchr/testify/require"
)

func TestLocalImageStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte("fake image bytes")

	filename, err := store.Save(ctx, ".png", data)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filename, "task_"))
	require.True(t, strings.HasSuffix(filename, ".png"))
	require.False(t, strings.ContainsRune(filename, os.PathSeparator))

	written, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	require.Equal(t, data, written)

	require.NoError(t, store.Delete(ctx, filename))
	_, err = os.Stat(filepath.Join(dir, filename))
	require.True(t, os.IsNotExist(err))
}

func TestLocalImageStore_SaveNormalizesExtension(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	filename, err := store.Save(context.Background(), "jpg", []byte{1})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(filename, ".jpg"))
}

func TestLocalImageStore_DeleteMissingFile(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	err = store.Delete(context.Background(), "task_does_not_exist.png")
	require.ErrorIs(t, err, domainTask.ErrImageNotFound)
}

func TestLocalImageStore_DistinctFilenames(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save(context.Background(), ".png", []byte{1})
	require.NoError(t, err)
	b, err := store.Save(context.Background(), ".png", []byte{2})
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
