package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	domainTask "taskboard/internal/domain/task"
)

// LocalImageStore implements domain task.ImageStore on the local
// filesystem. Only the generated filename leaves this package; callers
// never see full paths.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore creates the upload directory if needed.
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

func (s *LocalImageStore) Save(_ context.Context, ext string, data []byte) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	// Timestamped name, e.g. task_1718012341234567890.jpg, to avoid collisions.
	filename := fmt.Sprintf("task_%d%s", time.Now().UnixNano(), ext)

	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return filename, nil
}

func (s *LocalImageStore) Delete(_ context.Context, filename string) error {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return domainTask.ErrImageNotFound
		}
		return fmt.Errorf("failed to delete image file: %w", err)
	}

	return nil
}
