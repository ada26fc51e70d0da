package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DiskStore сохраняет референсы в локальную папку (по умолчанию static/uploads)
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Save(_ context.Context, dir, filename string, data []byte) (string, error) {
	targetDir := filepath.Join(s.root, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	path := filepath.Join(targetDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logrus.Infof("File %s saved successfully", path)
	return path, nil
}

// FileURL возвращает путь, по которому файл раздаётся как статика
func (s *DiskStore) FileURL(_ context.Context, path string) (string, error) {
	return "/" + strings.TrimPrefix(filepath.ToSlash(path), "/"), nil
}

func (s *DiskStore) Remove(_ context.Context, path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
