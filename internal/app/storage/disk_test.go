package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskStoreSaveAndRemove(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	path, err := store.Save(context.Background(), "character_references", "ref.png", []byte("data"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("unexpected file contents: %q", data)
	}

	if err := store.Remove(context.Background(), path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after Remove")
	}

	// Повторное удаление не ошибка
	if err := store.Remove(context.Background(), path); err != nil {
		t.Errorf("Remove of missing file must be nil, got: %v", err)
	}
}

func TestDiskStoreFileURL(t *testing.T) {
	store := NewDiskStore("static/uploads")

	stored := filepath.Join("static/uploads", "character_references", "ab12_ref.png")
	url, err := store.FileURL(context.Background(), stored)
	if err != nil {
		t.Fatalf("FileURL failed: %v", err)
	}
	if url != "/static/uploads/character_references/ab12_ref.png" {
		t.Errorf("unexpected URL: %s", url)
	}

	// Абсолютный путь не получает второй ведущий слеш
	url, err = store.FileURL(context.Background(), "/var/uploads/ref.png")
	if err != nil {
		t.Fatalf("FileURL failed: %v", err)
	}
	if url != "/var/uploads/ref.png" {
		t.Errorf("unexpected URL: %s", url)
	}
}
