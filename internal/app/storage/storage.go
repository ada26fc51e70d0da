package storage

import "context"

// FileStore — хранилище файлов-референсов. Реализации: локальный диск и MinIO.
type FileStore interface {
	// Save сохраняет файл и возвращает путь, под которым он доступен
	Save(ctx context.Context, dir, filename string, data []byte) (string, error)
	// Remove удаляет файл; отсутствие файла не считается ошибкой
	Remove(ctx context.Context, path string) error
	// FileURL возвращает ссылку, по которой клиент может скачать файл
	FileURL(ctx context.Context, path string) (string, error)
}
