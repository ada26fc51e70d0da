// Пакет intake принимает загруженные референсы: фильтрует по расширению,
// чистит имя файла и сохраняет через FileStore под уникальным именем.
package intake

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"commissions/internal/app/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Разрешённые расширения изображений
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// File — содержимое одного загруженного файла
type File struct {
	Name string
	Data []byte
}

// AllowedFile проверяет расширение файла (регистр не важен)
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename убирает компоненты пути и небезопасные символы из имени
func SanitizeFilename(filename string) string {
	// Windows-загрузчики присылают имя с обратными слешами
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	// Ведущие точки срезаем, чтобы не получить скрытый или относительный путь
	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		cleaned = "file"
	}
	return cleaned
}

// uniqueName добавляет к имени случайный токен, исключая коллизии имён
// даже при одновременной загрузке одинаковых файлов
func uniqueName(filename string) string {
	return fmt.Sprintf("%s_%s", uuid.New().String()[:8], filename)
}

// FromMultipart читает содержимое файлов из multipart-формы
func FromMultipart(headers []*multipart.FileHeader) ([]File, error) {
	files := make([]File, 0, len(headers))
	for _, header := range headers {
		opened, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file: %w", err)
		}

		data, err := io.ReadAll(opened)
		opened.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file: %w", err)
		}

		files = append(files, File{Name: header.Filename, Data: data})
	}
	return files, nil
}

// Process сохраняет файлы в папку dir хранилища и возвращает пути.
// Файлы с недопустимым расширением молча пропускаются; результат никогда не nil.
func Process(ctx context.Context, store storage.FileStore, dir string, files []File) []string {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		if file.Name == "" || !AllowedFile(file.Name) {
			continue
		}

		name := uniqueName(SanitizeFilename(file.Name))
		path, err := store.Save(ctx, dir, name, file.Data)
		if err != nil {
			logrus.Errorf("intake: failed to save %s: %v", file.Name, err)
			continue
		}
		paths = append(paths, path)
	}

	return paths
}
