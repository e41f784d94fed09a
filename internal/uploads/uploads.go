package uploads

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/thereayou/blabla/internal/apperr"
)

// Store хранит загруженные картинки профиля в одной директории,
// которая потом раздаётся статикой по /uploads
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// Filename проверяет расширение и выдаёт уникальное имя файла.
// Отказ происходит до какой-либо записи на диск.
func (s *Store) Filename(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".jpg"
	}

	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", apperr.Validation("Only JPG, JPEG, and PNG files are allowed!")
	}

	return strconv.FormatInt(time.Now().UnixMilli(), 10) + ext, nil
}

func (s *Store) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}
