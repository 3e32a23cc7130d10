package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"meetapp/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FileStore
type FileStore interface {
	CreateFile(name, path string) (models.File, error)
}

// FileService writes uploaded cover images to disk under generated names and
// records them in the store.
type FileService struct {
	files FileStore
	dir   string
}

func NewFileService(files FileStore, dir string) (*FileService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &FileService{files: files, dir: dir}, nil
}

func (s *FileService) SaveFile(name string, src io.Reader) (models.File, error) {
	generated := uuid.NewString() + filepath.Ext(name)

	dst, err := os.Create(filepath.Join(s.dir, generated))
	if err != nil {
		return models.File{}, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return models.File{}, fmt.Errorf("write file: %w", err)
	}

	return s.files.CreateFile(name, generated)
}

// Dir returns the directory uploads are written to.
func (s *FileService) Dir() string {
	return s.dir
}
