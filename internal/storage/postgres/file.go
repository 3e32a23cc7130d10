package postgres

import (
	"fmt"

	"meetapp/internal/models"
)

func (s *Storage) CreateFile(name, path string) (models.File, error) {
	query := `
		INSERT INTO files (name, path)
		VALUES ($1, $2)
		RETURNING id`

	file := models.File{
		Name: name,
		Path: path,
		URL:  "/files/" + path,
	}

	err := s.DB.QueryRow(query, name, path).Scan(&file.ID)
	if err != nil {
		return models.File{}, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}

func (s *Storage) FileExists(id int) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM files WHERE id = $1)`

	var exists bool
	if err := s.DB.QueryRow(query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}

	return exists, nil
}
