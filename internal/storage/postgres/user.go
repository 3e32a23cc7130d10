package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"meetapp/internal/models"
	"meetapp/internal/storage"
)

func (s *Storage) CreateUser(name, email, passwordHash string) (models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := s.DB.QueryRow(query, name, email, passwordHash).Scan(&user.ID)
	if err != nil {
		if uniqErr := asUniqueViolation(err); uniqErr != nil {
			return models.User{}, uniqErr
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *Storage) GetUser(id int) (models.User, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Storage) GetUserByEmail(email string) (models.User, error) {
	query := `
		SELECT id, name, email, password_hash
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (s *Storage) UpdateUser(user models.User) (models.User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = $4
		WHERE id = $1
		RETURNING id`

	err := s.DB.QueryRow(query, user.ID, user.Name, user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		if uniqErr := asUniqueViolation(err); uniqErr != nil {
			return models.User{}, uniqErr
		}
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *Storage) ListUsers() ([]models.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		ORDER BY id ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
