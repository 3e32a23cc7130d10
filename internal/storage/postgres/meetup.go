package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meetapp/internal/models"
	"meetapp/internal/storage"
)

func (s *Storage) CreateMeetup(meetup models.Meetup) (models.Meetup, error) {
	query := `
		INSERT INTO meetups (title, description, location, date, user_id, file_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := s.DB.QueryRow(query,
		meetup.Title,
		meetup.Description,
		meetup.Location,
		meetup.Date,
		meetup.UserID,
		meetup.FileID,
	).Scan(&meetup.ID)
	if err != nil {
		return models.Meetup{}, fmt.Errorf("failed to create meetup: %w", err)
	}

	return meetup, nil
}

// GetMeetup returns the meetup with the owning user's public fields attached.
func (s *Storage) GetMeetup(id int) (models.Meetup, error) {
	query := `
		SELECT m.id, m.title, m.description, m.location, m.date, m.user_id, m.file_id,
		       u.id, u.name, u.email
		FROM meetups m
		JOIN users u ON u.id = m.user_id
		WHERE m.id = $1`

	var meetup models.Meetup
	var owner models.User

	err := s.DB.QueryRow(query, id).Scan(
		&meetup.ID,
		&meetup.Title,
		&meetup.Description,
		&meetup.Location,
		&meetup.Date,
		&meetup.UserID,
		&meetup.FileID,
		&owner.ID,
		&owner.Name,
		&owner.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meetup{}, storage.ErrMeetupNotFound
		}
		return models.Meetup{}, fmt.Errorf("failed to get meetup: %w", err)
	}

	meetup.User = &owner

	return meetup, nil
}

func (s *Storage) UpdateMeetup(meetup models.Meetup) (models.Meetup, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Meetup{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE meetups
		SET title = $2, description = $3, location = $4, date = $5, file_id = $6
		WHERE id = $1
		RETURNING id`

	err = tx.QueryRow(query,
		meetup.ID,
		meetup.Title,
		meetup.Description,
		meetup.Location,
		meetup.Date,
		meetup.FileID,
	).Scan(&meetup.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Meetup{}, storage.ErrMeetupNotFound
		}
		return models.Meetup{}, fmt.Errorf("failed to update meetup: %w", err)
	}

	// Keep the denormalized date on subscriptions in sync. A subscriber may
	// already hold a subscription on the new date; the unique constraint then
	// rejects the sync and the rollback keeps both tables on the old date.
	syncQuery := `
		UPDATE subscriptions
		SET meetup_date = $2
		WHERE meetup_id = $1`

	if _, err = tx.Exec(syncQuery, meetup.ID, meetup.Date); err != nil {
		if mapped := asUniqueViolation(err); mapped != nil {
			return models.Meetup{}, mapped
		}
		return models.Meetup{}, fmt.Errorf("failed to sync subscription dates: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Meetup{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return meetup, nil
}

func (s *Storage) DeleteMeetup(id int) error {
	query := `
		DELETE FROM meetups
		WHERE id = $1`

	if _, err := s.DB.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete meetup: %w", err)
	}

	return nil
}

// ListMeetups returns a page of meetups with owners attached. When from/to are
// set, only meetups whose date falls inside [from, to] are returned.
func (s *Storage) ListMeetups(from, to *time.Time, limit, offset int) ([]models.Meetup, error) {
	query := `
		SELECT m.id, m.title, m.description, m.location, m.date, m.user_id, m.file_id,
		       u.id, u.name, u.email
		FROM meetups m
		JOIN users u ON u.id = m.user_id
		WHERE ($1::timestamptz IS NULL OR m.date BETWEEN $1 AND $2)
		ORDER BY m.date ASC
		LIMIT $3 OFFSET $4`

	rows, err := s.DB.Query(query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetups: %w", err)
	}
	defer rows.Close()

	var meetups []models.Meetup
	for rows.Next() {
		var meetup models.Meetup
		var owner models.User

		err = rows.Scan(
			&meetup.ID,
			&meetup.Title,
			&meetup.Description,
			&meetup.Location,
			&meetup.Date,
			&meetup.UserID,
			&meetup.FileID,
			&owner.ID,
			&owner.Name,
			&owner.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meetup: %w", err)
		}

		meetup.User = &owner
		meetups = append(meetups, meetup)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meetups: %w", err)
	}

	return meetups, nil
}
