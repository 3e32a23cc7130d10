package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"meetapp/internal/config"
	"meetapp/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) initSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			CONSTRAINT users_email_key UNIQUE (email)
		)`,
		`CREATE TABLE IF NOT EXISTS files (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			path TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meetups (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			location TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			user_id INTEGER NOT NULL REFERENCES users (id),
			file_id INTEGER NOT NULL REFERENCES files (id)
		)`,
		`CREATE TABLE IF NOT EXISTS subscriptions (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users (id),
			meetup_id INTEGER NOT NULL REFERENCES meetups (id) ON DELETE CASCADE,
			meetup_date TIMESTAMPTZ NOT NULL,
			CONSTRAINT subscriptions_user_meetup_key UNIQUE (user_id, meetup_id),
			CONSTRAINT subscriptions_user_date_key UNIQUE (user_id, meetup_date)
		)`,
	}

	for _, stmt := range schema {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

// asUniqueViolation maps Postgres unique violations to storage errors by
// constraint name. Returns nil if err is not a unique violation.
func asUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}

	switch pqErr.Constraint {
	case "users_email_key":
		return storage.ErrEmailTaken
	case "subscriptions_user_meetup_key":
		return storage.ErrDuplicateSubscription
	case "subscriptions_user_date_key":
		return storage.ErrScheduleConflict
	}

	return nil
}
