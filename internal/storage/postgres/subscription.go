package postgres

import (
	"fmt"
	"time"

	"meetapp/internal/models"
)

// CreateSubscription inserts the subscription row. The unique constraints on
// (user_id, meetup_id) and (user_id, meetup_date) are the last line of defense
// against concurrent duplicate or conflicting inserts; violations come back as
// storage.ErrDuplicateSubscription / storage.ErrScheduleConflict.
func (s *Storage) CreateSubscription(userID, meetupID int, meetupDate time.Time) (models.Subscription, error) {
	query := `
		INSERT INTO subscriptions (user_id, meetup_id, meetup_date)
		VALUES ($1, $2, $3)
		RETURNING id`

	sub := models.Subscription{
		UserID:   userID,
		MeetupID: meetupID,
	}

	err := s.DB.QueryRow(query, userID, meetupID, meetupDate).Scan(&sub.ID)
	if err != nil {
		if uniqErr := asUniqueViolation(err); uniqErr != nil {
			return models.Subscription{}, uniqErr
		}
		return models.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub, nil
}

func (s *Storage) SubscriptionExists(userID, meetupID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM subscriptions
			WHERE user_id = $1 AND meetup_id = $2
		)`

	var exists bool
	if err := s.DB.QueryRow(query, userID, meetupID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	return exists, nil
}

// UserBusyAt reports whether the user already holds a subscription to another
// meetup scheduled at exactly the given instant.
func (s *Storage) UserBusyAt(userID int, date time.Time, excludeMeetupID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM subscriptions
			WHERE user_id = $1 AND meetup_date = $2 AND meetup_id <> $3
		)`

	var busy bool
	if err := s.DB.QueryRow(query, userID, date, excludeMeetupID).Scan(&busy); err != nil {
		return false, fmt.Errorf("failed to check schedule: %w", err)
	}

	return busy, nil
}

// ListUserSubscriptions returns the user's subscriptions whose meetup happens
// after the given instant, farthest meetup first.
func (s *Storage) ListUserSubscriptions(userID int, after time.Time) ([]models.Subscription, error) {
	query := `
		SELECT s.id, s.user_id, s.meetup_id,
		       m.id, m.title, m.description, m.location, m.date
		FROM subscriptions s
		JOIN meetups m ON m.id = s.meetup_id
		WHERE s.user_id = $1 AND m.date > $2
		ORDER BY m.date DESC`

	rows, err := s.DB.Query(query, userID, after)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []models.Subscription
	for rows.Next() {
		var sub models.Subscription
		var meetup models.Meetup

		err = rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.MeetupID,
			&meetup.ID,
			&meetup.Title,
			&meetup.Description,
			&meetup.Location,
			&meetup.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}

		sub.Meetup = &meetup
		subs = append(subs, sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return subs, nil
}
