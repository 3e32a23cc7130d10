package storage

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already taken")
	ErrFileNotFound   = errors.New("file not found")
	ErrMeetupNotFound = errors.New("meetup not found")

	// ErrDuplicateSubscription and ErrScheduleConflict are also raised by the
	// unique indexes on subscriptions, so concurrent check-then-insert attempts
	// cannot both succeed.
	ErrDuplicateSubscription = errors.New("user already subscribed to this meetup")
	ErrScheduleConflict      = errors.New("user already has a meetup at this time")
)
