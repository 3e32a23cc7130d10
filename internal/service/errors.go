package service

import "errors"

var (
	ErrPastDate        = errors.New("past dates are not permitted")
	ErrNotOwner        = errors.New("meetup does not belong to the user")
	ErrTooLate         = errors.New("meetups can only be cancelled one hour in advance")
	ErrPastMeetup      = errors.New("meetup has already happened")
	ErrOwnSubscription = errors.New("organizers cannot subscribe to their own meetup")
	ErrWrongPassword   = errors.New("wrong password")
	ErrFileNotFound    = errors.New("file does not exist")
)
