// Package service holds the business rules for meetups, subscriptions and
// users, decoupled from HTTP and from the storage technology.
package service

import (
	"time"

	"meetapp/internal/models"
)

// PageSize is the fixed page size for meetup listings.
const PageSize = 10

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupStore
type MeetupStore interface {
	CreateMeetup(meetup models.Meetup) (models.Meetup, error)
	GetMeetup(id int) (models.Meetup, error)
	UpdateMeetup(meetup models.Meetup) (models.Meetup, error)
	DeleteMeetup(id int) error
	ListMeetups(from, to *time.Time, limit, offset int) ([]models.Meetup, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FileChecker
type FileChecker interface {
	FileExists(id int) (bool, error)
}

type CreateMeetupInput struct {
	Title       string
	Description string
	Location    string
	Date        time.Time
	FileID      int
}

// UpdateMeetupInput carries a partial update; nil fields are left untouched.
type UpdateMeetupInput struct {
	Title       *string
	Description *string
	Location    *string
	Date        *time.Time
	FileID      *int
}

type MeetupService struct {
	meetups MeetupStore
	files   FileChecker
	now     func() time.Time
}

func NewMeetupService(meetups MeetupStore, files FileChecker) *MeetupService {
	return &MeetupService{
		meetups: meetups,
		files:   files,
		now:     time.Now,
	}
}

// hourStart truncates the instant down to the start of its hour. Scheduling is
// granular to the hour: a meetup counts as past only once its hour has fully
// elapsed. Truncation is on absolute time, so the boundary is the same instant
// everywhere, independent of any zone's offset from UTC.
func hourStart(t time.Time) time.Time {
	return t.Truncate(time.Hour)
}

func (s *MeetupService) CreateMeetup(in CreateMeetupInput, userID int) (models.Meetup, error) {
	exists, err := s.files.FileExists(in.FileID)
	if err != nil {
		return models.Meetup{}, err
	}
	if !exists {
		return models.Meetup{}, ErrFileNotFound
	}

	if hourStart(in.Date).Before(s.now()) {
		return models.Meetup{}, ErrPastDate
	}

	return s.meetups.CreateMeetup(models.Meetup{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		UserID:      userID,
		FileID:      in.FileID,
	})
}

func (s *MeetupService) UpdateMeetup(id int, in UpdateMeetupInput, userID int) (models.Meetup, error) {
	meetup, err := s.meetups.GetMeetup(id)
	if err != nil {
		return models.Meetup{}, err
	}

	if meetup.UserID != userID {
		return models.Meetup{}, ErrNotOwner
	}

	// Past meetups are immutable no matter what is being changed.
	if meetup.Date.Before(s.now()) {
		return models.Meetup{}, ErrPastDate
	}

	if in.Date != nil && hourStart(*in.Date).Before(s.now()) {
		return models.Meetup{}, ErrPastDate
	}

	if in.FileID != nil {
		exists, err := s.files.FileExists(*in.FileID)
		if err != nil {
			return models.Meetup{}, err
		}
		if !exists {
			return models.Meetup{}, ErrFileNotFound
		}
		meetup.FileID = *in.FileID
	}

	if in.Title != nil {
		meetup.Title = *in.Title
	}
	if in.Description != nil {
		meetup.Description = *in.Description
	}
	if in.Location != nil {
		meetup.Location = *in.Location
	}
	if in.Date != nil {
		meetup.Date = *in.Date
	}

	return s.meetups.UpdateMeetup(meetup)
}

func (s *MeetupService) DeleteMeetup(id int, userID int) error {
	meetup, err := s.meetups.GetMeetup(id)
	if err != nil {
		return err
	}

	if meetup.UserID != userID {
		return ErrNotOwner
	}

	// Cancellation needs strictly more than one hour of lead time.
	if !meetup.Date.Add(-time.Hour).After(s.now()) {
		return ErrTooLate
	}

	return s.meetups.DeleteMeetup(id)
}

// ListMeetups returns one page of meetups. When date is set, only meetups
// falling inside that calendar day are returned. Pages are 1-indexed.
func (s *MeetupService) ListMeetups(date *time.Time, page int) ([]models.Meetup, error) {
	if page < 1 {
		page = 1
	}

	var from, to *time.Time
	if date != nil {
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
		from, to = &dayStart, &dayEnd
	}

	return s.meetups.ListMeetups(from, to, PageSize, PageSize*(page-1))
}
