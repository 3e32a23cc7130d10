package service

import (
	"time"

	"meetapp/internal/models"
	"meetapp/internal/notifier"
	"meetapp/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubscriptionStore
type SubscriptionStore interface {
	CreateSubscription(userID, meetupID int, meetupDate time.Time) (models.Subscription, error)
	SubscriptionExists(userID, meetupID int) (bool, error)
	UserBusyAt(userID int, date time.Time, excludeMeetupID int) (bool, error)
	ListUserSubscriptions(userID int, after time.Time) ([]models.Subscription, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	GetUser(id int) (models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubscriptionNotifier
type SubscriptionNotifier interface {
	EnqueueAsync(job notifier.SubscriptionJob)
}

type SubscriptionService struct {
	subs     SubscriptionStore
	meetups  MeetupStore
	users    UserGetter
	notifier SubscriptionNotifier
	now      func() time.Time
}

func NewSubscriptionService(subs SubscriptionStore, meetups MeetupStore, users UserGetter, n SubscriptionNotifier) *SubscriptionService {
	return &SubscriptionService{
		subs:     subs,
		meetups:  meetups,
		users:    users,
		notifier: n,
		now:      time.Now,
	}
}

// Subscribe enrolls the user in a meetup. Checks run in a fixed order and the
// first failing one wins: existence, self-ownership, timing, duplicate,
// schedule conflict.
func (s *SubscriptionService) Subscribe(meetupID, userID int) (models.Subscription, error) {
	meetup, err := s.meetups.GetMeetup(meetupID)
	if err != nil {
		return models.Subscription{}, err
	}

	if meetup.UserID == userID {
		return models.Subscription{}, ErrOwnSubscription
	}

	if meetup.Date.Before(s.now()) {
		return models.Subscription{}, ErrPastMeetup
	}

	exists, err := s.subs.SubscriptionExists(userID, meetupID)
	if err != nil {
		return models.Subscription{}, err
	}
	if exists {
		return models.Subscription{}, storage.ErrDuplicateSubscription
	}

	busy, err := s.subs.UserBusyAt(userID, meetup.Date, meetupID)
	if err != nil {
		return models.Subscription{}, err
	}
	if busy {
		return models.Subscription{}, storage.ErrScheduleConflict
	}

	sub, err := s.subs.CreateSubscription(userID, meetupID, meetup.Date)
	if err != nil {
		return models.Subscription{}, err
	}

	// Fire-and-forget: a failed notification never rolls back the subscription.
	if subscriber, err := s.users.GetUser(userID); err == nil {
		s.notifier.EnqueueAsync(notifier.SubscriptionJob{
			MeetupID:        meetup.ID,
			MeetupTitle:     meetup.Title,
			OrganizerName:   meetup.User.Name,
			OrganizerEmail:  meetup.User.Email,
			SubscriberName:  subscriber.Name,
			SubscriberEmail: subscriber.Email,
		})
	}

	return sub, nil
}

// ListSubscriptions returns the user's subscriptions to meetups that have not
// happened yet, farthest meetup first.
func (s *SubscriptionService) ListSubscriptions(userID int) ([]models.Subscription, error) {
	return s.subs.ListUserSubscriptions(userID, s.now())
}
