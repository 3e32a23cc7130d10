package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetapp/internal/models"
	"meetapp/internal/notifier"
	"meetapp/internal/service/mocks"
	"meetapp/internal/storage"
)

func newSubscriptionService(t *testing.T) (*SubscriptionService, *mocks.SubscriptionStore, *mocks.MeetupStore, *mocks.UserGetter, *mocks.SubscriptionNotifier) {
	t.Helper()

	subs := mocks.NewSubscriptionStore(t)
	meetups := mocks.NewMeetupStore(t)
	users := mocks.NewUserGetter(t)
	notif := mocks.NewSubscriptionNotifier(t)

	svc := NewSubscriptionService(subs, meetups, users, notif)
	svc.now = func() time.Time { return fixedNow }

	return svc, subs, meetups, users, notif
}

func futureMeetup() models.Meetup {
	return models.Meetup{
		ID:     10,
		Title:  "Go Meetup",
		Date:   fixedNow.Add(3 * time.Hour),
		UserID: 1,
		User:   &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
	}
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	t.Run("success enqueues a notification", func(t *testing.T) {
		t.Parallel()

		svc, subs, meetups, users, notif := newSubscriptionService(t)

		meetup := futureMeetup()
		meetups.On("GetMeetup", 10).Return(meetup, nil)
		subs.On("SubscriptionExists", 2, 10).Return(false, nil)
		subs.On("UserBusyAt", 2, meetup.Date, 10).Return(false, nil)
		subs.On("CreateSubscription", 2, 10, meetup.Date).
			Return(models.Subscription{ID: 5, UserID: 2, MeetupID: 10}, nil)
		users.On("GetUser", 2).Return(models.User{ID: 2, Name: "Bob", Email: "bob@example.com"}, nil)
		notif.On("EnqueueAsync", notifier.SubscriptionJob{
			MeetupID:        10,
			MeetupTitle:     "Go Meetup",
			OrganizerName:   "Alice",
			OrganizerEmail:  "alice@example.com",
			SubscriberName:  "Bob",
			SubscriberEmail: "bob@example.com",
		}).Return()

		sub, err := svc.Subscribe(10, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, sub.ID)
	})

	t.Run("meetup not found", func(t *testing.T) {
		t.Parallel()

		svc, _, meetups, _, _ := newSubscriptionService(t)
		meetups.On("GetMeetup", 10).Return(models.Meetup{}, storage.ErrMeetupNotFound)

		_, err := svc.Subscribe(10, 2)
		require.ErrorIs(t, err, storage.ErrMeetupNotFound)
	})

	t.Run("organizer cannot subscribe to own meetup", func(t *testing.T) {
		t.Parallel()

		svc, _, meetups, _, _ := newSubscriptionService(t)
		meetups.On("GetMeetup", 10).Return(futureMeetup(), nil)

		_, err := svc.Subscribe(10, 1)
		require.ErrorIs(t, err, ErrOwnSubscription)
	})

	t.Run("self-subscription wins over timing", func(t *testing.T) {
		t.Parallel()

		svc, _, meetups, _, _ := newSubscriptionService(t)

		meetup := futureMeetup()
		meetup.Date = fixedNow.Add(-time.Hour)
		meetups.On("GetMeetup", 10).Return(meetup, nil)

		_, err := svc.Subscribe(10, 1)
		require.ErrorIs(t, err, ErrOwnSubscription)
	})

	t.Run("past meetup", func(t *testing.T) {
		t.Parallel()

		svc, _, meetups, _, _ := newSubscriptionService(t)

		meetup := futureMeetup()
		meetup.Date = fixedNow.Add(-time.Minute)
		meetups.On("GetMeetup", 10).Return(meetup, nil)

		_, err := svc.Subscribe(10, 2)
		require.ErrorIs(t, err, ErrPastMeetup)
	})

	t.Run("duplicate subscription", func(t *testing.T) {
		t.Parallel()

		svc, subs, meetups, _, _ := newSubscriptionService(t)

		meetup := futureMeetup()
		meetups.On("GetMeetup", 10).Return(meetup, nil)
		subs.On("SubscriptionExists", 2, 10).Return(true, nil)

		_, err := svc.Subscribe(10, 2)
		require.ErrorIs(t, err, storage.ErrDuplicateSubscription)
	})

	t.Run("schedule conflict with another meetup at the same instant", func(t *testing.T) {
		t.Parallel()

		svc, subs, meetups, _, _ := newSubscriptionService(t)

		meetup := futureMeetup()
		meetups.On("GetMeetup", 10).Return(meetup, nil)
		subs.On("SubscriptionExists", 2, 10).Return(false, nil)
		subs.On("UserBusyAt", 2, meetup.Date, 10).Return(true, nil)

		_, err := svc.Subscribe(10, 2)
		require.ErrorIs(t, err, storage.ErrScheduleConflict)
	})

	t.Run("constraint violation on insert surfaces as duplicate", func(t *testing.T) {
		t.Parallel()

		svc, subs, meetups, _, _ := newSubscriptionService(t)

		meetup := futureMeetup()
		meetups.On("GetMeetup", 10).Return(meetup, nil)
		subs.On("SubscriptionExists", 2, 10).Return(false, nil)
		subs.On("UserBusyAt", 2, meetup.Date, 10).Return(false, nil)
		subs.On("CreateSubscription", 2, 10, meetup.Date).
			Return(models.Subscription{}, storage.ErrDuplicateSubscription)

		_, err := svc.Subscribe(10, 2)
		require.ErrorIs(t, err, storage.ErrDuplicateSubscription)
	})

	t.Run("subscription survives a failed subscriber lookup", func(t *testing.T) {
		t.Parallel()

		svc, subs, meetups, users, _ := newSubscriptionService(t)

		meetup := futureMeetup()
		meetups.On("GetMeetup", 10).Return(meetup, nil)
		subs.On("SubscriptionExists", 2, 10).Return(false, nil)
		subs.On("UserBusyAt", 2, meetup.Date, 10).Return(false, nil)
		subs.On("CreateSubscription", 2, 10, meetup.Date).
			Return(models.Subscription{ID: 5, UserID: 2, MeetupID: 10}, nil)
		users.On("GetUser", 2).Return(models.User{}, errors.New("store down"))

		sub, err := svc.Subscribe(10, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, sub.ID)
	})
}

func TestListSubscriptions(t *testing.T) {
	t.Parallel()

	svc, subs, _, _, _ := newSubscriptionService(t)

	expected := []models.Subscription{
		{ID: 2, Meetup: &models.Meetup{ID: 20, Date: fixedNow.Add(48 * time.Hour)}},
		{ID: 1, Meetup: &models.Meetup{ID: 10, Date: fixedNow.Add(time.Hour)}},
	}
	subs.On("ListUserSubscriptions", 2, fixedNow).Return(expected, nil)

	list, err := svc.ListSubscriptions(2)
	require.NoError(t, err)
	assert.Equal(t, expected, list)
}
